package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"supermock/models"
	adminSvc "supermock/services/admin"
)

// AdminHandler exposes moderation endpoints.
type AdminHandler struct {
	Service adminSvc.AdminService
}

// ListUsersHandler handles GET /admin/users?page=&limit=&search=.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	users, total, err := h.Service.ListUsers(c.Request.Context(), page, limit, search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUserHandler handles GET /admin/users/:id.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	u, err := h.Service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// BlockUserHandler handles POST /user-blocks.
func (h *AdminHandler) BlockUserHandler(c *gin.Context) {
	adminID, _ := currentUser(c)

	var req models.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	block, err := h.Service.BlockUser(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// UnblockUserHandler handles DELETE /user-blocks/:id.
func (h *AdminHandler) UnblockUserHandler(c *gin.Context) {
	if err := h.Service.UnblockUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block removed"})
}

// ListBlocksHandler handles GET /user-blocks/user/:id.
func (h *AdminHandler) ListBlocksHandler(c *gin.Context) {
	blocks, err := h.Service.ListBlocks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// SendNotificationHandler handles POST /notifications/admin/:userId.
func (h *AdminHandler) SendNotificationHandler(c *gin.Context) {
	var req models.AdminNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SendNotification(c.Request.Context(), c.Param("userId"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}
