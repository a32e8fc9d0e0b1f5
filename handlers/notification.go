package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notificationSvc "supermock/services/notification"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Service notificationSvc.NotificationService
}

// ListHandler handles GET /notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	items, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarkReadHandler handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// UnreadCountHandler handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	count, err := h.Service.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
