package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	interestRepo "supermock/database/repository/interest"
	"supermock/models"
	"supermock/utils"
)

// InterestHandler exposes the specialization interest taxonomy. Reads are
// open to every signed-in user; mutations are admin only.
type InterestHandler struct {
	Repo interestRepo.InterestRepository
}

// ListHandler handles GET /users/interests.
func (h *InterestHandler) ListHandler(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list interests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list interests"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHandler handles POST /users/interests.
func (h *InterestHandler) CreateHandler(c *gin.Context) {
	var req models.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	interest := models.Interest{Name: req.Name}
	if err := h.Repo.Create(c.Request.Context(), &interest); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Interest already exists"})
			return
		}
		utils.GetLogger().Error("failed to create interest", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interest"})
		return
	}
	c.JSON(http.StatusCreated, interest)
}

// RenameHandler handles PUT /users/interests/:id.
func (h *InterestHandler) RenameHandler(c *gin.Context) {
	var req models.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Repo.Rename(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interest not found"})
			return
		}
		utils.GetLogger().Error("failed to rename interest", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename interest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interest renamed"})
}

// DeleteHandler handles DELETE /users/interests/:id.
func (h *InterestHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interest not found"})
			return
		}
		utils.GetLogger().Error("failed to delete interest", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete interest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interest deleted"})
}
