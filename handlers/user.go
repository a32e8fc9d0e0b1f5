package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/services/storage"
	userSvc "supermock/services/user"
	"supermock/utils"
)

// UserHandler exposes account and session endpoints.
type UserHandler struct {
	Service userSvc.UserService
	Storage storage.StorageService
}

// RegisterHandler handles POST /users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("registration rejected", zap.String("email", req.Email), zap.Error(err))
		if err == userSvc.ErrDuplicateUser {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	u, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMeHandler handles PUT /users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	u, err := h.Service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdatePasswordHandler handles PUT /users/me/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdatePassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}

// DeleteMeHandler handles DELETE /users/me.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	if err := h.Service.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// UploadAvatarHandler handles POST /users/me/avatar.
func (h *UserHandler) UploadAvatarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, _ := currentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("%s-%s%s", userID, uuid.New().String(), filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		logger.Error("failed to save uploaded avatar", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "avatars")
	if err != nil {
		logger.Error("avatar upload failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		logger.Error("failed to resolve avatar URL", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	if err := h.Service.SetAvatarURL(c.Request.Context(), userID, url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}

// RevokeHandler handles DELETE /users/revoke.
func (h *UserHandler) RevokeHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	if err := h.Service.RevokeToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
