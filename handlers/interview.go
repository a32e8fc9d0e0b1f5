package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supermock/models"
	interviewSvc "supermock/services/interview"
)

// InterviewHandler exposes the interview lifecycle.
type InterviewHandler struct {
	Service interviewSvc.InterviewService
}

// ListHandler handles GET /interviews, both sides of the table.
func (h *InterviewHandler) ListHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	items, err := h.Service.ListInterviews(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetHandler handles GET /interviews/:id.
func (h *InterviewHandler) GetHandler(c *gin.Context) {
	userID, role := currentUser(c)
	iv, err := h.Service.GetInterview(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// CreateHandler handles POST /interviews. Admin only.
func (h *InterviewHandler) CreateHandler(c *gin.Context) {
	var iv models.Interview
	if err := c.ShouldBindJSON(&iv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateInterview(c.Request.Context(), iv)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PATCH /interviews/:id. Interviewer only.
func (h *InterviewHandler) UpdateHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	iv, err := h.Service.UpdateInterview(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// DeleteHandler handles DELETE /interviews/:id. Admin only.
func (h *InterviewHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.DeleteInterview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}

// ListScoresHandler handles GET /interviews/:id/scores.
func (h *InterviewHandler) ListScoresHandler(c *gin.Context) {
	userID, role := currentUser(c)
	scores, err := h.Service.ListScores(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// AddScoreHandler handles POST /interviews/:id/scores. Interviewer only,
// and only after the interview completed.
func (h *InterviewHandler) AddScoreHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.AddScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	score, err := h.Service.AddScore(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, score)
}
