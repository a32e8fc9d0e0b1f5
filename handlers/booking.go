package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supermock/models"
	bookingSvc "supermock/services/booking"
)

// BookingHandler exposes the candidate booking workflow.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// ListHandler handles GET /bookings, the caller's bookings as a candidate.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	items, err := h.Service.ListForCandidate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListInterviewerHandler handles GET /bookings/interviewer, the bookings
// placed against the caller's slots.
func (h *BookingHandler) ListInterviewerHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	items, err := h.Service.ListForInterviewer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHandler handles POST /bookings.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Book(c.Request.Context(), userID, req.SlotID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CancelHandler handles PATCH /bookings/:id/cancel. Either party may cancel
// while the booking is still active.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Cancel(c.Request.Context(), userID, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmHandler handles PATCH /bookings/:id/confirm. Interviewer only.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	b, err := h.Service.Confirm(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
