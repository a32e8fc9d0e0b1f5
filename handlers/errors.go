package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supermock/services/admin"
	bookingSvc "supermock/services/booking"
	interviewSvc "supermock/services/interview"
	"supermock/services/points"
	"supermock/services/slot"
	userSvc "supermock/services/user"
)

// respondError maps service errors to HTTP responses. Unknown errors come
// back as 500 with a generic message so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var verrs slot.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": verrs})
		return
	}
	var verr slot.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}

	switch {
	case errors.Is(err, slot.ErrSlotNotFound),
		errors.Is(err, bookingSvc.ErrSlotNotFound),
		errors.Is(err, bookingSvc.ErrBookingNotFound),
		errors.Is(err, interviewSvc.ErrInterviewNotFound),
		errors.Is(err, userSvc.ErrUserNotFound),
		errors.Is(err, admin.ErrUserNotFound),
		errors.Is(err, admin.ErrBlockNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, slot.ErrSlotBooked),
		errors.Is(err, slot.ErrSlotOverlap),
		errors.Is(err, bookingSvc.ErrSlotTaken),
		errors.Is(err, bookingSvc.ErrInvalidTransition),
		errors.Is(err, interviewSvc.ErrInvalidTransition),
		errors.Is(err, interviewSvc.ErrNotCompleted),
		errors.Is(err, userSvc.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, slot.ErrNotOwner),
		errors.Is(err, bookingSvc.ErrForbidden),
		errors.Is(err, bookingSvc.ErrNotInterviewer),
		errors.Is(err, bookingSvc.ErrOwnSlot),
		errors.Is(err, interviewSvc.ErrForbidden),
		errors.Is(err, interviewSvc.ErrNotInterviewer),
		errors.Is(err, userSvc.ErrUserBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, points.ErrInsufficientPoints):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, points.ErrInvalidAdjustment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, userSvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUser pulls the authenticated user id and role set by the auth
// middleware.
func currentUser(c *gin.Context) (string, string) {
	return c.GetString("userID"), c.GetString("userRole")
}
