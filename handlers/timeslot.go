package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"supermock/models"
	bookingSvc "supermock/services/booking"
	slotSvc "supermock/services/slot"
)

// TimeSlotHandler exposes the interviewer slot lifecycle plus the filtered
// candidate-facing listing.
type TimeSlotHandler struct {
	Slots    slotSvc.SlotService
	Bookings bookingSvc.BookingService
}

// ListHandler handles GET /timeslots. The listing applies the eligibility
// filter, so candidates see available slots and in-flight booked ones. An
// interviewer filtering for their own slots gets the unfiltered owner view.
func (h *TimeSlotHandler) ListHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	filter, err := parseSlotFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.Bookings.ListEligibleSlots(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateHandler handles POST /timeslots.
func (h *TimeSlotHandler) CreateHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Slots.CreateSlot(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PATCH /timeslots/:id.
func (h *TimeSlotHandler) UpdateHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Slots.UpdateSlot(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /timeslots/:id.
func (h *TimeSlotHandler) DeleteHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	if err := h.Slots.DeleteSlot(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

func parseSlotFilter(c *gin.Context) (models.SlotFilter, error) {
	filter := models.SlotFilter{
		Specialization: c.Query("specialization"),
		InterviewerID:  c.Query("interviewerId"),
		Status:         c.Query("status"),
	}

	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errInvalidDate("startDate")
		}
		filter.StartDate = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errInvalidDate("endDate")
		}
		filter.EndDate = t
	}
	return filter, nil
}

type invalidDateError string

func errInvalidDate(field string) error { return invalidDateError(field) }

func (e invalidDateError) Error() string {
	return string(e) + " must be an RFC3339 timestamp"
}
