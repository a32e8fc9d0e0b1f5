package events

import (
	"time"

	"supermock/models"
)

// Booking lifecycle event types.
const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingCancelled = "booking.cancelled"
	BookingCompleted = "booking.completed"
)

// BookingEvent is the message published for every booking transition.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"bookingId"`
	SlotID        string    `json:"slotId"`
	CandidateID   string    `json:"candidateId"`
	InterviewerID string    `json:"interviewerId"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewBookingEvent builds an event from a booking snapshot.
func NewBookingEvent(eventType string, b models.Booking) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		SlotID:        b.SlotID,
		CandidateID:   b.CandidateID,
		InterviewerID: b.InterviewerID,
		Status:        b.Status,
		OccurredAt:    time.Now().UTC(),
	}
}
