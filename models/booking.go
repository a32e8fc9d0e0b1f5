package models

import "time"

// Booking statuses.
const (
	BookingStatusCreated   = "CREATED"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// Booking represents a candidate's reservation against a time slot. Slot
// bounds and specialization are denormalized onto the record so listings and
// the completion sweep avoid a second lookup.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	SlotID         string    `bson:"slotId" json:"slotId"`
	CandidateID    string    `bson:"candidateId" json:"candidateId"`
	InterviewerID  string    `bson:"interviewerId" json:"interviewerId"`
	Specialization string    `bson:"specialization" json:"specialization"`
	SlotStart      time.Time `bson:"slotStart" json:"slotStart"`
	SlotEnd        time.Time `bson:"slotEnd" json:"slotEnd"`
	Status         string    `bson:"status" json:"status"`
	PointsSpent    int       `bson:"pointsSpent" json:"pointsSpent"`
	InterviewID    string    `bson:"interviewId,omitempty" json:"interviewId,omitempty"`
	CancelReason   string    `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the booking still holds its slot.
func (b Booking) Active() bool {
	return b.Status == BookingStatusCreated || b.Status == BookingStatusConfirmed
}

// CreateBookingRequest defines the payload for booking a slot.
type CreateBookingRequest struct {
	SlotID string `json:"slotId" binding:"required"`
}

// CancelBookingRequest carries an optional cancellation reason.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
