package models

import "time"

// TimeSlot statuses.
const (
	SlotStatusAvailable = "AVAILABLE"
	SlotStatusBooked    = "BOOKED"
	SlotStatusCancelled = "CANCELLED"
)

// TimeSlot represents an interviewer-published, bookable time window tagged
// with a specialization. Times are stored in UTC.
type TimeSlot struct {
	ID             string    `bson:"id" json:"id"`
	InterviewerID  string    `bson:"interviewerId" json:"interviewerId"`
	Specialization string    `bson:"specialization" json:"specialization"`
	StartTime      time.Time `bson:"startTime" json:"startTime"`
	EndTime        time.Time `bson:"endTime" json:"endTime"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Duration returns the slot duration.
func (s TimeSlot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// CreateSlotRequest defines the payload for publishing a slot.
type CreateSlotRequest struct {
	Specialization string    `json:"specialization" binding:"required" validate:"required,specialization"`
	StartTime      time.Time `json:"startTime" binding:"required" validate:"required"`
	EndTime        time.Time `json:"endTime" binding:"required" validate:"required"`
}

// UpdateSlotRequest defines the payload for editing a slot. Nil fields keep
// the stored value. Status may only be set to CANCELLED.
type UpdateSlotRequest struct {
	Specialization *string    `json:"specialization,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Status         *string    `json:"status,omitempty"`
}

// SlotFilter narrows slot listings. Zero values mean "no constraint".
type SlotFilter struct {
	Specialization string
	StartDate      time.Time
	EndDate        time.Time
	InterviewerID  string
	Status         string
}

// SlotView is a listing entry: the slot plus the status of the interview
// linked through its active booking, when one exists.
type SlotView struct {
	TimeSlot
	InterviewStatus string `json:"interviewStatus,omitempty"`
}
