package models

import "time"

// Interview statuses.
const (
	InterviewStatusScheduled  = "SCHEDULED"
	InterviewStatusInProgress = "IN_PROGRESS"
	InterviewStatusCompleted  = "COMPLETED"
	InterviewStatusCancelled  = "CANCELLED"
)

// Interview is the 1:1 record created when an interviewer confirms a booking.
type Interview struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"bookingId" json:"bookingId"`
	SlotID         string    `bson:"slotId" json:"slotId"`
	CandidateID    string    `bson:"candidateId" json:"candidateId"`
	InterviewerID  string    `bson:"interviewerId" json:"interviewerId"`
	Specialization string    `bson:"specialization" json:"specialization"`
	ScheduledAt    time.Time `bson:"scheduledAt" json:"scheduledAt"`
	EndsAt         time.Time `bson:"endsAt" json:"endsAt"`
	Status         string    `bson:"status" json:"status"`
	Feedback       string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InterviewScore is one scored criterion for a completed interview.
type InterviewScore struct {
	ID          string    `bson:"id" json:"id"`
	InterviewID string    `bson:"interviewId" json:"interviewId"`
	Criterion   string    `bson:"criterion" json:"criterion"`
	Value       int       `bson:"value" json:"value"`
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// AddScoreRequest defines the payload for scoring an interview.
type AddScoreRequest struct {
	Criterion string `json:"criterion" binding:"required"`
	Value     int    `json:"value" binding:"min=0,max=10"`
	Comment   string `json:"comment"`
}

// UpdateInterviewRequest carries mutable interview fields.
type UpdateInterviewRequest struct {
	Status   *string `json:"status,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
}
