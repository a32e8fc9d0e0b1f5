package models

import "time"

// Notification kinds.
const (
	NotificationBooking   = "booking"
	NotificationInterview = "interview"
	NotificationPoints    = "points"
	NotificationSystem    = "system"
)

// Notification is a persisted in-app message, optionally mirrored as an FCM
// push when the recipient has a device token.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AdminNotificationRequest is the payload for a direct admin message.
type AdminNotificationRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// ReminderPayload is the asynq task body for interview reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
