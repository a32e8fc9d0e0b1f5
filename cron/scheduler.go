package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

// reminderLead is how long before slot start the reminder fires.
const reminderLead = time.Hour

// ReminderClient enqueues interview reminders on the asynq queue.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient connects to the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(reminderRedisOpt())}
}

// ScheduleInterviewReminder enqueues a one-hour-before reminder for the
// candidate of a confirmed booking. Bookings confirmed inside the lead
// window get the reminder immediately.
func (c *ReminderClient) ScheduleInterviewReminder(booking models.Booking) error {
	fireAt := booking.SlotStart.Add(-reminderLead)
	if fireAt.Before(time.Now().UTC()) {
		fireAt = time.Now().UTC()
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.CandidateID,
		Title:     "Скоро интервью",
		Body:      fmt.Sprintf("Ваше интервью начнётся в %s", booking.SlotStart.Format("15:04")),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, data)
	info, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("interview reminder scheduled",
		zap.String("bookingId", booking.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the queue connection.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
