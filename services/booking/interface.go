package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	"supermock/database/repository/booking"
	"supermock/database/repository/interview"
	"supermock/database/repository/timeslot"
	"supermock/events"
	"supermock/models"
	"supermock/services/notification"
	"supermock/services/points"
)

// BookingService runs the candidate-side booking workflow:
//
//	AVAILABLE --(book)--> BOOKED (+Booking CREATED)
//	CREATED --(interviewer confirm)--> CONFIRMED
//	CREATED|CONFIRMED --(cancel, either party)--> CANCELLED
//	CONFIRMED --(slot ends)--> COMPLETED
type BookingService interface {
	Book(ctx context.Context, candidateID, slotID string) (*models.Booking, error)
	Cancel(ctx context.Context, actorID, bookingID, reason string) (*models.Booking, error)
	Confirm(ctx context.Context, interviewerID, bookingID string) (*models.Booking, error)
	ListForCandidate(ctx context.Context, candidateID string) ([]models.Booking, error)
	ListForInterviewer(ctx context.Context, interviewerID string) ([]models.Booking, error)
	// ListEligibleSlots returns the candidate-facing filtered listing; when
	// the caller filters for their own slots it returns the full owner view.
	ListEligibleSlots(ctx context.Context, callerID string, filter models.SlotFilter) ([]models.SlotView, error)
	// CompleteExpired moves CONFIRMED bookings whose slot has ended to
	// COMPLETED, returning how many were swept.
	CompleteExpired(ctx context.Context) (int, error)
}

// ReminderScheduler enqueues the interview reminder fired near slot start.
type ReminderScheduler interface {
	ScheduleInterviewReminder(booking models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings      bookingRepo.BookingRepository
	Slots         timeslotRepo.TimeSlotRepository
	Interviews    interviewRepo.InterviewRepository
	Points        points.PointsService
	Notifications notification.NotificationService
	Events        events.Publisher
	Reminders     ReminderScheduler
	// Cache, when set, holds eligible-slot listings for a short TTL.
	Cache *redis.Client
}
