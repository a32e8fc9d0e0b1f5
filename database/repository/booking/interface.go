// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"supermock/database"
	"supermock/models"
	"supermock/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Booking, error)
	ListByInterviewer(ctx context.Context, interviewerID string) ([]models.Booking, error)
	// ActiveBySlotIDs maps slot ID to its non-cancelled booking, if any.
	ActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string]models.Booking, error)

	// TransitionStatus conditionally moves a booking from one of the given
	// statuses to the target status. Returns the updated booking, or
	// mongo.ErrNoDocuments when the booking is not in an allowed state.
	TransitionStatus(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error)

	SetInterviewID(ctx context.Context, bookingID, interviewID string) error
	// ListExpiredConfirmed returns CONFIRMED bookings whose slot has ended.
	ListExpiredConfirmed(ctx context.Context, now time.Time) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	r := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("booking repo: index setup failed: %v", err)
	}
	return r
}
