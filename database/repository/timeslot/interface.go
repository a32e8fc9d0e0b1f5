// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"
	"time"

	"supermock/database"
	"supermock/models"
	"supermock/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *models.TimeSlot) error
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error
	DeleteAvailable(ctx context.Context, interviewerID, slotID string) error
	List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error)
	FindOverlapping(ctx context.Context, interviewerID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error)

	// Reserve atomically flips an AVAILABLE slot to BOOKED. It returns
	// mongo.ErrNoDocuments when another candidate got there first.
	Reserve(ctx context.Context, slotID string) (*models.TimeSlot, error)
	// Release flips a BOOKED slot back to AVAILABLE.
	Release(ctx context.Context, slotID string) error
	// CancelAvailable flips an AVAILABLE slot to CANCELLED.
	CancelAvailable(ctx context.Context, interviewerID, slotID string) error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	r := &mongoTimeSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("timeslot repo: index setup failed: %v", err)
	}
	return r
}
