package slot

import (
	"context"

	"github.com/go-redis/redis/v8"

	"supermock/database/repository/timeslot"
	"supermock/models"
)

// SlotService manages the interviewer-side time slot lifecycle.
type SlotService interface {
	CreateSlot(ctx context.Context, interviewerID string, req models.CreateSlotRequest) (*models.TimeSlot, error)
	UpdateSlot(ctx context.Context, interviewerID, slotID string, req models.UpdateSlotRequest) (*models.TimeSlot, error)
	DeleteSlot(ctx context.Context, interviewerID, slotID string) error
	GetSlot(ctx context.Context, slotID string) (*models.TimeSlot, error)
	ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error)
}

// DefaultSlotService is the production implementation.
type DefaultSlotService struct {
	Repo      timeslotRepo.TimeSlotRepository
	Validator *SlotValidator
	// Cache, when set, is bumped on every mutation so cached listings drop.
	Cache *redis.Client
}
