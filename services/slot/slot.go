package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

// CreateSlot validates and publishes a new AVAILABLE slot. Validation
// failures are returned before any write happens.
func (s *DefaultSlotService) CreateSlot(ctx context.Context, interviewerID string, req models.CreateSlotRequest) (*models.TimeSlot, error) {
	if err := s.Validator.ValidateCreate(req, time.Now().UTC()); err != nil {
		return nil, err
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, interviewerID, req.StartTime, req.EndTime, "")
	if err != nil {
		utils.GetLogger().Error("CreateSlot: overlap lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create slot, please try again")
	}
	if len(overlapping) > 0 {
		return nil, ErrSlotOverlap
	}

	slot := &models.TimeSlot{
		InterviewerID:  interviewerID,
		Specialization: req.Specialization,
		StartTime:      req.StartTime.UTC(),
		EndTime:        req.EndTime.UTC(),
	}
	if err := s.Repo.Create(ctx, slot); err != nil {
		utils.GetLogger().Error("CreateSlot: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create slot, please try again")
	}
	utils.BumpSlotListingVersion(ctx, s.Cache)
	return slot, nil
}

// UpdateSlot edits an AVAILABLE slot. A BOOKED slot can no longer be edited;
// the only permitted status change is AVAILABLE -> CANCELLED.
func (s *DefaultSlotService) UpdateSlot(ctx context.Context, interviewerID, slotID string, req models.UpdateSlotRequest) (*models.TimeSlot, error) {
	existing, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}
	if existing.InterviewerID != interviewerID {
		return nil, ErrNotOwner
	}
	if existing.Status == models.SlotStatusBooked {
		return nil, ErrSlotBooked
	}

	if req.Status != nil {
		if *req.Status != models.SlotStatusCancelled {
			return nil, ValidationErrors{{Field: "status", Message: "only CANCELLED may be set explicitly"}}
		}
		if err := s.Repo.CancelAvailable(ctx, interviewerID, slotID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrSlotBooked
			}
			return nil, fmt.Errorf("failed to cancel slot: %w", err)
		}
		existing.Status = models.SlotStatusCancelled
		utils.BumpSlotListingVersion(ctx, s.Cache)
		return existing, nil
	}

	spec := existing.Specialization
	start := existing.StartTime
	end := existing.EndTime
	if req.Specialization != nil {
		spec = *req.Specialization
	}
	if req.StartTime != nil {
		start = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		end = req.EndTime.UTC()
	}

	if !IsValidSpecialization(spec) {
		return nil, ValidationErrors{{Field: "specialization", Message: "specialization must be one of the supported categories"}}
	}
	if err := s.Validator.ValidateWindow(start, end, time.Now().UTC()); err != nil {
		return nil, err
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, interviewerID, start, end, slotID)
	if err != nil {
		utils.GetLogger().Error("UpdateSlot: overlap lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update slot, please try again")
	}
	if len(overlapping) > 0 {
		return nil, ErrSlotOverlap
	}

	fields := map[string]interface{}{
		"specialization": spec,
		"startTime":      start,
		"endTime":        end,
	}
	if err := s.Repo.UpdateFields(ctx, slotID, fields); err != nil {
		utils.GetLogger().Error("UpdateSlot: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update slot, please try again")
	}

	existing.Specialization = spec
	existing.StartTime = start
	existing.EndTime = end
	utils.BumpSlotListingVersion(ctx, s.Cache)
	return existing, nil
}

// DeleteSlot removes an AVAILABLE slot.
func (s *DefaultSlotService) DeleteSlot(ctx context.Context, interviewerID, slotID string) error {
	existing, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("failed to load slot: %w", err)
	}
	if existing.InterviewerID != interviewerID {
		return ErrNotOwner
	}
	if existing.Status == models.SlotStatusBooked {
		return ErrSlotBooked
	}

	if err := s.Repo.DeleteAvailable(ctx, interviewerID, slotID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSlotBooked
		}
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	utils.BumpSlotListingVersion(ctx, s.Cache)
	return nil
}

func (s *DefaultSlotService) GetSlot(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *DefaultSlotService) ListSlots(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
	if filter.Specialization != "" && !IsValidSpecialization(filter.Specialization) {
		return nil, ValidationErrors{{Field: "specialization", Message: "specialization must be one of the supported categories"}}
	}
	return s.Repo.List(ctx, filter)
}
