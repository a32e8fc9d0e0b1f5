package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

// eligibleCacheTTL bounds the lifetime of cached listings. Mutations also
// advance the listing generation, so a refetch after booking or cancelling
// never sees the pre-mutation view.
const eligibleCacheTTL = 15 * time.Second

// ListEligibleSlots fetches slots matching the filter and narrows them with
// SlotEligible. The result is sorted ascending by start time (repository
// order) and annotated with the linked interview status for booked slots.
//
// An interviewer filtering for their own slots gets the owner view instead:
// every slot regardless of eligibility, read past the cache, so the
// lifecycle-manager side always sees authoritative state including CANCELLED
// slots and bookings not yet confirmed.
func (s *DefaultBookingService) ListEligibleSlots(ctx context.Context, callerID string, filter models.SlotFilter) ([]models.SlotView, error) {
	ownerView := filter.InterviewerID != "" && filter.InterviewerID == callerID

	var cacheKey string
	if !ownerView {
		cacheKey = eligibleCacheKey(utils.SlotListingVersion(ctx, s.Cache), filter)
		if cached := s.cachedListing(ctx, cacheKey); cached != nil {
			return cached, nil
		}
	}

	slots, err := s.Slots.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	var bookedIDs []string
	for _, sl := range slots {
		if sl.Status == models.SlotStatusBooked {
			bookedIDs = append(bookedIDs, sl.ID)
		}
	}

	bookingsBySlot, err := s.Bookings.ActiveBySlotIDs(ctx, bookedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	var interviewIDs []string
	for _, b := range bookingsBySlot {
		if b.InterviewID != "" {
			interviewIDs = append(interviewIDs, b.InterviewID)
		}
	}
	interviewsByID, err := s.Interviews.GetByIDs(ctx, interviewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load interviews: %w", err)
	}

	views := make([]models.SlotView, 0, len(slots))
	for _, sl := range slots {
		var bookingForSlot *models.Booking
		var interviewForSlot *models.Interview

		if b, ok := bookingsBySlot[sl.ID]; ok {
			bookingForSlot = &b
			if iv, ok := interviewsByID[b.InterviewID]; ok {
				interviewForSlot = &iv
			}
		}

		if !ownerView && !SlotEligible(sl, bookingForSlot, interviewForSlot) {
			continue
		}

		view := models.SlotView{TimeSlot: sl}
		if interviewForSlot != nil {
			view.InterviewStatus = interviewForSlot.Status
		}
		views = append(views, view)
	}

	if !ownerView {
		s.cacheListing(ctx, cacheKey, views)
	}
	return views, nil
}

// invalidateListings advances the listing generation after a slot mutation.
func (s *DefaultBookingService) invalidateListings(ctx context.Context) {
	utils.BumpSlotListingVersion(ctx, s.Cache)
}

func eligibleCacheKey(version string, filter models.SlotFilter) string {
	return fmt.Sprintf("eligible:v%s:%s|%d|%d|%s|%s",
		version,
		filter.Specialization,
		filter.StartDate.Unix(),
		filter.EndDate.Unix(),
		filter.InterviewerID,
		filter.Status)
}

func (s *DefaultBookingService) cachedListing(ctx context.Context, key string) []models.SlotView {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var views []models.SlotView
	if err := json.Unmarshal([]byte(data), &views); err != nil {
		return nil
	}
	return views
}

func (s *DefaultBookingService) cacheListing(ctx context.Context, key string, views []models.SlotView) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, eligibleCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("booking: failed to cache listing", zap.Error(err))
	}
}
