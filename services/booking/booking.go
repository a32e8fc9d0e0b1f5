package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"supermock/events"
	"supermock/models"
	"supermock/services/points"
	"supermock/utils"
)

// BookingCost is the number of points one booking consumes.
const BookingCost = 1

// Book reserves the slot for the candidate and debits one point. The
// reservation and the debit are two single-document atomic updates ordered
// reserve-then-debit; a failed debit releases the slot again so no points
// are lost and no slot stays held.
func (s *DefaultBookingService) Book(ctx context.Context, candidateID, slotID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}
	if slot.InterviewerID == candidateID {
		return nil, ErrOwnSlot
	}
	if slot.Status != models.SlotStatusAvailable {
		return nil, ErrSlotTaken
	}

	// Pre-flight balance check so an obviously broke candidate never holds
	// the slot, even briefly. The authoritative guard is the debit below.
	balance, err := s.Points.GetBalance(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check points balance: %w", err)
	}
	if balance < BookingCost {
		return nil, points.ErrInsufficientPoints
	}

	reserved, err := s.Slots.Reserve(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost the race to another candidate.
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}
	s.invalidateListings(ctx)

	if err := s.Points.Spend(ctx, candidateID, BookingCost, "Бронирование слота: "+reserved.Specialization); err != nil {
		if releaseErr := s.Slots.Release(ctx, slotID); releaseErr != nil {
			logger.Error("Book: failed to release slot after debit failure",
				zap.String("slotId", slotID),
				zap.Error(releaseErr))
		}
		s.invalidateListings(ctx)
		return nil, err
	}

	booking := &models.Booking{
		SlotID:         reserved.ID,
		CandidateID:    candidateID,
		InterviewerID:  reserved.InterviewerID,
		Specialization: reserved.Specialization,
		SlotStart:      reserved.StartTime,
		SlotEnd:        reserved.EndTime,
		Status:         models.BookingStatusCreated,
		PointsSpent:    BookingCost,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		// Compensate: give the point back and free the slot.
		if refundErr := s.Points.Refund(ctx, candidateID, BookingCost, "Возврат: бронирование не создано"); refundErr != nil {
			logger.Error("Book: refund after create failure failed",
				zap.String("candidateId", candidateID),
				zap.Error(refundErr))
		}
		if releaseErr := s.Slots.Release(ctx, slotID); releaseErr != nil {
			logger.Error("Book: failed to release slot after create failure",
				zap.String("slotId", slotID),
				zap.Error(releaseErr))
		}
		s.invalidateListings(ctx)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, events.BookingCreated, *booking)
	s.notify(ctx, booking.InterviewerID, models.NotificationBooking,
		"Новое бронирование",
		fmt.Sprintf("Ваш слот «%s» забронирован", booking.Specialization))

	return booking, nil
}

// Cancel moves a CREATED or CONFIRMED booking to CANCELLED, frees the slot
// and refunds the point. Either party may cancel.
func (s *DefaultBookingService) Cancel(ctx context.Context, actorID, bookingID, reason string) (*models.Booking, error) {
	logger := utils.GetLogger()

	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if current.CandidateID != actorID && current.InterviewerID != actorID {
		return nil, ErrForbidden
	}

	extra := map[string]interface{}{}
	if reason != "" {
		extra["cancelReason"] = reason
	}
	cancelled, err := s.Bookings.TransitionStatus(ctx, bookingID,
		[]string{models.BookingStatusCreated, models.BookingStatusConfirmed},
		models.BookingStatusCancelled, extra)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := s.Slots.Release(ctx, cancelled.SlotID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Error("Cancel: failed to release slot",
			zap.String("slotId", cancelled.SlotID),
			zap.Error(err))
	}
	s.invalidateListings(ctx)

	if err := s.Points.Refund(ctx, cancelled.CandidateID, cancelled.PointsSpent, "Возврат за отмену бронирования"); err != nil {
		logger.Error("Cancel: refund failed",
			zap.String("candidateId", cancelled.CandidateID),
			zap.Error(err))
	}

	if cancelled.InterviewID != "" {
		_, err := s.Interviews.TransitionStatus(ctx, cancelled.InterviewID,
			[]string{models.InterviewStatusScheduled, models.InterviewStatusInProgress},
			models.InterviewStatusCancelled)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error("Cancel: failed to cancel linked interview",
				zap.String("interviewId", cancelled.InterviewID),
				zap.Error(err))
		}
	}

	s.publish(ctx, events.BookingCancelled, *cancelled)

	// Tell the other party.
	recipient := cancelled.InterviewerID
	if actorID == cancelled.InterviewerID {
		recipient = cancelled.CandidateID
	}
	body := fmt.Sprintf("Бронирование «%s» отменено", cancelled.Specialization)
	if reason != "" {
		body += ": " + reason
	}
	s.notify(ctx, recipient, models.NotificationBooking, "Бронирование отменено", body)

	return cancelled, nil
}

// Confirm moves a CREATED booking to CONFIRMED, creates the linked interview
// and schedules the reminder. Only the slot's interviewer may confirm.
func (s *DefaultBookingService) Confirm(ctx context.Context, interviewerID, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if current.InterviewerID != interviewerID {
		return nil, ErrNotInterviewer
	}

	confirmed, err := s.Bookings.TransitionStatus(ctx, bookingID,
		[]string{models.BookingStatusCreated},
		models.BookingStatusConfirmed, nil)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	interview := &models.Interview{
		BookingID:      confirmed.ID,
		SlotID:         confirmed.SlotID,
		CandidateID:    confirmed.CandidateID,
		InterviewerID:  confirmed.InterviewerID,
		Specialization: confirmed.Specialization,
		ScheduledAt:    confirmed.SlotStart,
		EndsAt:         confirmed.SlotEnd,
		Status:         models.InterviewStatusScheduled,
	}
	if err := s.Interviews.Create(ctx, interview); err != nil {
		logger.Error("Confirm: failed to create interview",
			zap.String("bookingId", confirmed.ID),
			zap.Error(err))
	} else {
		if err := s.Bookings.SetInterviewID(ctx, confirmed.ID, interview.ID); err != nil {
			logger.Error("Confirm: failed to link interview",
				zap.String("bookingId", confirmed.ID),
				zap.Error(err))
		}
		confirmed.InterviewID = interview.ID
	}

	// The slot turns candidate-visible again (booked, interview scheduled).
	s.invalidateListings(ctx)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleInterviewReminder(*confirmed); err != nil {
			logger.Warn("Confirm: failed to schedule reminder",
				zap.String("bookingId", confirmed.ID),
				zap.Error(err))
		}
	}

	s.publish(ctx, events.BookingConfirmed, *confirmed)
	s.notify(ctx, confirmed.CandidateID, models.NotificationBooking,
		"Бронирование подтверждено",
		fmt.Sprintf("Интервью «%s» назначено на %s", confirmed.Specialization,
			confirmed.SlotStart.Format("02.01.2006 15:04")))

	return confirmed, nil
}

func (s *DefaultBookingService) ListForCandidate(ctx context.Context, candidateID string) ([]models.Booking, error) {
	return s.Bookings.ListByCandidate(ctx, candidateID)
}

func (s *DefaultBookingService) ListForInterviewer(ctx context.Context, interviewerID string) ([]models.Booking, error) {
	return s.Bookings.ListByInterviewer(ctx, interviewerID)
}

// CompleteExpired is the periodic sweep turning finished CONFIRMED bookings
// into COMPLETED ones, together with their interviews.
func (s *DefaultBookingService) CompleteExpired(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	expired, err := s.Bookings.ListExpiredConfirmed(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired bookings: %w", err)
	}

	completed := 0
	for _, b := range expired {
		done, err := s.Bookings.TransitionStatus(ctx, b.ID,
			[]string{models.BookingStatusConfirmed},
			models.BookingStatusCompleted, nil)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				logger.Error("CompleteExpired: transition failed",
					zap.String("bookingId", b.ID),
					zap.Error(err))
			}
			continue
		}
		completed++

		if done.InterviewID != "" {
			_, err := s.Interviews.TransitionStatus(ctx, done.InterviewID,
				[]string{models.InterviewStatusScheduled, models.InterviewStatusInProgress},
				models.InterviewStatusCompleted)
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				logger.Error("CompleteExpired: interview transition failed",
					zap.String("interviewId", done.InterviewID),
					zap.Error(err))
			}
		}

		s.publish(ctx, events.BookingCompleted, *done)
	}
	if completed > 0 {
		s.invalidateListings(ctx)
	}
	return completed, nil
}

func (s *DefaultBookingService) publish(ctx context.Context, eventType string, b models.Booking) {
	if s.Events == nil {
		return
	}
	// Best effort: the publisher logs its own failures.
	_ = s.Events.PublishBookingEvent(ctx, events.NewBookingEvent(eventType, b))
}

func (s *DefaultBookingService) notify(ctx context.Context, userID, notificationType, title, body string) {
	if s.Notifications == nil {
		return
	}
	if err := s.Notifications.Notify(ctx, userID, notificationType, title, body); err != nil {
		utils.GetLogger().Warn("booking: notification failed",
			zap.String("userId", userID),
			zap.Error(err))
	}
}
