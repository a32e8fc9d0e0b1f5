package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"supermock/models"
	"supermock/services/points"
)

type mockSlotRepo struct {
	getByID         func(ctx context.Context, slotID string) (*models.TimeSlot, error)
	reserve         func(ctx context.Context, slotID string) (*models.TimeSlot, error)
	release         func(ctx context.Context, slotID string) error
	list            func(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error)
	findOverlapping func(ctx context.Context, interviewerID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error)
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error { return nil }
func (m *mockSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	return m.getByID(ctx, slotID)
}
func (m *mockSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error {
	return nil
}
func (m *mockSlotRepo) DeleteAvailable(ctx context.Context, interviewerID, slotID string) error {
	return nil
}
func (m *mockSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
	return m.list(ctx, filter)
}
func (m *mockSlotRepo) FindOverlapping(ctx context.Context, interviewerID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error) {
	if m.findOverlapping == nil {
		return nil, nil
	}
	return m.findOverlapping(ctx, interviewerID, start, end, excludeID)
}
func (m *mockSlotRepo) Reserve(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	return m.reserve(ctx, slotID)
}
func (m *mockSlotRepo) Release(ctx context.Context, slotID string) error {
	return m.release(ctx, slotID)
}
func (m *mockSlotRepo) CancelAvailable(ctx context.Context, interviewerID, slotID string) error {
	return nil
}

type mockBookingRepo struct {
	create           func(ctx context.Context, booking *models.Booking) error
	getByID          func(ctx context.Context, bookingID string) (*models.Booking, error)
	activeBySlotIDs  func(ctx context.Context, slotIDs []string) (map[string]models.Booking, error)
	transitionStatus func(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error)
	setInterviewID   func(ctx context.Context, bookingID, interviewID string) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.create(ctx, booking)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return m.getByID(ctx, bookingID)
}
func (m *mockBookingRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) ListByInterviewer(ctx context.Context, interviewerID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) ActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string]models.Booking, error) {
	if m.activeBySlotIDs == nil {
		return map[string]models.Booking{}, nil
	}
	return m.activeBySlotIDs(ctx, slotIDs)
}
func (m *mockBookingRepo) TransitionStatus(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error) {
	return m.transitionStatus(ctx, bookingID, from, to, extra)
}
func (m *mockBookingRepo) SetInterviewID(ctx context.Context, bookingID, interviewID string) error {
	if m.setInterviewID == nil {
		return nil
	}
	return m.setInterviewID(ctx, bookingID, interviewID)
}
func (m *mockBookingRepo) ListExpiredConfirmed(ctx context.Context, now time.Time) ([]models.Booking, error) {
	return nil, nil
}

type mockInterviewRepo struct {
	create           func(ctx context.Context, interview *models.Interview) error
	getByIDs         func(ctx context.Context, interviewIDs []string) (map[string]models.Interview, error)
	transitionStatus func(ctx context.Context, interviewID string, from []string, to string) (*models.Interview, error)
}

func (m *mockInterviewRepo) Create(ctx context.Context, interview *models.Interview) error {
	if m.create == nil {
		interview.ID = "iv-1"
		return nil
	}
	return m.create(ctx, interview)
}
func (m *mockInterviewRepo) GetByID(ctx context.Context, interviewID string) (*models.Interview, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockInterviewRepo) GetByIDs(ctx context.Context, interviewIDs []string) (map[string]models.Interview, error) {
	if m.getByIDs == nil {
		return map[string]models.Interview{}, nil
	}
	return m.getByIDs(ctx, interviewIDs)
}
func (m *mockInterviewRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Interview, error) {
	return nil, nil
}
func (m *mockInterviewRepo) UpdateFields(ctx context.Context, interviewID string, fields map[string]interface{}) error {
	return nil
}
func (m *mockInterviewRepo) TransitionStatus(ctx context.Context, interviewID string, from []string, to string) (*models.Interview, error) {
	if m.transitionStatus == nil {
		return &models.Interview{ID: interviewID, Status: to}, nil
	}
	return m.transitionStatus(ctx, interviewID, from, to)
}
func (m *mockInterviewRepo) Delete(ctx context.Context, interviewID string) error { return nil }
func (m *mockInterviewRepo) AddScore(ctx context.Context, score *models.InterviewScore) error {
	return nil
}
func (m *mockInterviewRepo) ListScores(ctx context.Context, interviewID string) ([]models.InterviewScore, error) {
	return nil, nil
}

type mockPointsService struct {
	getBalance func(ctx context.Context, userID string) (int, error)
	spend      func(ctx context.Context, userID string, amount int, description string) error
	refund     func(ctx context.Context, userID string, amount int, description string) error
}

func (m *mockPointsService) GetBalance(ctx context.Context, userID string) (int, error) {
	return m.getBalance(ctx, userID)
}
func (m *mockPointsService) GetTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error) {
	return nil, nil
}
func (m *mockPointsService) Spend(ctx context.Context, userID string, amount int, description string) error {
	return m.spend(ctx, userID, amount, description)
}
func (m *mockPointsService) Refund(ctx context.Context, userID string, amount int, description string) error {
	if m.refund == nil {
		return nil
	}
	return m.refund(ctx, userID, amount, description)
}
func (m *mockPointsService) Grant(ctx context.Context, userID string, amount int, description string) error {
	return nil
}
func (m *mockPointsService) AdminAdjust(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
	return nil, nil
}

type mockReminders struct {
	scheduled []models.Booking
}

func (m *mockReminders) ScheduleInterviewReminder(booking models.Booking) error {
	m.scheduled = append(m.scheduled, booking)
	return nil
}

func availableSlot() *models.TimeSlot {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	return &models.TimeSlot{
		ID:             "slot-1",
		InterviewerID:  "interviewer-1",
		Specialization: "Backend разработка",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		Status:         models.SlotStatusAvailable,
	}
}

func TestBookSuccess(t *testing.T) {
	slot := availableSlot()
	var created *models.Booking

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			getByID: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return slot, nil
			},
			reserve: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				reserved := *slot
				reserved.Status = models.SlotStatusBooked
				return &reserved, nil
			},
			release: func(ctx context.Context, slotID string) error {
				t.Error("Release must not be called on the happy path")
				return nil
			},
		},
		Bookings: &mockBookingRepo{
			create: func(ctx context.Context, booking *models.Booking) error {
				booking.ID = "booking-1"
				created = booking
				return nil
			},
		},
		Interviews: &mockInterviewRepo{},
		Points: &mockPointsService{
			getBalance: func(ctx context.Context, userID string) (int, error) { return 3, nil },
			spend: func(ctx context.Context, userID string, amount int, description string) error {
				if amount != BookingCost {
					t.Errorf("Spend amount = %d, want %d", amount, BookingCost)
				}
				return nil
			},
		},
	}

	b, err := svc.Book(context.Background(), "candidate-1", "slot-1")
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if b.Status != models.BookingStatusCreated {
		t.Errorf("status = %q, want %q", b.Status, models.BookingStatusCreated)
	}
	if b.SlotID != "slot-1" || b.InterviewerID != "interviewer-1" || b.CandidateID != "candidate-1" {
		t.Errorf("unexpected booking parties: %+v", b)
	}
	if b.PointsSpent != BookingCost {
		t.Errorf("pointsSpent = %d, want %d", b.PointsSpent, BookingCost)
	}
	if !b.SlotStart.Equal(slot.StartTime) || !b.SlotEnd.Equal(slot.EndTime) {
		t.Errorf("slot window not denormalized onto booking: %+v", b)
	}
}

func TestBookInsufficientPoints(t *testing.T) {
	reserveCalled := false

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			getByID: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return availableSlot(), nil
			},
			reserve: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				reserveCalled = true
				return nil, nil
			},
			release: func(ctx context.Context, slotID string) error { return nil },
		},
		Bookings:   &mockBookingRepo{},
		Interviews: &mockInterviewRepo{},
		Points: &mockPointsService{
			getBalance: func(ctx context.Context, userID string) (int, error) { return 0, nil },
			spend: func(ctx context.Context, userID string, amount int, description string) error {
				return nil
			},
		},
	}

	_, err := svc.Book(context.Background(), "candidate-1", "slot-1")
	if !errors.Is(err, points.ErrInsufficientPoints) {
		t.Fatalf("Book() error = %v, want ErrInsufficientPoints", err)
	}
	if err.Error() != "Недостаточно баллов" {
		t.Errorf("error message = %q, want %q", err.Error(), "Недостаточно баллов")
	}
	if reserveCalled {
		t.Error("a broke candidate must never reserve the slot")
	}
}

func TestBookOwnSlot(t *testing.T) {
	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			getByID: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return availableSlot(), nil
			},
		},
	}

	_, err := svc.Book(context.Background(), "interviewer-1", "slot-1")
	if !errors.Is(err, ErrOwnSlot) {
		t.Fatalf("Book() error = %v, want ErrOwnSlot", err)
	}
}

func TestBookLosesReservationRace(t *testing.T) {
	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			getByID: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return availableSlot(), nil
			},
			reserve: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return nil, mongo.ErrNoDocuments
			},
		},
		Points: &mockPointsService{
			getBalance: func(ctx context.Context, userID string) (int, error) { return 5, nil },
		},
	}

	_, err := svc.Book(context.Background(), "candidate-1", "slot-1")
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("Book() error = %v, want ErrSlotTaken", err)
	}
}

func TestBookReleasesSlotWhenDebitFails(t *testing.T) {
	released := false

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			getByID: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				return availableSlot(), nil
			},
			reserve: func(ctx context.Context, slotID string) (*models.TimeSlot, error) {
				reserved := *availableSlot()
				reserved.Status = models.SlotStatusBooked
				return &reserved, nil
			},
			release: func(ctx context.Context, slotID string) error {
				released = true
				return nil
			},
		},
		Bookings:   &mockBookingRepo{},
		Interviews: &mockInterviewRepo{},
		Points: &mockPointsService{
			// Balance looked fine but the guarded debit lost a concurrent race.
			getBalance: func(ctx context.Context, userID string) (int, error) { return 1, nil },
			spend: func(ctx context.Context, userID string, amount int, description string) error {
				return points.ErrInsufficientPoints
			},
		},
	}

	_, err := svc.Book(context.Background(), "candidate-1", "slot-1")
	if !errors.Is(err, points.ErrInsufficientPoints) {
		t.Fatalf("Book() error = %v, want ErrInsufficientPoints", err)
	}
	if !released {
		t.Error("slot must be released after a failed debit")
	}
}

func TestConfirm(t *testing.T) {
	stored := &models.Booking{
		ID:            "booking-1",
		SlotID:        "slot-1",
		CandidateID:   "candidate-1",
		InterviewerID: "interviewer-1",
		SlotStart:     time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		SlotEnd:       time.Date(2026, 4, 1, 11, 0, 0, 0, time.UTC),
		Status:        models.BookingStatusCreated,
	}
	reminders := &mockReminders{}
	var linkedInterviewID string

	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return stored, nil
			},
			transitionStatus: func(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error) {
				if len(from) != 1 || from[0] != models.BookingStatusCreated {
					t.Errorf("confirm must only transition from CREATED, got %v", from)
				}
				confirmed := *stored
				confirmed.Status = to
				return &confirmed, nil
			},
			setInterviewID: func(ctx context.Context, bookingID, interviewID string) error {
				linkedInterviewID = interviewID
				return nil
			},
		},
		Interviews: &mockInterviewRepo{
			create: func(ctx context.Context, interview *models.Interview) error {
				interview.ID = "iv-1"
				if interview.Status != models.InterviewStatusScheduled {
					t.Errorf("interview status = %q, want SCHEDULED", interview.Status)
				}
				if interview.BookingID != "booking-1" || interview.SlotID != "slot-1" {
					t.Errorf("interview not linked to booking: %+v", interview)
				}
				return nil
			},
		},
		Reminders: reminders,
	}

	b, err := svc.Confirm(context.Background(), "interviewer-1", "booking-1")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want CONFIRMED", b.Status)
	}
	if linkedInterviewID != "iv-1" || b.InterviewID != "iv-1" {
		t.Errorf("interview id not linked back, got %q / %q", linkedInterviewID, b.InterviewID)
	}
	if len(reminders.scheduled) != 1 {
		t.Errorf("expected one scheduled reminder, got %d", len(reminders.scheduled))
	}
}

func TestConfirmRejectsNonInterviewer(t *testing.T) {
	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return &models.Booking{ID: bookingID, InterviewerID: "interviewer-1", Status: models.BookingStatusCreated}, nil
			},
		},
	}

	_, err := svc.Confirm(context.Background(), "candidate-1", "booking-1")
	if !errors.Is(err, ErrNotInterviewer) {
		t.Fatalf("Confirm() error = %v, want ErrNotInterviewer", err)
	}
}

func TestConfirmRejectsAlreadyConfirmed(t *testing.T) {
	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return &models.Booking{ID: bookingID, InterviewerID: "interviewer-1", Status: models.BookingStatusConfirmed}, nil
			},
			transitionStatus: func(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error) {
				return nil, mongo.ErrNoDocuments
			},
		},
	}

	_, err := svc.Confirm(context.Background(), "interviewer-1", "booking-1")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Confirm() error = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelRefundsAndReleases(t *testing.T) {
	stored := &models.Booking{
		ID:            "booking-1",
		SlotID:        "slot-1",
		CandidateID:   "candidate-1",
		InterviewerID: "interviewer-1",
		Status:        models.BookingStatusConfirmed,
		PointsSpent:   1,
		InterviewID:   "iv-1",
	}
	released := false
	refunded := 0
	interviewCancelled := false

	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return stored, nil
			},
			transitionStatus: func(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error) {
				cancelled := *stored
				cancelled.Status = to
				if reason, ok := extra["cancelReason"].(string); ok {
					cancelled.CancelReason = reason
				}
				return &cancelled, nil
			},
		},
		Slots: &mockSlotRepo{
			release: func(ctx context.Context, slotID string) error {
				released = true
				return nil
			},
		},
		Interviews: &mockInterviewRepo{
			transitionStatus: func(ctx context.Context, interviewID string, from []string, to string) (*models.Interview, error) {
				if to != models.InterviewStatusCancelled {
					t.Errorf("interview transition to %q, want CANCELLED", to)
				}
				interviewCancelled = true
				return &models.Interview{ID: interviewID, Status: to}, nil
			},
		},
		Points: &mockPointsService{
			refund: func(ctx context.Context, userID string, amount int, description string) error {
				refunded = amount
				return nil
			},
		},
	}

	b, err := svc.Cancel(context.Background(), "candidate-1", "booking-1", "не смогу прийти")
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if b.Status != models.BookingStatusCancelled {
		t.Errorf("status = %q, want CANCELLED", b.Status)
	}
	if b.CancelReason != "не смогу прийти" {
		t.Errorf("cancelReason = %q", b.CancelReason)
	}
	if !released {
		t.Error("slot must go back to AVAILABLE on cancel")
	}
	if refunded != 1 {
		t.Errorf("refunded = %d, want 1", refunded)
	}
	if !interviewCancelled {
		t.Error("linked interview must be cancelled")
	}
}

func TestCancelRejectsStranger(t *testing.T) {
	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return &models.Booking{ID: bookingID, CandidateID: "candidate-1", InterviewerID: "interviewer-1"}, nil
			},
		},
	}

	_, err := svc.Cancel(context.Background(), "someone-else", "booking-1", "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Cancel() error = %v, want ErrForbidden", err)
	}
}

func TestCancelRejectsFinishedBooking(t *testing.T) {
	svc := &DefaultBookingService{
		Bookings: &mockBookingRepo{
			getByID: func(ctx context.Context, bookingID string) (*models.Booking, error) {
				return &models.Booking{ID: bookingID, CandidateID: "candidate-1", Status: models.BookingStatusCompleted}, nil
			},
			transitionStatus: func(ctx context.Context, bookingID string, from []string, to string, extra map[string]interface{}) (*models.Booking, error) {
				return nil, mongo.ErrNoDocuments
			},
		},
	}

	_, err := svc.Cancel(context.Background(), "candidate-1", "booking-1", "")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Cancel() error = %v, want ErrInvalidTransition", err)
	}
}

func TestListEligibleSlots(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		{ID: "s1", Status: models.SlotStatusAvailable, StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "s2", Status: models.SlotStatusBooked, StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "s3", Status: models.SlotStatusBooked, StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "s4", Status: models.SlotStatusCancelled, StartTime: start, EndTime: start.Add(time.Hour)},
	}

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			list: func(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
				return slots, nil
			},
		},
		Bookings: &mockBookingRepo{
			activeBySlotIDs: func(ctx context.Context, slotIDs []string) (map[string]models.Booking, error) {
				return map[string]models.Booking{
					"s2": {ID: "b2", SlotID: "s2", InterviewID: "iv2"},
					"s3": {ID: "b3", SlotID: "s3", InterviewID: "iv3"},
				}, nil
			},
		},
		Interviews: &mockInterviewRepo{
			getByIDs: func(ctx context.Context, interviewIDs []string) (map[string]models.Interview, error) {
				return map[string]models.Interview{
					"iv2": {ID: "iv2", Status: models.InterviewStatusInProgress},
					"iv3": {ID: "iv3", Status: models.InterviewStatusCompleted},
				}, nil
			},
		},
	}

	views, err := svc.ListEligibleSlots(context.Background(), "candidate-1", models.SlotFilter{})
	if err != nil {
		t.Fatalf("ListEligibleSlots() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].ID != "s1" || views[0].InterviewStatus != "" {
		t.Errorf("unexpected first view: %+v", views[0])
	}
	if views[1].ID != "s2" || views[1].InterviewStatus != models.InterviewStatusInProgress {
		t.Errorf("unexpected second view: %+v", views[1])
	}
}

func TestListOwnSlotsSkipsEligibilityFilter(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		{ID: "s1", InterviewerID: "interviewer-1", Status: models.SlotStatusCancelled, StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "s2", InterviewerID: "interviewer-1", Status: models.SlotStatusBooked, StartTime: start, EndTime: start.Add(time.Hour)},
	}

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			list: func(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
				if filter.InterviewerID != "interviewer-1" {
					t.Errorf("filter.InterviewerID = %q, want interviewer-1", filter.InterviewerID)
				}
				return slots, nil
			},
		},
		Bookings: &mockBookingRepo{
			activeBySlotIDs: func(ctx context.Context, slotIDs []string) (map[string]models.Booking, error) {
				// s2's booking is still CREATED, no interview yet.
				return map[string]models.Booking{
					"s2": {ID: "b2", SlotID: "s2", Status: models.BookingStatusCreated},
				}, nil
			},
		},
		Interviews: &mockInterviewRepo{},
	}

	// The owner sees both slots even though neither passes the candidate
	// eligibility filter.
	views, err := svc.ListEligibleSlots(context.Background(), "interviewer-1",
		models.SlotFilter{InterviewerID: "interviewer-1"})
	if err != nil {
		t.Fatalf("ListEligibleSlots() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("owner view got %d slots, want 2", len(views))
	}

	// A different caller with the same filter still gets the filtered view.
	views, err = svc.ListEligibleSlots(context.Background(), "candidate-1",
		models.SlotFilter{InterviewerID: "interviewer-1"})
	if err != nil {
		t.Fatalf("ListEligibleSlots() error = %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("candidate view got %d slots, want 0", len(views))
	}
}

func TestListOwnCancelledSlotsByStatusFilter(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	svc := &DefaultBookingService{
		Slots: &mockSlotRepo{
			list: func(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
				if filter.Status != models.SlotStatusCancelled {
					t.Errorf("filter.Status = %q, want CANCELLED", filter.Status)
				}
				return []models.TimeSlot{
					{ID: "s1", InterviewerID: "i1", Status: models.SlotStatusCancelled, StartTime: start, EndTime: start.Add(time.Hour)},
				}, nil
			},
		},
		Bookings:   &mockBookingRepo{},
		Interviews: &mockInterviewRepo{},
	}

	views, err := svc.ListEligibleSlots(context.Background(), "i1",
		models.SlotFilter{InterviewerID: "i1", Status: models.SlotStatusCancelled})
	if err != nil {
		t.Fatalf("ListEligibleSlots() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("interviewer filtering for own CANCELLED slots got %d results, want 1", len(views))
	}
	if views[0].ID != "s1" {
		t.Errorf("unexpected slot: %+v", views[0])
	}
}

func TestEligibleCacheKeyEmbedsGeneration(t *testing.T) {
	filter := models.SlotFilter{Specialization: "Backend разработка", Status: models.SlotStatusAvailable}

	if eligibleCacheKey("1", filter) == eligibleCacheKey("2", filter) {
		t.Error("cache keys from different generations must not collide")
	}
	if eligibleCacheKey("1", filter) != eligibleCacheKey("1", filter) {
		t.Error("cache key must be stable within a generation")
	}
}
