package booking

import (
	"supermock/models"
)

// SlotEligible is the single predicate deciding whether a slot shows up in a
// candidate-facing listing. A slot is eligible when it is open for booking,
// or when it is booked but its interview is still live; cancelled slots and
// finished interviews are noise and stay hidden.
func SlotEligible(slot models.TimeSlot, booking *models.Booking, interview *models.Interview) bool {
	switch slot.Status {
	case models.SlotStatusAvailable:
		return true
	case models.SlotStatusBooked:
		if booking == nil || interview == nil {
			return false
		}
		return interview.Status == models.InterviewStatusScheduled ||
			interview.Status == models.InterviewStatusInProgress
	default:
		return false
	}
}
