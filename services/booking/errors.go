package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSlotNotFound is returned when the referenced slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotTaken is returned when another candidate reserved the slot
	// first, or the slot is otherwise not AVAILABLE.
	ErrSlotTaken = errors.New("slot is no longer available")
	// ErrOwnSlot is returned when an interviewer tries to book their own slot.
	ErrOwnSlot = errors.New("cannot book your own slot")
	// ErrForbidden is returned when the actor is neither party of the booking.
	ErrForbidden = errors.New("not a participant of this booking")
	// ErrNotInterviewer is returned when someone other than the slot's
	// interviewer confirms a booking.
	ErrNotInterviewer = errors.New("only the slot's interviewer may confirm")
	// ErrInvalidTransition is returned for a state change the booking's
	// current status does not allow.
	ErrInvalidTransition = errors.New("booking status does not allow this action")
)
