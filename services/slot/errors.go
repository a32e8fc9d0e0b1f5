package slot

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a single rejected slot field. Validation failures
// never reach the repository.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors aggregates every rejected field of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

var (
	// ErrSlotNotFound is returned when the slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotBooked is returned when editing or deleting a slot that already
	// has an active booking.
	ErrSlotBooked = errors.New("slot is booked and can no longer be modified")
	// ErrNotOwner is returned when a user touches another interviewer's slot.
	ErrNotOwner = errors.New("slot belongs to another interviewer")
	// ErrSlotOverlap is returned when the window collides with another slot
	// of the same interviewer.
	ErrSlotOverlap = errors.New("slot overlaps an existing slot")
)
