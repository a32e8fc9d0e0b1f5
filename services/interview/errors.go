package interview

import "errors"

var (
	// ErrInterviewNotFound is returned when the interview does not exist.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrForbidden is returned when the caller is not a participant.
	ErrForbidden = errors.New("not a participant of this interview")
	// ErrNotInterviewer is returned for interviewer-only operations.
	ErrNotInterviewer = errors.New("only the interviewer can perform this action")
	// ErrInvalidTransition is returned for disallowed status changes.
	ErrInvalidTransition = errors.New("invalid interview status transition")
	// ErrNotCompleted is returned when scoring an unfinished interview.
	ErrNotCompleted = errors.New("interview is not completed yet")
)
