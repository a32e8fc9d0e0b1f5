package points

import "errors"

// ErrInsufficientPoints is returned when a debit would take the balance
// below zero. The message is shown to the user as-is.
var ErrInsufficientPoints = errors.New("Недостаточно баллов")

// ErrInvalidAdjustment is returned for a malformed admin mutation.
var ErrInvalidAdjustment = errors.New("invalid points adjustment")
