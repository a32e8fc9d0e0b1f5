package slot

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"supermock/models"
)

// Slot window limits.
const (
	MinSlotDuration = 30 * time.Minute
	MaxSlotDuration = 180 * time.Minute
	// MinLeadTime is how far in the future a slot must start at
	// creation or edit time.
	MinLeadTime = time.Hour
)

// SlotValidator checks slot payloads before anything touches the database.
type SlotValidator struct {
	validate *validator.Validate
}

func NewSlotValidator() (*SlotValidator, error) {
	v := validator.New()
	if err := v.RegisterValidation("specialization", validateSpecialization); err != nil {
		return nil, fmt.Errorf("failed to register 'specialization' validator: %w", err)
	}
	return &SlotValidator{validate: v}, nil
}

func validateSpecialization(fl validator.FieldLevel) bool {
	return IsValidSpecialization(fl.Field().String())
}

// ValidateCreate checks a creation payload against the full rule set.
func (v *SlotValidator) ValidateCreate(req models.CreateSlotRequest, now time.Time) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return v.ValidateWindow(req.StartTime, req.EndTime, now)
}

// ValidateWindow checks the time bounds shared by create and edit:
// the slot must start at least MinLeadTime from now and last between
// MinSlotDuration and MaxSlotDuration.
func (v *SlotValidator) ValidateWindow(start, end time.Time, now time.Time) error {
	var errs ValidationErrors

	if !end.After(start) {
		errs = append(errs, ValidationError{
			Field:   "endTime",
			Message: "endTime must be after startTime",
		})
		return errs
	}

	if start.Before(now.Add(MinLeadTime)) {
		errs = append(errs, ValidationError{
			Field:   "startTime",
			Message: fmt.Sprintf("startTime must be at least %s in the future", MinLeadTime),
		})
	}

	duration := end.Sub(start)
	if duration < MinSlotDuration {
		errs = append(errs, ValidationError{
			Field:   "endTime",
			Message: fmt.Sprintf("slot must last at least %d minutes", int(MinSlotDuration.Minutes())),
		})
	}
	if duration > MaxSlotDuration {
		errs = append(errs, ValidationError{
			Field:   "endTime",
			Message: fmt.Sprintf("slot must not exceed %d minutes", int(MaxSlotDuration.Minutes())),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, fe := range errs {
		msg := fmt.Sprintf("failed on '%s' rule", fe.Tag())
		if fe.Tag() == "specialization" {
			msg = "specialization must be one of the supported categories"
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: msg})
	}
	return out
}
