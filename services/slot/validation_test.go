package slot

import (
	"errors"
	"testing"
	"time"

	"supermock/models"
)

func mustValidator(t *testing.T) *SlotValidator {
	t.Helper()
	v, err := NewSlotValidator()
	if err != nil {
		t.Fatalf("NewSlotValidator() error = %v", err)
	}
	return v
}

func TestValidateCreate(t *testing.T) {
	v := mustValidator(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     models.CreateSlotRequest
		wantErr bool
	}{
		{
			name: "valid one hour slot",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(3 * time.Hour),
			},
		},
		{
			name: "valid at minimum duration",
			req: models.CreateSlotRequest{
				Specialization: "Frontend разработка",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(2*time.Hour + 30*time.Minute),
			},
		},
		{
			name: "valid at maximum duration",
			req: models.CreateSlotRequest{
				Specialization: "System Design",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(5 * time.Hour),
			},
		},
		{
			name: "unknown specialization",
			req: models.CreateSlotRequest{
				Specialization: "Квантовая разработка",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(3 * time.Hour),
			},
			wantErr: true,
		},
		{
			name: "starts inside lead window",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(30 * time.Minute),
				EndTime:        now.Add(90 * time.Minute),
			},
			wantErr: true,
		},
		{
			name: "starts in the past",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(-time.Hour),
				EndTime:        now.Add(time.Hour),
			},
			wantErr: true,
		},
		{
			name: "too short",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(2*time.Hour + 29*time.Minute),
			},
			wantErr: true,
		},
		{
			name: "too long",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(2 * time.Hour),
				EndTime:        now.Add(5*time.Hour + time.Minute),
			},
			wantErr: true,
		},
		{
			name: "end before start",
			req: models.CreateSlotRequest{
				Specialization: "Backend разработка",
				StartTime:      now.Add(3 * time.Hour),
				EndTime:        now.Add(2 * time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(tt.req, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCreate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWindowReportsField(t *testing.T) {
	v := mustValidator(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	err := v.ValidateWindow(now.Add(2*time.Hour), now.Add(2*time.Hour+10*time.Minute), now)
	if err == nil {
		t.Fatal("expected a validation error for a 10 minute slot")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "endTime" {
		t.Errorf("unexpected validation errors: %v", verrs)
	}
}

func TestIsValidSpecialization(t *testing.T) {
	for _, s := range Specializations {
		if !IsValidSpecialization(s) {
			t.Errorf("IsValidSpecialization(%q) = false, want true", s)
		}
	}
	if IsValidSpecialization("backend разработка") {
		t.Error("specialization match must be case sensitive")
	}
	if IsValidSpecialization("") {
		t.Error("empty specialization must be rejected")
	}
}
