package admin

import (
	"time"

	"supermock/models"
)

// SeedUsers returns the fixed accounts backing the fake directory in demo
// environments.
func SeedUsers() []models.User {
	created := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	return []models.User{
		{
			ID:        "11111111-1111-1111-1111-111111111111",
			Username:  "anna.petrova",
			Email:     "anna.petrova@example.com",
			Role:      models.RoleCandidate,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:              "22222222-2222-2222-2222-222222222222",
			Username:        "dmitry.ivanov",
			Email:           "dmitry.ivanov@example.com",
			Role:            models.RoleInterviewer,
			Specializations: []string{"Backend разработка"},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:              "33333333-3333-3333-3333-333333333333",
			Username:        "elena.smirnova",
			Email:           "elena.smirnova@example.com",
			Role:            models.RoleInterviewer,
			Specializations: []string{"Frontend разработка"},
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:        "44444444-4444-4444-4444-444444444444",
			Username:  "admin",
			Email:     "admin@example.com",
			Role:      models.RoleAdmin,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}
