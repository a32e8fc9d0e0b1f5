package interview

import (
	"context"

	interviewRepo "supermock/database/repository/interview"
	"supermock/models"
	"supermock/services/notification"
)

// InterviewService manages the lifecycle of confirmed interviews. Interviews
// are created by the booking flow; this service covers everything after that:
// status transitions, feedback and scoring.
type InterviewService interface {
	CreateInterview(ctx context.Context, iv models.Interview) (*models.Interview, error)
	DeleteInterview(ctx context.Context, interviewID string) error
	GetInterview(ctx context.Context, userID, role, interviewID string) (*models.Interview, error)
	ListInterviews(ctx context.Context, userID string) ([]models.Interview, error)
	UpdateInterview(ctx context.Context, userID, interviewID string, req models.UpdateInterviewRequest) (*models.Interview, error)
	Start(ctx context.Context, userID, interviewID string) (*models.Interview, error)
	Complete(ctx context.Context, userID, interviewID string, feedback string) (*models.Interview, error)
	AddScore(ctx context.Context, userID, interviewID string, req models.AddScoreRequest) (*models.InterviewScore, error)
	ListScores(ctx context.Context, userID, role, interviewID string) ([]models.InterviewScore, error)
}

// DefaultInterviewService is the production implementation.
type DefaultInterviewService struct {
	Repo          interviewRepo.InterviewRepository
	Notifications notification.NotificationService
}
