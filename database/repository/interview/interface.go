// File: database/repository/interview/interface.go
package interviewRepo

import (
	"context"

	"supermock/database"
	"supermock/models"
	"supermock/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, interviewID string) (*models.Interview, error)
	GetByIDs(ctx context.Context, interviewIDs []string) (map[string]models.Interview, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Interview, error)
	UpdateFields(ctx context.Context, interviewID string, fields map[string]interface{}) error
	// TransitionStatus conditionally moves the interview between statuses.
	TransitionStatus(ctx context.Context, interviewID string, from []string, to string) (*models.Interview, error)
	Delete(ctx context.Context, interviewID string) error

	AddScore(ctx context.Context, score *models.InterviewScore) error
	ListScores(ctx context.Context, interviewID string) ([]models.InterviewScore, error)
}

type mongoInterviewRepo struct {
	coll   *mongo.Collection
	scores *mongo.Collection
}

// NewMongoInterviewRepo constructs a new MongoDB InterviewRepository.
func NewMongoInterviewRepo() InterviewRepository {
	db := database.DB()
	r := &mongoInterviewRepo{
		coll:   db.Collection("interviews"),
		scores: db.Collection("interview_scores"),
	}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("interview repo: index setup failed: %v", err)
	}
	return r
}
