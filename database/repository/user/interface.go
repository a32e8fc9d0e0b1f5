// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"supermock/database"
	"supermock/models"
	"supermock/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, page, limit int, search string) ([]models.User, int64, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	r := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("user repo: index setup failed: %v", err)
	}
	return r
}
