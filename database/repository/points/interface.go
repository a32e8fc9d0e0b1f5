// File: database/repository/points/interface.go
package pointsRepo

import (
	"context"

	"supermock/database"
	"supermock/models"
	"supermock/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type PointsRepository interface {
	// GetAccount returns the user's account, creating a zero-balance one on
	// first access.
	GetAccount(ctx context.Context, userID string) (*models.PointsAccount, error)

	// Debit atomically subtracts amount from the balance, failing with
	// mongo.ErrNoDocuments when the balance is insufficient.
	Debit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error)
	// Credit atomically adds amount to the balance.
	Credit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error)
	// SetBalance overwrites the balance and returns the previous account state.
	SetBalance(ctx context.Context, userID string, balance int) (*models.PointsAccount, error)

	AddTransaction(ctx context.Context, tx *models.PointsTransaction) error
	ListTransactions(ctx context.Context, userID string, page, limit int) ([]models.PointsTransaction, int64, error)
}

type mongoPointsRepo struct {
	accounts     *mongo.Collection
	transactions *mongo.Collection
}

// NewMongoPointsRepo constructs a new MongoDB PointsRepository.
func NewMongoPointsRepo() PointsRepository {
	db := database.DB()
	r := &mongoPointsRepo{
		accounts:     db.Collection("points_accounts"),
		transactions: db.Collection("points_transactions"),
	}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("points repo: index setup failed: %v", err)
	}
	return r
}
