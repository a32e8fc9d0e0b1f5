package points

import (
	"context"

	"supermock/database/repository/points"
	"supermock/models"
)

// PointsService is the credit ledger: one point buys one booking.
type PointsService interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	GetTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error)

	// Spend debits amount and records a SPENT transaction. Fails with
	// ErrInsufficientPoints when the balance is too low.
	Spend(ctx context.Context, userID string, amount int, description string) error
	// Refund credits amount back and records a REFUNDED transaction.
	Refund(ctx context.Context, userID string, amount int, description string) error
	// Grant credits amount and records an EARNED transaction.
	Grant(ctx context.Context, userID string, amount int, description string) error

	// AdminAdjust applies an add/subtract/set mutation, producing exactly
	// one transaction.
	AdminAdjust(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error)
}

// DefaultPointsService is the production implementation.
type DefaultPointsService struct {
	Repo pointsRepo.PointsRepository
}
