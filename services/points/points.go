package points

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetBalance always reads the stored balance; it is never derived locally
// from transaction deltas.
func (s *DefaultPointsService) GetBalance(ctx context.Context, userID string) (int, error) {
	account, err := s.Repo.GetAccount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load points account: %w", err)
	}
	return account.Balance, nil
}

// GetTransactions returns a newest-first page of ledger entries.
func (s *DefaultPointsService) GetTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	txs, total, err := s.Repo.ListTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &models.TransactionPage{
		Transactions: txs,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}

func (s *DefaultPointsService) Spend(ctx context.Context, userID string, amount int, description string) error {
	if amount <= 0 {
		return ErrInvalidAdjustment
	}

	// Make sure the account document exists before the guarded decrement.
	if _, err := s.Repo.GetAccount(ctx, userID); err != nil {
		return fmt.Errorf("failed to load points account: %w", err)
	}

	if _, err := s.Repo.Debit(ctx, userID, amount); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInsufficientPoints
		}
		return fmt.Errorf("failed to debit points: %w", err)
	}

	s.record(ctx, userID, models.PointsTxSpent, amount, description)
	return nil
}

func (s *DefaultPointsService) Refund(ctx context.Context, userID string, amount int, description string) error {
	if amount <= 0 {
		return ErrInvalidAdjustment
	}
	if _, err := s.Repo.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("failed to refund points: %w", err)
	}
	s.record(ctx, userID, models.PointsTxRefunded, amount, description)
	return nil
}

func (s *DefaultPointsService) Grant(ctx context.Context, userID string, amount int, description string) error {
	if amount <= 0 {
		return ErrInvalidAdjustment
	}
	if _, err := s.Repo.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("failed to grant points: %w", err)
	}
	s.record(ctx, userID, models.PointsTxEarned, amount, description)
	return nil
}

// AdminAdjust applies a balance mutation. The transaction type follows the
// sign of the effective change: increases are EARNED, decreases are SPENT.
func (s *DefaultPointsService) AdminAdjust(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
	var (
		account *models.PointsAccount
		err     error
	)

	switch req.Action {
	case models.PointsActionAdd:
		if req.Amount <= 0 {
			return nil, ErrInvalidAdjustment
		}
		account, err = s.Repo.Credit(ctx, userID, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to add points: %w", err)
		}
		s.record(ctx, userID, models.PointsTxEarned, req.Amount, adjustDescription(req))

	case models.PointsActionSubtract:
		if req.Amount <= 0 {
			return nil, ErrInvalidAdjustment
		}
		account, err = s.Repo.Debit(ctx, userID, req.Amount)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrInsufficientPoints
			}
			return nil, fmt.Errorf("failed to subtract points: %w", err)
		}
		s.record(ctx, userID, models.PointsTxSpent, req.Amount, adjustDescription(req))

	case models.PointsActionSet:
		if req.Amount < 0 {
			return nil, ErrInvalidAdjustment
		}
		previous, err := s.Repo.SetBalance(ctx, userID, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to set balance: %w", err)
		}
		delta := req.Amount - previous.Balance
		switch {
		case delta > 0:
			s.record(ctx, userID, models.PointsTxEarned, delta, adjustDescription(req))
		case delta < 0:
			s.record(ctx, userID, models.PointsTxSpent, -delta, adjustDescription(req))
		}
		account = &models.PointsAccount{UserID: userID, Balance: req.Amount}

	default:
		return nil, ErrInvalidAdjustment
	}

	return account, nil
}

func adjustDescription(req models.AdminPointsRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return fmt.Sprintf("admin adjustment (%s)", req.Action)
}

// record appends a ledger entry. The balance mutation has already landed;
// a failed append is logged rather than unwound.
func (s *DefaultPointsService) record(ctx context.Context, userID, txType string, amount int, description string) {
	tx := &models.PointsTransaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
	}
	if err := s.Repo.AddTransaction(ctx, tx); err != nil {
		utils.GetLogger().Error("points: failed to record transaction",
			zap.String("userId", userID),
			zap.String("type", txType),
			zap.Int("amount", amount),
			zap.Error(err))
	}
}
