package points

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"supermock/models"
)

type mockPointsRepo struct {
	getAccount       func(ctx context.Context, userID string) (*models.PointsAccount, error)
	debit            func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error)
	credit           func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error)
	setBalance       func(ctx context.Context, userID string, balance int) (*models.PointsAccount, error)
	addTransaction   func(ctx context.Context, tx *models.PointsTransaction) error
	listTransactions func(ctx context.Context, userID string, page, limit int) ([]models.PointsTransaction, int64, error)
}

func (m *mockPointsRepo) GetAccount(ctx context.Context, userID string) (*models.PointsAccount, error) {
	if m.getAccount == nil {
		return &models.PointsAccount{UserID: userID}, nil
	}
	return m.getAccount(ctx, userID)
}
func (m *mockPointsRepo) Debit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
	return m.debit(ctx, userID, amount)
}
func (m *mockPointsRepo) Credit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
	return m.credit(ctx, userID, amount)
}
func (m *mockPointsRepo) SetBalance(ctx context.Context, userID string, balance int) (*models.PointsAccount, error) {
	return m.setBalance(ctx, userID, balance)
}
func (m *mockPointsRepo) AddTransaction(ctx context.Context, tx *models.PointsTransaction) error {
	if m.addTransaction == nil {
		return nil
	}
	return m.addTransaction(ctx, tx)
}
func (m *mockPointsRepo) ListTransactions(ctx context.Context, userID string, page, limit int) ([]models.PointsTransaction, int64, error) {
	return m.listTransactions(ctx, userID, page, limit)
}

func TestSpendMapsGuardFailure(t *testing.T) {
	svc := &DefaultPointsService{Repo: &mockPointsRepo{
		debit: func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
			return nil, mongo.ErrNoDocuments
		},
	}}

	err := svc.Spend(context.Background(), "u1", 1, "бронирование")
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("Spend() error = %v, want ErrInsufficientPoints", err)
	}
}

func TestSpendRecordsSpentTransaction(t *testing.T) {
	var recorded *models.PointsTransaction
	svc := &DefaultPointsService{Repo: &mockPointsRepo{
		debit: func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
			return &models.PointsAccount{UserID: userID, Balance: 4}, nil
		},
		addTransaction: func(ctx context.Context, tx *models.PointsTransaction) error {
			recorded = tx
			return nil
		},
	}}

	if err := svc.Spend(context.Background(), "u1", 1, "бронирование"); err != nil {
		t.Fatalf("Spend() error = %v", err)
	}
	if recorded == nil {
		t.Fatal("no transaction recorded")
	}
	if recorded.Type != models.PointsTxSpent || recorded.Amount != 1 {
		t.Errorf("transaction = %+v, want SPENT/1", recorded)
	}
	if recorded.Signed() != -1 {
		t.Errorf("Signed() = %d, want -1", recorded.Signed())
	}
}

func TestSpendRejectsNonPositiveAmount(t *testing.T) {
	svc := &DefaultPointsService{Repo: &mockPointsRepo{}}

	for _, amount := range []int{0, -1} {
		if err := svc.Spend(context.Background(), "u1", amount, ""); !errors.Is(err, ErrInvalidAdjustment) {
			t.Errorf("Spend(%d) error = %v, want ErrInvalidAdjustment", amount, err)
		}
	}
}

func TestGetTransactionsClampsPagination(t *testing.T) {
	var gotPage, gotLimit int
	svc := &DefaultPointsService{Repo: &mockPointsRepo{
		listTransactions: func(ctx context.Context, userID string, page, limit int) ([]models.PointsTransaction, int64, error) {
			gotPage, gotLimit = page, limit
			return nil, 0, nil
		},
	}}

	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-5, -5, 1, 20},
		{2, 50, 2, 50},
		{1, 1000, 1, 100},
	}
	for _, tt := range tests {
		page, err := svc.GetTransactions(context.Background(), "u1", tt.page, tt.limit)
		if err != nil {
			t.Fatalf("GetTransactions(%d, %d) error = %v", tt.page, tt.limit, err)
		}
		if gotPage != tt.wantPage || gotLimit != tt.wantLimit {
			t.Errorf("GetTransactions(%d, %d) queried page=%d limit=%d, want %d/%d",
				tt.page, tt.limit, gotPage, gotLimit, tt.wantPage, tt.wantLimit)
		}
		if page.Page != tt.wantPage || page.Limit != tt.wantLimit {
			t.Errorf("page meta = %d/%d, want %d/%d", page.Page, page.Limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestAdminAdjustAdd(t *testing.T) {
	var txs []models.PointsTransaction
	svc := &DefaultPointsService{Repo: &mockPointsRepo{
		credit: func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
			return &models.PointsAccount{UserID: userID, Balance: 7}, nil
		},
		addTransaction: func(ctx context.Context, tx *models.PointsTransaction) error {
			txs = append(txs, *tx)
			return nil
		},
	}}

	account, err := svc.AdminAdjust(context.Background(), "u1", models.AdminPointsRequest{Action: models.PointsActionAdd, Amount: 5})
	if err != nil {
		t.Fatalf("AdminAdjust() error = %v", err)
	}
	if account.Balance != 7 {
		t.Errorf("balance = %d, want 7", account.Balance)
	}
	if len(txs) != 1 || txs[0].Type != models.PointsTxEarned || txs[0].Amount != 5 {
		t.Errorf("transactions = %+v, want one EARNED/5", txs)
	}
}

func TestAdminAdjustSubtractBelowBalance(t *testing.T) {
	svc := &DefaultPointsService{Repo: &mockPointsRepo{
		debit: func(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
			return nil, mongo.ErrNoDocuments
		},
	}}

	_, err := svc.AdminAdjust(context.Background(), "u1", models.AdminPointsRequest{Action: models.PointsActionSubtract, Amount: 10})
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("AdminAdjust() error = %v, want ErrInsufficientPoints", err)
	}
}

func TestAdminAdjustSetRecordsDelta(t *testing.T) {
	tests := []struct {
		name       string
		previous   int
		target     int
		wantType   string
		wantAmount int
		wantNoTx   bool
	}{
		{name: "increase", previous: 2, target: 10, wantType: models.PointsTxEarned, wantAmount: 8},
		{name: "decrease", previous: 10, target: 3, wantType: models.PointsTxSpent, wantAmount: 7},
		{name: "unchanged", previous: 5, target: 5, wantNoTx: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []models.PointsTransaction
			svc := &DefaultPointsService{Repo: &mockPointsRepo{
				setBalance: func(ctx context.Context, userID string, balance int) (*models.PointsAccount, error) {
					return &models.PointsAccount{UserID: userID, Balance: tt.previous}, nil
				},
				addTransaction: func(ctx context.Context, tx *models.PointsTransaction) error {
					txs = append(txs, *tx)
					return nil
				},
			}}

			account, err := svc.AdminAdjust(context.Background(), "u1",
				models.AdminPointsRequest{Action: models.PointsActionSet, Amount: tt.target})
			if err != nil {
				t.Fatalf("AdminAdjust() error = %v", err)
			}
			if account.Balance != tt.target {
				t.Errorf("balance = %d, want %d", account.Balance, tt.target)
			}
			if tt.wantNoTx {
				if len(txs) != 0 {
					t.Errorf("expected no transaction, got %+v", txs)
				}
				return
			}
			if len(txs) != 1 {
				t.Fatalf("expected exactly one transaction, got %d", len(txs))
			}
			if txs[0].Type != tt.wantType || txs[0].Amount != tt.wantAmount {
				t.Errorf("transaction = %+v, want %s/%d", txs[0], tt.wantType, tt.wantAmount)
			}
		})
	}
}

func TestAdminAdjustRejectsUnknownAction(t *testing.T) {
	svc := &DefaultPointsService{Repo: &mockPointsRepo{}}

	_, err := svc.AdminAdjust(context.Background(), "u1", models.AdminPointsRequest{Action: "multiply", Amount: 2})
	if !errors.Is(err, ErrInvalidAdjustment) {
		t.Fatalf("AdminAdjust() error = %v, want ErrInvalidAdjustment", err)
	}
}
