package models

import "time"

// Points transaction types.
const (
	PointsTxEarned   = "EARNED"
	PointsTxSpent    = "SPENT"
	PointsTxRefunded = "REFUNDED"
)

// PointsAccount holds a user's credit balance. The balance is the running
// sum of signed transaction amounts and never goes negative.
type PointsAccount struct {
	UserID    string    `bson:"userId" json:"userId"`
	Balance   int       `bson:"balance" json:"balance"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PointsTransaction is a single ledger entry. Amount is always positive;
// the type determines the sign applied to the balance.
type PointsTransaction struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Type        string    `bson:"type" json:"type"`
	Amount      int       `bson:"amount" json:"amount"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Signed returns the amount with the sign implied by the transaction type.
func (t PointsTransaction) Signed() int {
	if t.Type == PointsTxSpent {
		return -t.Amount
	}
	return t.Amount
}

// Admin balance adjustment actions.
const (
	PointsActionAdd      = "add"
	PointsActionSubtract = "subtract"
	PointsActionSet      = "set"
)

// AdminPointsRequest is the payload for an admin balance mutation. Every
// accepted mutation produces exactly one PointsTransaction. Amount may be
// zero: "set" to zero empties the balance. Per-action bounds are enforced
// by the service.
type AdminPointsRequest struct {
	Action      string `json:"action" binding:"required"`
	Amount      int    `json:"amount" binding:"min=0"`
	Description string `json:"description"`
}

// TransactionPage is a newest-first page of ledger entries.
type TransactionPage struct {
	Transactions []PointsTransaction `json:"transactions"`
	Total        int64               `json:"total"`
	Page         int                 `json:"page"`
	Limit        int                 `json:"limit"`
}
