package models

import "time"

// UserBlock suspends an account. A blocked user fails authentication until
// the block is removed.
type UserBlock struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateBlockRequest is the payload for blocking a user.
type CreateBlockRequest struct {
	UserID string `json:"userId" binding:"required"`
	Reason string `json:"reason"`
}
