package models

import "time"

// Interest is an admin-managed taxonomy entry users attach to their profile.
// Distinct from slot specializations, which are a fixed enumerated set.
type Interest struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InterestRequest is the payload for creating or renaming an interest.
type InterestRequest struct {
	Name string `json:"name" binding:"required"`
}
