package models

import "time"

// User roles.
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
	RoleAdmin       = "admin"
)

// User represents a platform account. A user books interviews as a candidate
// or publishes time slots as an interviewer, depending on the role.
type User struct {
	ID              string    `bson:"id" json:"id"`
	Username        string    `bson:"username" json:"username"`
	Email           string    `bson:"email" json:"email"`
	Password        string    `bson:"-" json:"password,omitempty"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	Role            string    `bson:"role" json:"role"`
	Specializations []string  `bson:"specializations,omitempty" json:"specializations,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL       string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	FCMToken        string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash       string    `bson:"tokenHash,omitempty" json:"-"`
	Blocked         bool      `bson:"blocked" json:"blocked"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest carries editable profile fields.
type UpdateProfileRequest struct {
	Username        *string  `json:"username,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	FCMToken        *string  `json:"fcmToken,omitempty"`
}

// UpdatePasswordRequest carries a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
