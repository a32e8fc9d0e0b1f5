package user

import (
	"context"

	"supermock/database/repository/user"
	"supermock/models"
	"supermock/services/points"
)

// UserService manages accounts and sessions.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID string, req models.UpdatePasswordRequest) error
	SetAvatarURL(ctx context.Context, userID, url string) error
	Delete(ctx context.Context, userID string) error
	RevokeToken(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Points points.PointsService
}
