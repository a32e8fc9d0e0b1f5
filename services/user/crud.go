package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"supermock/utils"

	"supermock/models"
)

// GetByID fetches a user by id.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies the provided fields and returns the updated user.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Username != nil {
		if *req.Username == "" {
			return nil, fmt.Errorf("username cannot be empty")
		}
		fields["username"] = *req.Username
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Specializations != nil {
		fields["specializations"] = req.Specializations
	}
	if req.FCMToken != nil {
		fields["fcmToken"] = *req.FCMToken
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(ctx, userID, fields); err != nil {
			utils.GetLogger().Error("UpdateProfile: update failed",
				zap.String("userId", userID),
				zap.Error(err))
			return nil, fmt.Errorf("failed to update profile")
		}
	}
	return s.GetByID(ctx, userID)
}

// UpdatePassword verifies the current password before setting a new one.
// A password change revokes the active session.
func (s *DefaultUserService) UpdatePassword(ctx context.Context, userID string, req models.UpdatePasswordRequest) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := VerifyPasswordComplexity(req.NewPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to update password")
	}

	return s.Repo.UpdateFields(ctx, userID, map[string]interface{}{
		"passwordHash": string(hashed),
		"tokenHash":    "",
	})
}

// SetAvatarURL stores the uploaded avatar location.
func (s *DefaultUserService) SetAvatarURL(ctx context.Context, userID, url string) error {
	return s.Repo.UpdateFields(ctx, userID, map[string]interface{}{"avatarUrl": url})
}

// Delete removes the account.
func (s *DefaultUserService) Delete(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
