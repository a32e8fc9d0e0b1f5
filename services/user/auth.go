package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"supermock/config"
	"supermock/models"
	"supermock/utils"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 72 * time.Hour

// Register creates a new account, grants the signup bonus and signs the
// user in.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCandidate
	}
	if !validRole(role) {
		return nil, fmt.Errorf("role must be candidate or interviewer")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if bonus := config.AppConfig.SignupBonusPoints; bonus > 0 && s.Points != nil {
		if err := s.Points.Grant(ctx, userObj.ID, bonus, "Бонус за регистрацию"); err != nil {
			logger.Error("Register: signup bonus grant failed",
				zap.String("userId", userObj.ID),
				zap.Error(err))
		}
	}

	return s.issueSession(ctx, &userObj)
}

// Authenticate verifies credentials and issues a fresh token, replacing any
// previous session.
func (s *DefaultUserService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Blocked {
		return nil, ErrUserBlocked
	}

	return s.issueSession(ctx, u)
}

func (s *DefaultUserService) issueSession(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueSession: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(ctx, u.ID, map[string]interface{}{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("issueSession: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	u.TokenHash = tokenHash

	return &models.AuthResponse{Token: token, User: *u}, nil
}

// RevokeToken invalidates the current session.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	return s.Repo.UpdateFields(ctx, userID, map[string]interface{}{"tokenHash": ""})
}
