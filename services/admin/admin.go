package admin

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

// ErrBlockNotFound is returned when removing an unknown block.
var ErrBlockNotFound = errors.New("block not found")

// ListUsers pages through the directory with an optional username/email
// search.
func (s *DefaultAdminService) ListUsers(ctx context.Context, page, limit int, search string) ([]models.User, int64, error) {
	return s.Directory.ListUsers(ctx, page, limit, search)
}

// GetUser returns one directory entry.
func (s *DefaultAdminService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.Directory.GetUser(ctx, userID)
}

// BlockUser records a block and flips the account's blocked flag, cutting
// off authentication on the next request.
func (s *DefaultAdminService) BlockUser(ctx context.Context, adminID string, req models.CreateBlockRequest) (*models.UserBlock, error) {
	if _, err := s.Directory.GetUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	block := models.UserBlock{
		UserID:    req.UserID,
		Reason:    req.Reason,
		CreatedBy: adminID,
	}
	if err := s.Blocks.Create(ctx, &block); err != nil {
		return nil, fmt.Errorf("failed to create block: %w", err)
	}

	if err := s.Users.SetBlocked(ctx, req.UserID, true); err != nil {
		utils.GetLogger().Error("BlockUser: failed to flag account",
			zap.String("userId", req.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to block user: %w", err)
	}

	utils.GetLogger().Info("user blocked",
		zap.String("userId", req.UserID),
		zap.String("adminId", adminID))
	return &block, nil
}

// UnblockUser removes a block. The account is unflagged only when no other
// blocks remain against it.
func (s *DefaultAdminService) UnblockUser(ctx context.Context, blockID string) error {
	block, err := s.Blocks.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBlockNotFound
		}
		return err
	}

	if err := s.Blocks.Delete(ctx, blockID); err != nil {
		return fmt.Errorf("failed to remove block: %w", err)
	}

	remaining, err := s.Blocks.ListByUser(ctx, block.UserID)
	if err != nil {
		return fmt.Errorf("failed to check remaining blocks: %w", err)
	}
	if len(remaining) == 0 {
		if err := s.Users.SetBlocked(ctx, block.UserID, false); err != nil {
			return fmt.Errorf("failed to unblock user: %w", err)
		}
	}
	return nil
}

// ListBlocks returns the block history for one user.
func (s *DefaultAdminService) ListBlocks(ctx context.Context, userID string) ([]models.UserBlock, error) {
	return s.Blocks.ListByUser(ctx, userID)
}

// SendNotification delivers a direct admin message to a user.
func (s *DefaultAdminService) SendNotification(ctx context.Context, userID string, req models.AdminNotificationRequest) error {
	if _, err := s.Directory.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.Notifications.Notify(ctx, userID, models.NotificationSystem, req.Title, req.Body)
}
