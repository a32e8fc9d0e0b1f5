package admin

import (
	"context"

	blockRepo "supermock/database/repository/block"
	userRepo "supermock/database/repository/user"
	"supermock/models"
	"supermock/services/notification"
)

// AdminService covers moderation tooling: the user directory, account
// blocks and direct notifications.
type AdminService interface {
	ListUsers(ctx context.Context, page, limit int, search string) ([]models.User, int64, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	BlockUser(ctx context.Context, adminID string, req models.CreateBlockRequest) (*models.UserBlock, error)
	UnblockUser(ctx context.Context, blockID string) error
	ListBlocks(ctx context.Context, userID string) ([]models.UserBlock, error)
	SendNotification(ctx context.Context, userID string, req models.AdminNotificationRequest) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Directory     UserDirectory
	Users         userRepo.UserRepository
	Blocks        blockRepo.BlockRepository
	Notifications notification.NotificationService
}
