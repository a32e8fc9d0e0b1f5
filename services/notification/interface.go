package notification

import (
	"context"

	"supermock/database/repository/notification"
	"supermock/database/repository/user"
	"supermock/models"
)

// NotificationService persists in-app notifications and mirrors them as FCM
// pushes when the recipient has a registered device token.
type NotificationService interface {
	Notify(ctx context.Context, userID, notificationType, title, body string) error
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}
