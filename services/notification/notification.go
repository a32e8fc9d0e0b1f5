package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"supermock/models"
	"supermock/utils"
)

// Notify stores the notification and sends a best-effort push. A push
// failure is logged, never propagated: the in-app record is the source of
// truth.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, notificationType, title, body string) error {
	n := &models.Notification{
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.sendPush(ctx, userID, title, body, map[string]string{"type": notificationType}); err != nil {
		utils.GetLogger().Warn("Notify: push delivery failed",
			zap.String("userId", userID),
			zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) sendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	return s.Repo.MarkRead(ctx, notificationID, userID)
}

func (s *DefaultNotificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.Repo.CountUnread(ctx, userID)
}
