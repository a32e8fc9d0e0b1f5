package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"supermock/config"
	"supermock/models"
	"supermock/services/notification"
	"supermock/utils"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		reminderRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		logger.Info("firing interview reminder",
			zap.String("bookingId", p.BookingID),
			zap.String("userId", p.UserID))

		if err := notifSvc.Notify(ctx, p.UserID, models.NotificationInterview, p.Title, p.Body); err != nil {
			logger.Error("failed to deliver reminder",
				zap.String("userId", p.UserID),
				zap.Error(err))
			return err
		}
		return nil
	}
}

func reminderRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}
