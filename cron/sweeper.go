package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"supermock/services/booking"
	"supermock/utils"
)

// StartCompletionSweeper runs the periodic sweep that completes finished
// bookings and their interviews. Returns the cron runner so main can stop it
// on shutdown.
func StartCompletionSweeper(bookingSvc booking.BookingService) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := bookingSvc.CompleteExpired(ctx)
		if err != nil {
			logger.Error("completion sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("completion sweep finished", zap.Int("completed", n))
		}
	})
	if err != nil {
		logger.Fatal("failed to register completion sweep", zap.Error(err))
	}

	c.Start()
	logger.Info("completion sweeper started")
	return c
}
