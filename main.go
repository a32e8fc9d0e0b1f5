package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"supermock/config"
	"supermock/cron"
	"supermock/database"
	blockRepoPkg "supermock/database/repository/block"
	bookingRepoPkg "supermock/database/repository/booking"
	interestRepoPkg "supermock/database/repository/interest"
	interviewRepoPkg "supermock/database/repository/interview"
	notificationRepoPkg "supermock/database/repository/notification"
	pointsRepoPkg "supermock/database/repository/points"
	timeslotRepoPkg "supermock/database/repository/timeslot"
	userRepoPkg "supermock/database/repository/user"
	"supermock/events"
	"supermock/handlers"
	"supermock/middleware"
	"supermock/routes"
	"supermock/services/admin"
	"supermock/services/booking"
	"supermock/services/interview"
	"supermock/services/notification"
	"supermock/services/points"
	"supermock/services/slot"
	"supermock/services/user"
	"supermock/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	timeslotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	pointsRepo := pointsRepoPkg.NewMongoPointsRepo()
	interviewRepo := interviewRepoPkg.NewMongoInterviewRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	blockRepo := blockRepoPkg.NewMongoBlockRepo()
	interestRepo := interestRepoPkg.NewMongoInterestRepo()

	// services.
	pointsService := &points.DefaultPointsService{
		Repo: pointsRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Points: pointsService,
	}
	slotValidator, err := slot.NewSlotValidator()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build slot validator: %v", err)
	}
	slotService := &slot.DefaultSlotService{
		Repo:      timeslotRepo,
		Validator: slotValidator,
		Cache:     utils.GetCacheClient(),
	}

	eventPublisher := events.NewPublisher()
	reminderClient := cron.NewReminderClient()

	bookingService := &booking.DefaultBookingService{
		Bookings:      bookingRepo,
		Slots:         timeslotRepo,
		Interviews:    interviewRepo,
		Points:        pointsService,
		Notifications: notificationService,
		Events:        eventPublisher,
		Reminders:     reminderClient,
		Cache:         utils.GetCacheClient(),
	}
	interviewService := &interview.DefaultInterviewService{
		Repo:          interviewRepo,
		Notifications: notificationService,
	}

	var directory admin.UserDirectory
	if config.AppConfig.FakeUserDirectory {
		directory = admin.NewFakeDirectory(admin.SeedUsers())
	} else {
		directory = admin.NewMongoDirectory(userRepo)
	}
	adminService := &admin.DefaultAdminService{
		Directory:     directory,
		Users:         userRepo,
		Blocks:        blockRepo,
		Notifications: notificationService,
	}

	// background workers.
	cron.InitReminderWorker(notificationService)
	sweeper := cron.StartCompletionSweeper(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Users:         &handlers.UserHandler{Service: userService, Storage: storageService},
		TimeSlots:     &handlers.TimeSlotHandler{Slots: slotService, Bookings: bookingService},
		Bookings:      &handlers.BookingHandler{Service: bookingService},
		Points:        &handlers.PointsHandler{Service: pointsService},
		Interviews:    &handlers.InterviewHandler{Service: interviewService},
		Notifications: &handlers.NotificationHandler{Service: notificationService},
		Admin:         &handlers.AdminHandler{Service: adminService},
		Interests:     &handlers.InterestHandler{Repo: interestRepo},
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache":     utils.GetCacheClient(),
			"authCache": utils.GetAuthCacheClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sweeper.Stop()
	if err := reminderClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder client: %v", err)
	}
	if err := eventPublisher.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close event publisher: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
