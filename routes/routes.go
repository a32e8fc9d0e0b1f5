package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"supermock/handlers"
	"supermock/middleware"
	"supermock/utils"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.MeHandler)
		api.PUT("/me", hb.Users.UpdateMeHandler)
		api.PUT("/me/password", hb.Users.UpdatePasswordHandler)
		api.DELETE("/me", hb.Users.DeleteMeHandler)
		api.POST("/me/avatar", hb.Users.UploadAvatarHandler)
		api.DELETE("/revoke", hb.Users.RevokeHandler)

		// Interest taxonomy: readable by everyone signed in, managed by admins.
		api.GET("/interests", hb.Interests.ListHandler)
		admin := api.Group("/interests", middleware.RequireAdmin())
		admin.POST("", hb.Interests.CreateHandler)
		admin.PUT("/:id", hb.Interests.RenameHandler)
		admin.DELETE("/:id", hb.Interests.DeleteHandler)
	}
}

// RegisterTimeSlotRoutes registers the slot lifecycle endpoints.
func RegisterTimeSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timeslots")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.TimeSlots.ListHandler)

		manage := api.Group("", middleware.RequireInterviewer())
		manage.POST("", hb.TimeSlots.CreateHandler)
		manage.PATCH("/:id", hb.TimeSlots.UpdateHandler)
		manage.DELETE("/:id", hb.TimeSlots.DeleteHandler)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Bookings.ListHandler)
		api.GET("/interviewer", hb.Bookings.ListInterviewerHandler)
		api.POST("", hb.Bookings.CreateHandler)
		api.PATCH("/:id/cancel", hb.Bookings.CancelHandler)
		api.PATCH("/:id/confirm", hb.Bookings.ConfirmHandler)
	}
}

// RegisterPointsRoutes registers the credit ledger endpoints.
func RegisterPointsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/points")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/balance", hb.Points.BalanceHandler)
		api.GET("/transactions", hb.Points.TransactionsHandler)
		api.POST("/admin/:userId", middleware.RequireAdmin(), hb.Points.AdminAdjustHandler)
	}
}

// RegisterInterviewRoutes registers the interview lifecycle endpoints.
func RegisterInterviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Interviews.ListHandler)
		api.GET("/:id", hb.Interviews.GetHandler)
		api.POST("", middleware.RequireAdmin(), hb.Interviews.CreateHandler)
		api.PATCH("/:id", hb.Interviews.UpdateHandler)
		api.DELETE("/:id", middleware.RequireAdmin(), hb.Interviews.DeleteHandler)
		api.GET("/:id/scores", hb.Interviews.ListScoresHandler)
		api.POST("/:id/scores", hb.Interviews.AddScoreHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.ListHandler)
		api.GET("/unread-count", hb.Notifications.UnreadCountHandler)
		api.PATCH("/:id/read", hb.Notifications.MarkReadHandler)
		api.POST("/admin/:userId", middleware.RequireAdmin(), hb.Admin.SendNotificationHandler)
	}
}

// RegisterAdminRoutes registers the moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.GET("/users/:id", hb.Admin.GetUserHandler)
	}

	blockGroup := r.Group("/api/user-blocks")
	{
		blockGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		blockGroup.POST("", hb.Admin.BlockUserHandler)
		blockGroup.DELETE("/:id", hb.Admin.UnblockUserHandler)
		blockGroup.GET("/user/:id", hb.Admin.ListBlocksHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint serving the latest
// dependency snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterTimeSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPointsRoutes(r, hb)
	RegisterInterviewRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
