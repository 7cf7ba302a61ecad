package app

import (
	"BE-Cafe-Corner/app/handlers"
	"BE-Cafe-Corner/app/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	userHandler *handlers.UserHandler,
	reservationHandler *handlers.ReservationHandler,
	menuHandler *handlers.MenuHandler,
	blogHandler *handlers.BlogHandler,
	contactHandler *handlers.ContactHandler,
	settingsHandler *handlers.SettingsHandler,
	dashboardHandler *handlers.DashboardHandler,
	imageHandler *handlers.ImageHandler,
) {
	// Auth routes
	e.POST("/login", userHandler.Login)
	e.POST("/logout", userHandler.Logout)
	e.POST("/register", userHandler.RegisterUser)
	e.POST("/password/reset_request", userHandler.PasswordReset)
	e.PUT("/password/reset/:token", userHandler.PasswordResetConfirm)
	e.GET("/auth/google", userHandler.GoogleLogin)
	e.GET("/auth/google/callback", userHandler.GoogleCallback)

	userGroup := e.Group("/users")
	userGroup.Use(middleware.RoleAuthMiddleware("user", "admin"))
	userGroup.GET("/:id", userHandler.GetUserByID)
	userGroup.PUT("/:id", userHandler.UpdateUserByID)

	// Public site routes
	e.GET("/menu", menuHandler.GetMenu)
	e.GET("/menu/:id", menuHandler.GetMenuItem)
	e.GET("/blog", blogHandler.GetPosts)
	e.GET("/blog/:slug", blogHandler.GetPostBySlug)
	e.GET("/blog/posts/:id/comments", blogHandler.GetComments)
	e.POST("/blog/posts/:id/comments", blogHandler.CreateComment)
	e.POST("/contact", contactHandler.CreateMessage)
	e.GET("/settings", settingsHandler.GetSettings)

	// Public reservation routes
	e.POST("/reservations", reservationHandler.CreateReservation)
	e.GET("/reservations/:code", reservationHandler.GetReservationByCode)
	e.DELETE("/reservations/:code", reservationHandler.CancelReservation)

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(middleware.RoleAuthMiddleware("admin"))
	adminGroup.GET("/reservations", reservationHandler.ListReservations)
	adminGroup.PUT("/reservations/:id/status", reservationHandler.UpdateReservationStatus)
	adminGroup.DELETE("/reservations/:id", reservationHandler.DeleteReservation)

	adminGroup.GET("/menu", menuHandler.GetMenu)
	adminGroup.POST("/menu", menuHandler.CreateMenuItem)
	adminGroup.PUT("/menu/:id", menuHandler.UpdateMenuItem)
	adminGroup.DELETE("/menu/:id", menuHandler.DeleteMenuItem)

	adminGroup.GET("/blog", blogHandler.GetPosts)
	adminGroup.POST("/blog", blogHandler.CreatePost)
	adminGroup.PUT("/blog/:id", blogHandler.UpdatePost)
	adminGroup.DELETE("/blog/:id", blogHandler.DeletePost)
	adminGroup.GET("/comments", blogHandler.GetPendingComments)
	adminGroup.PUT("/comments/:id/approve", blogHandler.ApproveComment)
	adminGroup.DELETE("/comments/:id", blogHandler.DeleteComment)

	adminGroup.GET("/contacts", contactHandler.ListMessages)
	adminGroup.PUT("/contacts/:id/read", contactHandler.MarkRead)
	adminGroup.DELETE("/contacts/:id", contactHandler.DeleteMessage)

	adminGroup.PUT("/settings", settingsHandler.UpdateSettings)
	adminGroup.GET("/dashboard", dashboardHandler.GetDashboard)
	adminGroup.POST("/uploads", imageHandler.UploadImage)
}
