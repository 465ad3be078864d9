// Package api assembles the gin engine for the web client's route
// surface.
package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/http/handlers"
	"odyssweb/internal/http/middleware"
)

func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(h.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", handlers.Health)
	r.GET("/routes", handlers.Routes)

	// Auth
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	auth := r.Group("/auth")
	{
		auth.POST("/google", h.GoogleLogin)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
		auth.POST("/verify-otp", h.SignupVerifyOTP)
	}

	// Signup wizard
	signup := r.Group("/signup")
	{
		signup.GET("", h.SignupState)
		signup.POST("/select", h.SignupSelect)
		signup.POST("/next", h.SignupNext)
		signup.POST("/previous", h.SignupPrevious)
		signup.POST("/submit", h.SignupSubmit)
	}

	// Rides
	rides := r.Group("/rides")
	{
		rides.GET("", h.ListRides)
		rides.GET("/search", h.SearchRides)
		rides.DELETE("/search", h.ClearRideSearch)
		rides.GET("/:id", h.RideDetail)
		rides.POST("/:id/join", h.JoinRide)
		rides.POST("/:id/invite", h.InviteToRide)
		rides.POST("/:id/book", h.BookRide)
	}

	// Circles
	circles := r.Group("/circles")
	{
		circles.GET("", h.ListCircles)
		circles.GET("/my", middleware.RequireUser(h.Session), h.MyCircles)
		circles.GET("/recommended", middleware.RequireUser(h.Session), h.RecommendedCircles)
		circles.GET("/:id", h.CircleDetail)
		circles.POST("", middleware.RequireUser(h.Session), h.CreateCircle)
		circles.POST("/:id/join", h.JoinCircle)
	}

	// Curate wizard
	curate := r.Group("/curate", middleware.RequireUser(h.Session))
	{
		curate.GET("", h.CurateState)
		curate.POST("/select", h.CurateSelect)
		curate.POST("/next", h.CurateNext)
		curate.POST("/previous", h.CuratePrevious)
		curate.POST("/reset", h.CurateReset)
		curate.POST("/submit", h.CurateSubmit)
	}

	// Payment landing
	r.GET("/payment/success", h.PaymentSuccess)
	r.GET("/payments/key", h.PaystackKey)
	r.GET("/payments/history", middleware.RequireUser(h.Session), h.PaymentHistory)

	// Profile
	me := r.Group("/me", middleware.RequireUser(h.Session))
	{
		me.GET("", h.MyProfile)
		me.PUT("", h.UpdateMyProfile)
		me.POST("/upload", h.UploadProfileFile)
		me.GET("/trips", h.MyRides)
		me.GET("/circles", h.MyCircles)
		me.POST("/password", h.ChangePassword)
	}

	// Bookings
	bookings := r.Group("/bookings", middleware.RequireUser(h.Session))
	{
		bookings.GET("", h.ListBookings)
		bookings.DELETE("/:id", h.CancelBooking)
		bookings.GET("/:id/eticket", h.DownloadETicket)
		bookings.GET("/:id/receipt", h.DownloadReceipt)
	}

	// Transport operator console
	company := r.Group("/company")
	{
		company.POST("/login", h.CompanyLogin)
		company.POST("/signup", h.CompanySignup)
		company.GET("/me", h.CompanyProfile)
		company.GET("/vehicles", h.CompanyVehicles)
		company.POST("/vehicles", h.CompanyAddVehicle)
		company.GET("/routes", h.CompanyRoutes)
		company.POST("/routes", h.CompanyCreateRoute)
		company.GET("/trips", h.CompanyTrips)
		company.POST("/trips", h.CompanyCreateTrip)
		company.PATCH("/trips/:id", h.CompanyUpdateTrip)
		company.DELETE("/trips/:id", h.CompanyDeleteTrip)
		company.GET("/bookings", h.CompanyBookings)
	}

	// Notifications
	notifications := r.Group("/notifications", middleware.RequireUser(h.Session))
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)
		notifications.POST("/read-all", h.MarkAllNotificationsRead)
	}

	handlers.SetRouter(r)
	return r
}
