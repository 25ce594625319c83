package api

import (
	"rental_booking/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter builds the Gin engine with all API routes mounted under /api/v1
func NewRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	v1 := r.Group("/api/v1") // Versioned API prefix

	// Auth routes (open)
	auth := v1.Group("/auth")
	auth.POST("/signup", SignupHandler(db))          // Registration endpoint
	auth.POST("/login", LoginHandler(db, jwtSecret)) // Login endpoint

	// Booking routes (protected by JWT)
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.JWTAuthMiddleware(db, jwtSecret)) // Protect booking routes with JWT middleware
	bookings.POST("", CreateBookingHandler(db))               // Create booking endpoint
	bookings.GET("", GetBookingHandler(db))                   // Read endpoint (summary or single booking)
	bookings.PUT("/:bookingId", UpdateBookingHandler(db))     // Partial update endpoint
	bookings.DELETE("/:bookingId", DeleteBookingHandler(db))  // Delete endpoint

	return r
}
