package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"rental_booking/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for creating a booking
type CreateBookingRequest struct {
	CarName    string  `json:"carName" binding:"required"`    // Car name must be provided
	Days       int     `json:"days" binding:"required"`       // Rental duration must be provided
	RentPerDay float64 `json:"rentPerDay" binding:"required"` // Daily rate must be provided
}

// Request struct for partially updating a booking; nil means keep the stored value
type UpdateBookingRequest struct {
	CarName    *string  `json:"carName"`                                              // Optional new car name
	Days       *int     `json:"days"`                                                 // Optional new duration
	RentPerDay *float64 `json:"rentPerDay"`                                           // Optional new daily rate
	Status     *string  `json:"status" binding:"omitempty,oneof=cancelled completed"` // Optional status transition
}

// Response struct for a single booking including the derived cost
type BookingResponse struct {
	ID         uint    `json:"id"`           // Booking ID
	CarName    string  `json:"car_name"`     // Car name
	Days       int     `json:"days"`         // Rental duration
	RentPerDay float64 `json:"rent_per_day"` // Daily rate
	Status     string  `json:"status"`       // Booking status
	TotalCost  float64 `json:"totalCost"`    // Derived cost, recomputed on every read
}

// Response struct for the spending summary
type SummaryResponse struct {
	UserID           uint    `json:"userId"`           // Owning user ID
	Username         string  `json:"username"`         // Owning username
	TotalBookings    int64   `json:"totalBookings"`    // Bookings with status booked or completed
	TotalAmountSpent float64 `json:"totalAmountSpent"` // Sum of days * rent_per_day over the same set
}

// bookingResponse maps a domain booking to its API shape
func bookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,          // Booking ID
		CarName:    b.CarName,     // Car name
		Days:       b.Days,        // Rental duration
		RentPerDay: b.RentPerDay,  // Daily rate
		Status:     b.Status,      // Booking status
		TotalCost:  b.TotalCost(), // Derived cost
	}
}

// CreateBookingHandler validates the input ranges and persists a new booking
// with status booked for the authenticated user
func CreateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		var req CreateBookingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input"})
			return
		}
		// Validate the allowed ranges: days in [1,365], rentPerDay in (0,2000]
		if req.Days <= 0 || req.Days > 365 || req.RentPerDay <= 0 || req.RentPerDay > 2000 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input"})
			return
		}
		// New booking always starts in the booked status
		booking := domain.Booking{
			UserID:     userID.(uint),       // Owning user
			CarName:    req.CarName,         // Car name
			Days:       req.Days,            // Rental duration
			RentPerDay: req.RentPerDay,      // Daily rate
			Status:     domain.StatusBooked, // Initial status
		}
		// Persist the booking
		if err := db.Create(&booking).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create booking") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
			return
		}
		// Return the booking ID and the derived total cost
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data": gin.H{
				"message":   "Booking created successfully", // Confirmation message
				"bookingId": booking.ID,                     // New booking ID
				"totalCost": booking.TotalCost(),            // Derived cost for the response only
			},
		})
	}
}

// GetBookingHandler serves two mutually exclusive read modes selected by query
// parameters: summary=true returns the caller's spending summary, bookingId=n
// returns that booking when the caller owns it
func GetBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not found. Please login again!"})
			return
		}
		// Parse the summary flag; only "true" and "false" are accepted
		summary := false
		if s := c.Query("summary"); s != "" {
			if s != "true" && s != "false" {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "bookingId not found"})
				return
			}
			summary = s == "true" // Resolve the flag
		}
		// Parse the optional bookingId
		var bookingID uint64
		if b := c.Query("bookingId"); b != "" {
			v, err := strconv.ParseUint(b, 10, 64) // Convert bookingId to integer
			if err != nil {
				// Unparseable bookingId resolves to not found
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "bookingId not found"})
				return
			}
			bookingID = v // Set bookingId if valid
		}
		// Summary mode: aggregate over bookings that still count as spending
		if summary {
			var result SummaryResponse // Aggregate row
			// LEFT JOIN keeps the user row even with zero bookings; cancelled
			// bookings are excluded from both the count and the sum
			err := db.Table("users").
				Select("users.id AS user_id, users.username AS username, COUNT(bookings.id) AS total_bookings, COALESCE(SUM(bookings.days * bookings.rent_per_day), 0) AS total_amount_spent").
				Joins("LEFT JOIN bookings ON users.id = bookings.user_id AND bookings.status IN ?", []string{domain.StatusBooked, domain.StatusCompleted}).
				Where("users.id = ?", userID).
				Group("users.id, users.username").
				Scan(&result).Error
			if err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"user_id": userID,      // Owning user ID
					"error":   err.Error(), // Error message
				}).Error("Failed to fetch summary") // Log summary failure
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": result}) // Return the summary
			return
		}
		// Single-booking mode requires a bookingId
		if bookingID == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BookingId not found!"})
			return
		}
		var booking domain.Booking // Booking struct to hold data
		// The ownership filter is part of the query, so other users' bookings
		// read as absent instead of forbidden
		if err := db.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found!"})
			return
		}
		// Return the booking with its recomputed total cost
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    []BookingResponse{bookingResponse(&booking)}, // Single-element array
		})
	}
}

// UpdateBookingHandler applies a partial update to a booking owned by the
// caller, enforcing the cancelled-to-completed guard
func UpdateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		// The path parameter must be a positive integer
		bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
		if err != nil || bookingID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid bookingId"})
			return
		}
		var req UpdateBookingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails (including a status outside cancelled|completed), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid inputs"})
			return
		}
		var booking domain.Booking // Fetch the booking by ID alone
		// Existence is checked before ownership so a missing booking reads as
		// 404 and someone else's as 403
		if err := db.First(&booking, bookingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found!"})
			return
		}
		// Check ownership
		if booking.UserID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "booking does not belong to user"})
			return
		}
		// Guard: cancellation is permanent, a cancelled booking can never be completed
		if req.Status != nil && *req.Status == domain.StatusCompleted && booking.Status == domain.StatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cancelled bookings cannot be marked as completed"})
			return
		}
		// Unset fields fall back to the stored values
		if req.CarName != nil {
			booking.CarName = *req.CarName // New car name
		}
		if req.Days != nil {
			booking.Days = *req.Days // New duration
		}
		if req.RentPerDay != nil {
			booking.RentPerDay = *req.RentPerDay // New daily rate
		}
		if req.Status != nil {
			booking.Status = *req.Status // New status
		}
		// Persist the updated booking
		if err := db.Save(&booking).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,      // Owning user ID
				"booking_id": booking.ID,  // Booking ID
				"error":      err.Error(), // Error message
			}).Error("Failed to update booking") // Log update failure
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
			return
		}
		// Return the updated booking with its recomputed total cost
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"message": "Booking updated successfully", // Confirmation message
				"booking": bookingResponse(&booking),      // Updated booking
			},
		})
	}
}

// DeleteBookingHandler deletes a booking owned by the caller
func DeleteBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized!"})
			return
		}
		// Parse the path parameter; an unparseable ID cannot exist
		bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found"})
			return
		}
		var booking domain.Booking // Fetch the booking by ID alone
		// Existence before ownership, same ordering as update
		if err := db.First(&booking, bookingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found"})
			return
		}
		// Check ownership
		if booking.UserID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "booking does not belong to user"})
			return
		}
		// Delete scoped to both ID and owner
		if err := db.Where("id = ? AND user_id = ?", bookingID, userID).Delete(&domain.Booking{}).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,      // Owning user ID
				"booking_id": bookingID,   // Booking ID
				"error":      err.Error(), // Error message
			}).Error("Failed to delete booking") // Log deletion failure
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"message": "Booking deleted successfully", // Confirmation message
			},
		})
	}
}
