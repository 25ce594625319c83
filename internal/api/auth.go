package api

import (
	"net/http" // HTTP status codes

	"rental_booking/internal/domain" // Importing domain models
	"rental_booking/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for signup
type SignupRequest struct {
	Username string `json:"username" binding:"required"`       // Username must be provided
	Password string `json:"password" binding:"required,min=6"` // Password must be at least 6 characters
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`       // Username must be provided
	Password string `json:"password" binding:"required,min=6"` // Password must be at least 6 characters
}

// SignupHandler registers a new user with a hashed password
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid Input"})
			return
		}
		// Check whether the username is already taken
		var existing domain.User
		if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			// Duplicate usernames are rejected with 401, not 409
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Username already exists!"})
			return
		}
		// Hash the password before persisting
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			logrus.WithField("error", err.Error()).Error("Failed to hash password")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
			return
		}
		user := domain.User{Username: req.Username, Password: string(hash)} // New user record
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// A concurrent signup can still hit the unique constraint here
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Username already exists!"})
			return
		}
		// Return success response with the new user ID
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data": gin.H{
				"message": "User created successfully", // Confirmation message
				"userId":  user.ID,                     // New user ID
			},
		})
	}
}

// LoginHandler authenticates a user and returns a signed JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid Input"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Username does not exists!"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Incorrect Password. Please try again!"})
			return
		}
		// Generate JWT token with a 7-day expiry
		token, err := utils.GenerateJWT(user.ID, user.Username, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			logrus.WithField("error", err.Error()).Error("Failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error!"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"message": "Login successful", // Confirmation message
				"token":   token,              // Signed JWT token
			},
		})
	}
}
