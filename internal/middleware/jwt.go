package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"rental_booking/internal/domain" // Importing domain models
	"rental_booking/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// JWTAuthMiddleware validates JWT tokens and re-checks the principal against
// the users table on every request, so deleting a user revokes its tokens
// immediately rather than at expiry
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present
		if authHeader == "" {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header missing"})
			return
		}
		// Check the Bearer scheme and extract the token part
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			// If the token part is missing, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token missing after Bearer"})
			return
		}
		claims, err := utils.ParseJWT(parts[1], secret) // Parse the JWT token
		if err != nil {
			// If parsing fails (bad signature or expired), abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized or token expired!"})
			return
		}
		var user domain.User // Re-validate the decoded principal against the store
		if err := db.Where("id = ? AND username = ?", claims.UserID, claims.Username).First(&user).Error; err != nil {
			// If the user no longer exists (or was renamed), the token is stale
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
			return
		}
		c.Set("userID", claims.UserID)     // Store userID in context
		c.Set("username", claims.Username) // Store username in context
		c.Next()                           // Proceed to the next handler
	}
}
