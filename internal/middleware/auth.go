package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"travel_api/internal/domain" // Importing domain models
	"travel_api/internal/utils"  // Token store helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// TokenAuthMiddleware resolves the bearer token to a user ID via the token store
func TokenAuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		userID, err := utils.LookupToken(c.Request.Context(), rdb, token)
		if err != nil {
			// Unknown token or store error, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		c.Set("userID", userID) // Store userID in context
		c.Next()                // Proceed to the next handler
	}
}

// RequireRoleMiddleware checks the user's roles from the database on each request.
// The check passes when the user holds any of the given role names.
func RequireRoleMiddleware(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		var user domain.User // Fetch user with roles from database
		if err := db.Preload("Roles").First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden."})
			return
		}
		// Check role membership
		if !user.HasAnyRole(roles...) {
			// If the requirement is not met, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden."})
			return
		}
		// Role requirement satisfied, proceed to the next handler
		c.Next()
	}
}
