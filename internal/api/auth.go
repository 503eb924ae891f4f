package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"travel_api/internal/domain" // Importing domain models
	"travel_api/internal/utils"  // Token store helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"                 // GORM ORM library
)

// maxDeviceLength caps the device label derived from the User-Agent header
const maxDeviceLength = 255

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Account email
	Password string `json:"password" binding:"required"`    // Plaintext password
}

// LoginHandler verifies credentials and issues an opaque bearer token.
// An unknown email and a wrong password produce the exact same response.
func LoginHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		errs, err := bindBody(c, &req)
		if err != nil {
			// Malformed body, return unprocessable entity
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid request body."})
			return
		}
		if len(errs) > 0 {
			validationError(c, errs) // Return the collected field errors
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// Unknown email, same response as a wrong password
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "The provided credentials are incorrect."})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "The provided credentials are incorrect."})
			return
		}
		// Mint a new opaque token
		token, err := utils.NewToken()
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token."})
			return
		}
		// Device label comes from the User-Agent header, truncated
		device := c.Request.UserAgent()
		if len(device) > maxDeviceLength {
			device = device[:maxDeviceLength]
		}
		// Persist the token -> user association
		if err := utils.StoreToken(c.Request.Context(), rdb, token, user.ID, device); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to store token") // Log token store failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store token."})
			return
		}
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // User ID
			"device":  device,  // Device label
		}).Info("User logged in") // Log login success
		// Return the token in the response
		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}
