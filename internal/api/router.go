package api

import (
	"travel_api/internal/config"     // Custom package for configuration
	"travel_api/internal/domain"     // Importing domain models
	"travel_api/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetupRouter mounts the API routes on a fresh Gin engine
func SetupRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.Default() // Gin router instance

	v1 := r.Group("/api/v1") // Versioned API prefix

	// Public routes
	v1.GET("/travels", ListTravelsHandler(db, cfg.PageSize))           // Published travels
	v1.GET("/travels/:slug/tours", ListToursHandler(db, cfg.PageSize)) // Tours of a travel by slug
	v1.POST("/login", LoginHandler(db, rdb))                           // Token login

	// Admin routes (protected by bearer token, role-gated per route)
	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.TokenAuthMiddleware(rdb))
	// Create operations require the admin role
	adminGroup.POST("/travels",
		middleware.RequireRoleMiddleware(db, domain.RoleAdmin), CreateTravelHandler(db))
	adminGroup.POST("/travels/:travelID/tours",
		middleware.RequireRoleMiddleware(db, domain.RoleAdmin), CreateTourHandler(db))
	// Updating a travel is open to editors as well
	adminGroup.PUT("/travels/:travelID",
		middleware.RequireRoleMiddleware(db, domain.RoleAdmin, domain.RoleEditor), UpdateTravelHandler(db))

	return r
}
