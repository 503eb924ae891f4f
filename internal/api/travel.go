package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter conversion

	"travel_api/internal/domain" // Importing domain models
	"travel_api/internal/utils"  // Slug derivation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// TravelRequest represents the travel create/update payload.
// Update is a full replace, so both operations share the same required fields.
type TravelRequest struct {
	Name         string `json:"name" binding:"required"`                 // Display name
	Description  string `json:"description"`                             // Optional description
	IsPublic     bool   `json:"is_public"`                               // Defaults to unpublished
	NumberOfDays *int   `json:"number_of_days" binding:"required,gte=0"` // Duration in days
}

// TravelResponse represents the travel data returned to clients
type TravelResponse struct {
	ID           uint   `json:"id"`             // Travel ID
	Name         string `json:"name"`           // Display name
	Slug         string `json:"slug"`           // URL identifier
	Description  string `json:"description"`    // Description
	NumberOfDays int    `json:"number_of_days"` // Duration in days
	IsPublic     bool   `json:"is_public"`      // Publication flag
}

// newTravelResponse maps a travel record to its response form
func newTravelResponse(t domain.Travel) TravelResponse {
	return TravelResponse{
		ID:           t.ID,           // Travel ID
		Name:         t.Name,         // Display name
		Slug:         t.Slug,         // URL identifier
		Description:  t.Description,  // Description
		NumberOfDays: t.NumberOfDays, // Duration in days
		IsPublic:     t.IsPublic,     // Publication flag
	}
}

// ListTravelsHandler returns the public travels, paginated
func ListTravelsHandler(db *gorm.DB, perPage int) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only published travels are visible to the public
		base := db.Model(&domain.Travel{}).Where("is_public = ?", true)
		var total int64 // Total public travel count
		if err := base.Count(&total).Error; err != nil {
			// If counting fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count travels."})
			return
		}
		p := newPagination(c, perPage, total) // Resolve the requested page
		var travels []domain.Travel           // Slice to hold travels
		// Fetch the page in stable identifier order
		if err := base.Order("id asc").Offset(p.Offset()).Limit(p.PerPage).Find(&travels).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch travels."})
			return
		}
		// Map travels to response format
		resp := make([]TravelResponse, len(travels))
		for i, t := range travels {
			resp[i] = newTravelResponse(t)
		}
		c.JSON(http.StatusOK, envelope(c, p, len(resp), resp)) // Return the paginated envelope
	}
}

// CreateTravelHandler persists a new travel with a freshly derived unique slug
func CreateTravelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TravelRequest // Bind JSON request to struct
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
		// Derive a slug that no existing travel uses
		slug, err := utils.UniqueSlug(db, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create travel."})
			return
		}
		// Build the new travel record
		travel := domain.Travel{
			Name:         req.Name,          // Display name
			Slug:         slug,              // Derived unique slug
			Description:  req.Description,   // Optional description
			IsPublic:     req.IsPublic,      // False unless explicitly published
			NumberOfDays: *req.NumberOfDays, // Duration in days
		}
		// Attempt to create the travel in the database
		if err := db.Create(&travel).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Travel name
				"error": err.Error(), // Error message
			}).Error("Failed to create travel") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create travel."})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"travel_id": travel.ID,   // Travel ID
			"slug":      travel.Slug, // Derived slug
		}).Info("Travel created") // Log travel creation
		// Return the created resource
		c.JSON(http.StatusCreated, gin.H{"data": newTravelResponse(travel)})
	}
}

// UpdateTravelHandler replaces a travel's fields. The slug is never re-derived,
// so published URLs keep working after a rename.
func UpdateTravelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("travelID")) // Parse the travel ID from the path
		if err != nil {
			notFound(c) // Non-numeric ID cannot resolve to a travel
			return
		}
		var travel domain.Travel // Fetch travel from database
		if err := db.First(&travel, id).Error; err != nil {
			notFound(c) // Unknown travel ID
			return
		}
		var req TravelRequest // Bind JSON request to struct
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
		// Full replace of the mutable fields, slug stays fixed
		travel.Name = req.Name
		travel.Description = req.Description
		travel.IsPublic = req.IsPublic
		travel.NumberOfDays = *req.NumberOfDays
		// Persist the update
		if err := db.Save(&travel).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"travel_id": travel.ID,   // Travel ID
				"error":     err.Error(), // Error message
			}).Error("Failed to update travel") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update travel."})
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{
			"travel_id": travel.ID, // Travel ID
		}).Info("Travel updated") // Log travel update
		// Return the updated resource
		c.JSON(http.StatusOK, gin.H{"data": newTravelResponse(travel)})
	}
}
