package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter conversion
	"time"     // Date parsing

	"travel_api/internal/domain" // Importing domain models
	"travel_api/internal/query"  // Tour filter/sort parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// dateLayout is the wire format for tour dates
const dateLayout = "2006-01-02"

// TourRequest represents the tour create payload
type TourRequest struct {
	Name         string `json:"name" binding:"required"`                              // Display name
	StartingDate string `json:"starting_date" binding:"required,datetime=2006-01-02"` // First day
	EndingDate   string `json:"ending_date" binding:"required,datetime=2006-01-02"`   // Last day
	PriceInCents *int64 `json:"price_in_cents" binding:"required,gte=0"`              // Price in minor units
}

// TourResponse represents the tour data returned to clients.
// The stored cents value is rendered as a decimal price string.
type TourResponse struct {
	ID           uint   `json:"id"`            // Tour ID
	Name         string `json:"name"`          // Display name
	StartingDate string `json:"starting_date"` // First day
	EndingDate   string `json:"ending_date"`   // Last day
	Price        string `json:"price"`         // Major-unit price, two decimals
}

// newTourResponse maps a tour record to its response form
func newTourResponse(t domain.Tour) TourResponse {
	return TourResponse{
		ID:           t.ID,                                // Tour ID
		Name:         t.Name,                              // Display name
		StartingDate: t.StartingDate.Format(dateLayout),   // First day
		EndingDate:   t.EndingDate.Format(dateLayout),     // Last day
		Price:        t.Price(),                           // Converted at the response boundary
	}
}

// CreateTourHandler persists a new tour owned by the travel in the path
func CreateTourHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("travelID")) // Parse the travel ID from the path
		if err != nil {
			notFound(c) // Non-numeric ID cannot resolve to a travel
			return
		}
		var travel domain.Travel // Fetch the owning travel
		if err := db.First(&travel, id).Error; err != nil {
			notFound(c) // Unknown travel ID
			return
		}
		var req TourRequest // Bind JSON request to struct
		errs, err := bindBody(c, &req)
		if err != nil {
			// Malformed body, return unprocessable entity
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid request body."})
			return
		}
		if errs == nil {
			errs = make(map[string][]string)
		}
		// Date formats are already validated; check their ordering
		starting, startErr := time.Parse(dateLayout, req.StartingDate)
		ending, endErr := time.Parse(dateLayout, req.EndingDate)
		if startErr == nil && endErr == nil && ending.Before(starting) {
			errs["ending_date"] = append(errs["ending_date"], "The ending date field must be a date after or equal to starting date.")
		}
		if len(errs) > 0 {
			validationError(c, errs) // Return the collected field errors
			return
		}
		// Build the new tour record owned by the resolved travel
		tour := domain.Tour{
			TravelID:     travel.ID,         // Owning travel
			Name:         req.Name,          // Display name
			StartingDate: starting,          // First day
			EndingDate:   ending,            // Last day
			PriceInCents: *req.PriceInCents, // Price in minor units
		}
		// Attempt to create the tour in the database
		if err := db.Create(&tour).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"travel_id": travel.ID,   // Owning travel ID
				"name":      req.Name,    // Tour name
				"error":     err.Error(), // Error message
			}).Error("Failed to create tour") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tour."})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"tour_id":   tour.ID,   // Tour ID
			"travel_id": travel.ID, // Owning travel ID
		}).Info("Tour created") // Log tour creation
		// Return the created resource
		c.JSON(http.StatusCreated, gin.H{"data": newTourResponse(tour)})
	}
}

// ListToursHandler returns a travel's tours resolved by slug, with optional
// price/date filters, an optional price sort and pagination
func ListToursHandler(db *gorm.DB, perPage int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var travel domain.Travel // Resolve the travel by its slug
		if err := db.Where("slug = ?", c.Param("slug")).First(&travel).Error; err != nil {
			notFound(c) // No travel matches the slug
			return
		}
		// Validate the filter and sort parameters
		filters, errs := query.ParseTourFilters(c.Request.URL.Query())
		if len(errs) > 0 {
			validationError(c, errs) // Return the collected parameter errors
			return
		}
		// Scope the query to the travel's tours and apply the bounds
		base := filters.ApplyFilters(db.Model(&domain.Tour{}).Where("travel_id = ?", travel.ID))
		var total int64 // Total matching tour count
		if err := base.Count(&total).Error; err != nil {
			// If counting fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count tours."})
			return
		}
		p := newPagination(c, perPage, total) // Resolve the requested page
		var tours []domain.Tour               // Slice to hold tours
		// Fetch the page in the resolved order
		if err := filters.ApplySort(base).Offset(p.Offset()).Limit(p.PerPage).Find(&tours).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tours."})
			return
		}
		// Map tours to response format
		resp := make([]TourResponse, len(tours))
		for i, t := range tours {
			resp[i] = newTourResponse(t)
		}
		c.JSON(http.StatusOK, envelope(c, p, len(resp), resp)) // Return the paginated envelope
	}
}
