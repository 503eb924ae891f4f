package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// validationError responds with 422 and the collected field errors
func validationError(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.", // Summary message
		"errors":  errs,                          // Field name -> list of reasons
	})
}

// notFound responds with 404 for an unresolved entity
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
}
