package api

import (
	"errors"  // Error unwrapping
	"reflect" // Struct tag inspection
	"strings" // String manipulation

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin binding registry
	"github.com/go-playground/validator/v10" // Validation engine behind gin binding tags
)

// Report validation failures under the JSON field names rather than Go struct names
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return "" // Field is not part of the wire format
			}
			return name
		})
	}
}

// bindBody binds the JSON request body into req and collects every field
// failure. A nil map with nil error means the body is valid; a non-nil error
// means the body could not be parsed at all.
func bindBody(c *gin.Context, req any) (map[string][]string, error) {
	err := c.ShouldBindJSON(req) // Bind JSON request to struct
	if err == nil {
		return nil, nil // Body is valid
	}
	var verrs validator.ValidationErrors // Field-level validation failures
	if !errors.As(err, &verrs) {
		return nil, err // Malformed body, no field detail available
	}
	errs := make(map[string][]string, len(verrs)) // Field name -> reasons
	// Collect every violated field, not just the first
	for _, fe := range verrs {
		errs[fe.Field()] = append(errs[fe.Field()], fieldMessage(fe))
	}
	return errs, nil
}

// fieldMessage renders a single validation failure as a human-readable reason
func fieldMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ") // Humanized field name
	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "The " + field + " field must be a valid email address."
	case "gte", "min":
		return "The " + field + " field must be at least " + fe.Param() + "."
	case "datetime":
		return "The " + field + " field must be a valid date."
	case "oneof":
		return "The selected " + field + " is invalid."
	}
	return "The " + field + " field is invalid."
}
