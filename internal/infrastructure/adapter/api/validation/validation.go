// Package validation binds and validates request inputs before any
// handler runs. Failures are rejected with a per-field detail map and
// never reach the service layer.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// Context keys for validated values
const (
	bodyKey  = "validated.body"
	queryKey = "validated.query"
	idKey    = "validated.id"
)

func init() {
	// Report violations under the wire names, not Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireFieldName)
	}
}

func wireFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}

// Patchable constrains partial-update payloads to shapes that can
// report whether any recognized field was provided.
type Patchable interface {
	IsEmpty() bool
}

// Body returns middleware that binds and validates a JSON body of type
// T, aborting with 400 on failure.
func Body[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload T
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortValidation(c, "body", err)
			return
		}
		c.Set(bodyKey, payload)
		c.Next()
	}
}

// PatchBody returns middleware for partial-update bodies. Beyond
// field-level validation it enforces that at least one recognized field
// is present; an empty update object fails.
func PatchBody[T Patchable]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload T
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortValidation(c, "body", err)
			return
		}
		if payload.IsEmpty() {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(map[string]string{
				"body": "At least one field must be provided",
			}))
			return
		}
		c.Set(bodyKey, payload)
		c.Next()
	}
}

// Query returns middleware that binds and validates query parameters
// into type T, aborting with 400 on failure. Numeric parameters that do
// not parse fail here; out-of-range pagination values pass and are
// clamped downstream.
func Query[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params T
		if err := c.ShouldBindQuery(&params); err != nil {
			abortValidation(c, "query", err)
			return
		}
		c.Set(queryKey, params)
		c.Next()
	}
}

// IDParam returns middleware that coerces the :id path parameter to an
// integer, aborting with 400 and a field-specific message otherwise.
func IDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "id must be an integer",
			})
			return
		}
		c.Set(idKey, id)
		c.Next()
	}
}

// BodyFrom retrieves the payload a Body or PatchBody middleware stored
func BodyFrom[T any](c *gin.Context) T {
	return c.MustGet(bodyKey).(T)
}

// QueryFrom retrieves the parameters a Query middleware stored
func QueryFrom[T any](c *gin.Context) T {
	return c.MustGet(queryKey).(T)
}

// IDFrom retrieves the identifier an IDParam middleware stored
func IDFrom(c *gin.Context) uint64 {
	return c.MustGet(idKey).(uint64)
}

// abortValidation writes the standard 400 payload for a binding failure
func abortValidation(c *gin.Context, scope string, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(Details(scope, err)))
}

// Details flattens a binding error into a field-to-message map. Errors
// that carry no field information (malformed JSON, unparsable numerics)
// are reported under the given scope key.
func Details(scope string, err error) map[string]string {
	details := map[string]string{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			details[fieldError.Field()] = fieldMessage(fieldError)
		}
		return details
	}

	details[scope] = err.Error()
	return details
}

// fieldMessage renders a single violation as a human-readable reason
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || (fe.Kind() == reflect.Ptr && fe.Type().Elem().Kind() == reflect.String) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || (fe.Kind() == reflect.Ptr && fe.Type().Elem().Kind() == reflect.String) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
