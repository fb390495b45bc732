package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sonofaryeetey/tailorflow/internal/database"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

// ErrMsg is a field-level validation error message.
type ErrMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "This field may not be blank"
	case "uuid":
		return "should be a valid uuid"
	case "min":
		return "should have min value of " + fe.Param()
	case "max":
		return "should have max value of " + fe.Param()
	}
	return "Unknown error"
}

// abortWithValidation maps validator failures to field-level messages; any
// other binding failure becomes a generic 400.
func abortWithValidation(c *gin.Context, logger *slog.Logger, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		output := make([]ErrMsg, len(ve))
		for i, fe := range ve {
			output[i] = ErrMsg{Field: fe.Field(), Message: getErrorMsg(fe)}
			logger.Error("validation error", slog.String("field", fe.Field()), slog.String("error", fe.Error()))
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": output})
		return
	}
	logger.Error("invalid payload", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
}

// abortWithServiceError translates service/store failures into a status code
// and a human-readable message. No structured error codes exist; the message
// is what the UI shows in its alert.
func abortWithServiceError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error(op, slog.String("error", err.Error()))

	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, service.ErrSessionNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrSaveInFlight):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "a save is already in progress"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrUnconfigured), errors.Is(err, objectstore.ErrUnconfigured):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "backend is not configured"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}
