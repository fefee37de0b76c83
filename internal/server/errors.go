package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	reportdomain "github.com/invoiceloop/roisim/internal/report/domain"
	scenariodomain "github.com/invoiceloop/roisim/internal/scenario/domain"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return ErrInvalidRequest
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		fields := make([]ValidationError, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, ValidationError{
				Field:   fe.Field,
				Code:    "invalid_" + fe.Field,
				Message: fe.Message,
			})
		}
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "Validation failed",
			Errors:  fields,
		}
	}

	switch {
	case isValidationError(err):
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *simulationdomain.ValidationErrors {
	var vErr *simulationdomain.ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, scenariodomain.ErrInvalidID),
		errors.Is(err, reportdomain.ErrInvalidEmail),
		errors.Is(err, reportdomain.ErrInvalidScenarioID),
		errors.Is(err, leaddomain.ErrInvalidEmail),
		errors.Is(err, leaddomain.ErrInvalidScenarioID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, scenariodomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	switch code {
	case "invalid_request":
		return "request"
	case "invalid_email":
		return "email"
	case "invalid_scenario_id", "invalid_id":
		return "scenario_id"
	default:
		return ""
	}
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	case "invalid_email":
		return "Valid email is required"
	case "invalid_scenario_id":
		return "Scenario ID is required"
	default:
		return "invalid value"
	}
}

// classifyErrorForLog maps an error to (type, code) for request logs.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if asValidationErrors(err) != nil || isValidationError(err) {
		return "validation_error", err.Error()
	}
	if isNotFoundError(err) {
		return "not_found", err.Error()
	}
	return "internal_error", "internal_error"
}
