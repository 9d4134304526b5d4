package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"encomendas/internal/domain"
	"encomendas/internal/validator/order"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Fields carries one entry
// per offending input on validation failures so the form can route each
// message to its originating field.
type APIError struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  []order.FieldError `json:"fields,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondValidationFailed sends a 422 carrying the field-addressed errors.
func RespondValidationFailed(c *gin.Context, errs []order.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_FAILED",
			Message: "a encomenda contém campos inválidos",
			Fields:  errs,
		},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. Transformation failures deliberately map to a single generic
// message; the caller retries after correcting the form.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrItemTotal),
		errors.Is(err, domain.ErrOrderTotal),
		errors.Is(err, domain.ErrUnknownPaymentType):
		return http.StatusInternalServerError, "DOCUMENT_BUILD_FAILED", "could not build the document"
	case errors.Is(err, domain.ErrRenderFailed):
		return http.StatusInternalServerError, "RENDER_FAILED", "could not render the document"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
