package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"encomendas/internal/service"
	"encomendas/internal/validator"
	"encomendas/internal/validator/order"
)

// OrderHandler handles order intake endpoints.
type OrderHandler struct {
	svc service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ValidationResult is the body of a validate call: field errors and
// warnings, never an HTTP error for invalid form content.
type ValidationResult struct {
	Valid    bool               `json:"valid"`
	Errors   []order.FieldError `json:"errors"`
	Warnings []order.FieldError `json:"warnings"`
}

func toValidationResult(report *validator.Report) ValidationResult {
	return ValidationResult{
		Valid:    report.Valid(),
		Errors:   report.Errors,
		Warnings: report.Warnings,
	}
}

// Validate handles POST /api/v1/orders/validate
func (h *OrderHandler) Validate(c *gin.Context) {
	var form order.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid order payload")
		return
	}

	report := h.svc.Validate(c.Request.Context(), &form)
	RespondOK(c, toValidationResult(report))
}

// Document handles POST /api/v1/orders/document
func (h *OrderHandler) Document(c *gin.Context) {
	var form order.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid order payload")
		return
	}

	doc, report, err := h.svc.BuildDocument(c.Request.Context(), &form)
	if err != nil {
		HandleError(c, err)
		return
	}
	if doc == nil {
		RespondValidationFailed(c, report.Errors)
		return
	}
	RespondOK(c, gin.H{
		"document": doc,
		"warnings": report.Warnings,
	})
}

// Export handles POST /api/v1/orders/document/export?format=csv|xlsx
func (h *OrderHandler) Export(c *gin.Context) {
	var form order.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid order payload")
		return
	}

	formatName := c.DefaultQuery("format", "csv")
	export, report, err := h.svc.ExportDocument(c.Request.Context(), &form, formatName)
	if err != nil {
		HandleError(c, err)
		return
	}
	if export == nil {
		RespondValidationFailed(c, report.Errors)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
