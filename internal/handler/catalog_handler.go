package handler

import (
	"github.com/gin-gonic/gin"

	"encomendas/internal/config"
)

// CatalogHandler serves the static enumerations the form UI renders:
// selectable stores and payment methods.
type CatalogHandler struct {
	order   config.OrderConfig
	company config.CompanyConfig
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(company config.CompanyConfig, order config.OrderConfig) *CatalogHandler {
	return &CatalogHandler{order: order, company: company}
}

// Stores handles GET /api/v1/catalog/stores
func (h *CatalogHandler) Stores(c *gin.Context) {
	RespondOK(c, gin.H{
		"stores":               h.order.Stores,
		"default_order_number": h.company.DefaultOrderNumber,
	})
}

// PaymentMethods handles GET /api/v1/catalog/payment-methods
func (h *CatalogHandler) PaymentMethods(c *gin.Context) {
	RespondOK(c, gin.H{"payment_methods": h.order.PaymentMethods})
}
