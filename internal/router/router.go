package router

import (
	"github.com/gin-gonic/gin"

	"encomendas/internal/config"
	"encomendas/internal/handler"
	"encomendas/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	orderH *handler.OrderHandler,
	catalogH *handler.CatalogHandler,
	postalH *handler.PostalHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("/validate", orderH.Validate)
	orders.POST("/document", orderH.Document)
	orders.POST("/document/export", orderH.Export)

	catalog := v1.Group("/catalog")
	catalog.GET("/stores", catalogH.Stores)
	catalog.GET("/payment-methods", catalogH.PaymentMethods)

	v1.GET("/postal-codes/:code/locality", postalH.Locality)

	return r
}
