package main

import (
	"fmt"
	"log"

	"encomendas/internal/config"
	"encomendas/internal/document"
	"encomendas/internal/export"
	"encomendas/internal/handler"
	"encomendas/internal/port"
	"encomendas/internal/postal"
	"encomendas/internal/router"
	"encomendas/internal/service"
	"encomendas/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Core pipeline
	engine := validator.NewOrderEngine(cfg.Order.StoreCodes(), cfg.Order.MethodTags())
	builder := document.NewBuilder(cfg.Company, cfg.Order.MethodLabels())
	renderers := map[string]port.DocumentRenderer{
		"csv":  export.NewCSVRenderer(),
		"xlsx": export.NewXLSXRenderer(),
	}

	// Initialize services
	orderSvc := service.NewOrderService(engine, builder, renderers)

	// Initialize handlers
	orderH := handler.NewOrderHandler(orderSvc)
	catalogH := handler.NewCatalogHandler(cfg.Company, cfg.Order)
	postalH := handler.NewPostalHandler(postal.NewLookup())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, orderH, catalogH, postalH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
