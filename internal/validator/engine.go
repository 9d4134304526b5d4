package validator

import (
	"context"

	"encomendas/internal/domain"
	"encomendas/internal/validator/order"
)

// Report is the structured outcome of validating one submission. Errors
// block acceptance; warnings are advisory and surfaced alongside success.
type Report struct {
	Errors   []order.FieldError `json:"errors,omitempty"`
	Warnings []order.FieldError `json:"warnings,omitempty"`
}

// Valid reports whether the submission passed every blocking rule.
func (r *Report) Valid() bool { return len(r.Errors) == 0 }

// Engine runs the registered rule sets against raw order submissions.
type Engine struct {
	registry *Registry
}

// NewEngine creates an Engine over a populated registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewOrderEngine wires the full sales-order rule set: shared and line-item
// rules for both sales types, contact rules for direct sales, and
// address/payment/billing rules for deliveries.
func NewOrderEngine(stores []string, methods []domain.PaymentMethod) *Engine {
	reg := NewRegistry()
	for _, r := range order.SharedRules(stores) {
		reg.RegisterShared(r)
	}
	for _, r := range order.ItemRules() {
		reg.RegisterShared(r)
	}
	for _, r := range order.DirectRules() {
		reg.Register(domain.SalesTypeDirect, r)
	}
	for _, r := range order.DeliveryRules(methods) {
		reg.Register(domain.SalesTypeDelivery, r)
	}
	for _, r := range order.BillingRules() {
		reg.Register(domain.SalesTypeDelivery, r)
	}
	return NewEngine(reg)
}

// Validate runs every applicable rule. On success it returns the normalized
// order and a report that may still carry warnings; on failure the order is
// nil and the report lists one entry per offending field. It never returns
// an error for bad input — bad input is the expected case.
func (e *Engine) Validate(ctx context.Context, f *order.Form) (*domain.Order, *Report) {
	report := &Report{}

	salesType := domain.SalesType(f.SalesType)
	if !salesType.Valid() {
		report.Errors = append(report.Errors, order.FieldError{
			Field: "sales_type", Message: "Tipo de venda inválido.",
		})
		return nil, report
	}

	for _, v := range e.registry.For(salesType) {
		for _, res := range v.Validate(ctx, f) {
			if res.Passed {
				continue
			}
			fe := order.FieldError{Field: res.Field, Message: res.Message}
			if v.Severity() == domain.ValidationSeverityWarning {
				report.Warnings = append(report.Warnings, fe)
			} else {
				report.Errors = append(report.Errors, fe)
			}
		}
	}

	if !report.Valid() {
		return nil, report
	}
	return order.Normalize(f), report
}
