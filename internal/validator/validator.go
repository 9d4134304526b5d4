package validator

import (
	"context"

	"encomendas/internal/domain"
	"encomendas/internal/validator/order"
)

// Validator is the interface for a single validation rule over the raw
// order form.
type Validator interface {
	Validate(ctx context.Context, f *order.Form) []order.Result
	RuleKey() string
	Severity() domain.ValidationSeverity
}
