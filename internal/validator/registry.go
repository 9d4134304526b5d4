package validator

import "encomendas/internal/domain"

// Registry holds the rule sets, split into rules shared by every order and
// rules layered on per sales type.
type Registry struct {
	shared []Validator
	byType map[domain.SalesType][]Validator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[domain.SalesType][]Validator)}
}

// RegisterShared adds a rule that applies to every sales type.
func (r *Registry) RegisterShared(v Validator) {
	r.shared = append(r.shared, v)
}

// Register adds a rule that applies only to the given sales type.
func (r *Registry) Register(t domain.SalesType, v Validator) {
	r.byType[t] = append(r.byType[t], v)
}

// For returns the shared rules followed by the type-specific ones.
func (r *Registry) For(t domain.SalesType) []Validator {
	out := make([]Validator, 0, len(r.shared)+len(r.byType[t]))
	out = append(out, r.shared...)
	out = append(out, r.byType[t]...)
	return out
}
