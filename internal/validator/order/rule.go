package order

import (
	"context"

	"encomendas/internal/domain"
)

// rule is a single validation rule over the raw form, addressed to one or
// more fields.
type rule struct {
	ruleKey  string
	severity domain.ValidationSeverity
	validate func(*Form) []Result
}

func (r *rule) RuleKey() string                     { return r.ruleKey }
func (r *rule) Severity() domain.ValidationSeverity { return r.severity }

func (r *rule) Validate(_ context.Context, f *Form) []Result {
	return r.validate(f)
}

func check(passed bool, field, message string) Result {
	return Result{Passed: passed, Field: field, Message: message}
}
