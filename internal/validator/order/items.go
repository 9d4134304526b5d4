package order

import (
	"fmt"
	"math"
	"unicode/utf8"

	"encomendas/internal/domain"
)

// ItemRules validate the product table. Per-entry checks address their
// results to "items[i].<field>" so the form can highlight the exact cell.
func ItemRules() []*rule {
	return []*rule{
		{
			ruleKey: "items.min", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{check(len(f.Items) >= 1,
					"items", "A encomenda deve ter pelo menos um produto.")}
			},
		},
		{
			ruleKey: "items.ref", severity: domain.ValidationSeverityError,
			validate: perEntry(func(e *Entry) (bool, string) {
				return utf8.RuneCountInString(e.Ref) >= 3,
					"A referência deve ter pelo menos 3 caracteres."
			}, "ref"),
		},
		{
			ruleKey: "items.description", severity: domain.ValidationSeverityError,
			validate: perEntry(func(e *Entry) (bool, string) {
				return utf8.RuneCountInString(e.Description) >= 5,
					"O nome do produto deve ter pelo menos 5 caracteres."
			}, "description"),
		},
		{
			ruleKey: "items.quantity", severity: domain.ValidationSeverityError,
			validate: perEntry(func(e *Entry) (bool, string) {
				passed := e.Quantity >= 1 && e.Quantity == math.Trunc(e.Quantity)
				return passed, "A quantidade deve ser pelo menos 1."
			}, "quantity"),
		},
		{
			ruleKey: "items.unit_price", severity: domain.ValidationSeverityError,
			validate: perEntry(func(e *Entry) (bool, string) {
				if !e.UnitPrice.Valid() {
					return false, "O preço é inválido."
				}
				return e.UnitPrice.Value() >= 0, "O preço não pode ser negativo."
			}, "unit_price"),
		},
	}
}

// perEntry lifts a single-entry check to one Result per table row.
func perEntry(chk func(*Entry) (bool, string), field string) func(*Form) []Result {
	return func(f *Form) []Result {
		results := make([]Result, 0, len(f.Items))
		for i := range f.Items {
			passed, msg := chk(&f.Items[i])
			results = append(results, check(passed, fmt.Sprintf("items[%d].%s", i, field), msg))
		}
		return results
	}
}
