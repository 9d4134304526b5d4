package order

import (
	"unicode/utf8"

	"encomendas/internal/domain"
)

// BillingRules is the refinement step for a distinct billing address. It
// only fires when the customer unticks "billing same as delivery", and
// raises one error per missing or malformed billing field so each maps back
// to its own input.
func BillingRules() []*rule {
	return []*rule{
		{
			ruleKey: "delivery.billing", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.SameAddressOrDefault() {
					return nil
				}
				return []Result{
					check(utf8.RuneCountInString(f.BillingAddress1) >= 5,
						"billing_address1", "A morada deve ter pelo menos 5 caracteres."),
					postalCodeCheck("billing_postal_code", f.BillingPostalCode),
					check(utf8.RuneCountInString(f.BillingCity) >= 5,
						"billing_city", "A cidade deve ter pelo menos 5 caracteres."),
				}
			},
		},
	}
}
