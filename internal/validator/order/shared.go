package order

import (
	"regexp"
	"unicode/utf8"

	"encomendas/internal/domain"
)

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SharedRules apply to every order regardless of sales type. The store set
// comes from configuration so tests can substitute fixtures.
func SharedRules(stores []string) []*rule {
	storeSet := make(map[string]bool, len(stores))
	for _, s := range stores {
		storeSet[s] = true
	}

	return []*rule{
		{
			ruleKey: "shared.name", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{check(utf8.RuneCountInString(f.Name) >= 2,
					"name", "O nome deve ter pelo menos 2 caracteres.")}
			},
		},
		{
			ruleKey: "shared.store", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{check(storeSet[f.StoreID],
					"store_id", "Por favor selecione uma loja.")}
			},
		},
		{
			ruleKey: "shared.order_number", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				passed := f.OrderNumber.Valid() && f.OrderNumber.Value() >= 4
				return []Result{check(passed,
					"order_number", "O número da encomenda deve ter pelo menos 4 caracteres.")}
			},
		},
		{
			ruleKey: "shared.date", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				_, ok := ParseDate(f.Date)
				return []Result{check(ok, "date", "Data inválida.")}
			},
		},
		{
			ruleKey: "shared.nif", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				// Empty means "not provided" and is valid; anything else
				// must be exactly 9 digits.
				if f.NIF == "" {
					return []Result{check(true, "nif", "")}
				}
				if !digitsPattern.MatchString(f.NIF) {
					return []Result{check(false, "nif", "Apenas números são permitidos.")}
				}
				return []Result{check(len(f.NIF) == 9,
					"nif", "O número de contribuinte tem 9 caracteres.")}
			},
		},
	}
}
