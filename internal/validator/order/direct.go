package order

import (
	"encomendas/internal/domain"
	"encomendas/internal/format"
)

// DirectRules apply only to in-store sales: contact details are optional,
// no address is required.
func DirectRules() []*rule {
	return []*rule{
		{
			ruleKey: "direct.email", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.Email == "" {
					return []Result{check(true, "email", "")}
				}
				return []Result{check(emailPattern.MatchString(f.Email),
					"email", "Email inválido")}
			},
		},
		{
			ruleKey: "direct.phone", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.PhoneNumber == "" {
					return []Result{check(true, "phone_number", "")}
				}
				return []Result{check(format.IsPossiblePhone(f.PhoneNumber),
					"phone_number", "Número de telefone inválido")}
			},
		},
	}
}
