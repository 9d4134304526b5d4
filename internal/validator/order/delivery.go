package order

import (
	"fmt"
	"math"
	"unicode/utf8"

	"encomendas/internal/domain"
	"encomendas/internal/format"
)

// paymentTolerance is the slack allowed between the payment split and the
// order total before the advisory warning fires.
const paymentTolerance = 0.01

// DeliveryRules apply to shipped orders: contact details and a delivery
// address become mandatory, and the optional payment split is checked. The
// payment method set comes from configuration.
func DeliveryRules(methods []domain.PaymentMethod) []*rule {
	methodSet := make(map[string]bool, len(methods))
	for _, m := range methods {
		methodSet[string(m)] = true
	}

	rules := []*rule{
		{
			ruleKey: "delivery.email", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.Email == "" {
					return []Result{check(false, "email", "Email é obrigatório")}
				}
				return []Result{check(emailPattern.MatchString(f.Email),
					"email", "Email inválido")}
			},
		},
		{
			ruleKey: "delivery.phone", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.PhoneNumber == "" {
					return []Result{check(false, "phone_number", "O número de telefone é obrigatório")}
				}
				return []Result{check(format.IsPossiblePhone(f.PhoneNumber),
					"phone_number", "Número de telefone inválido")}
			},
		},
		{
			ruleKey: "delivery.address1", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{check(utf8.RuneCountInString(f.Address1) >= 5,
					"address1", "A morada deve ter pelo menos 5 caracteres.")}
			},
		},
		{
			ruleKey: "delivery.postal_code", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{postalCodeCheck("postal_code", f.PostalCode)}
			},
		},
		{
			ruleKey: "delivery.city", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				return []Result{check(utf8.RuneCountInString(f.City) >= 5,
					"city", "A cidade deve ter pelo menos 5 caracteres.")}
			},
		},
		{
			ruleKey: "delivery.payment_type", severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				if f.PaymentType == "" {
					return []Result{check(true, "payment_type", "")}
				}
				return []Result{check(methodSet[f.PaymentType],
					"payment_type", "Meio de pagamento inválido.")}
			},
		},
	}

	for _, p := range []struct {
		key, field string
		amount     func(*Form) Amount
	}{
		{"delivery.first_payment", "first_payment", func(f *Form) Amount { return f.FirstPayment }},
		{"delivery.second_payment", "second_payment", func(f *Form) Amount { return f.SecondPayment }},
	} {
		amount, field := p.amount, p.field
		rules = append(rules, &rule{
			ruleKey: p.key, severity: domain.ValidationSeverityError,
			validate: func(f *Form) []Result {
				a := amount(f)
				if !a.Present() {
					return []Result{check(true, field, "")}
				}
				if !a.Valid() {
					return []Result{check(false, field, "O pagamento é inválido.")}
				}
				return []Result{check(a.Value() >= 0, field, "O pagamento não pode ser negativo.")}
			},
		})
	}

	rules = append(rules, paymentSplitRule())
	return rules
}

// paymentSplitRule warns when both payments are given but do not add up to
// the order total. It never blocks acceptance.
func paymentSplitRule() *rule {
	return &rule{
		ruleKey: "delivery.payment_split", severity: domain.ValidationSeverityWarning,
		validate: func(f *Form) []Result {
			if !f.FirstPayment.Valid() || !f.SecondPayment.Valid() {
				return nil
			}
			total := 0.0
			for i := range f.Items {
				if !f.Items[i].UnitPrice.Valid() {
					return nil // item errors are reported elsewhere
				}
				total += f.Items[i].Quantity * f.Items[i].UnitPrice.Value()
			}
			split := f.FirstPayment.Value() + f.SecondPayment.Value()
			passed := math.Abs(split-total) < paymentTolerance
			return []Result{check(passed, "payments",
				fmt.Sprintf("O valor dos pagamentos (%.2f) não coincide com o total da encomenda (%.2f).", split, total))}
		},
	}
}

func postalCodeCheck(field, value string) Result {
	if value != "" && !digitsPattern.MatchString(value) {
		return check(false, field, "Apenas números são permitidos.")
	}
	return check(len(value) == 7, field, "O código postal deve ter 7 caracteres.")
}
