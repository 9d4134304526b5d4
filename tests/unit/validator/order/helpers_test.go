package order_test

import (
	"context"

	"encomendas/internal/domain"
	"encomendas/internal/validator/order"
)

var (
	testStores  = []string{"1", "3", "6"}
	testMethods = []domain.PaymentMethod{
		domain.PaymentMBWay, domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer,
	}
)

// ruleUnderTest lets helpers hand back the package's unexported rule type.
type ruleUnderTest interface {
	Validate(ctx context.Context, f *order.Form) []order.Result
	RuleKey() string
	Severity() domain.ValidationSeverity
}

func findRule[T ruleUnderTest](rules []T, key string) ruleUnderTest {
	for _, r := range rules {
		if r.RuleKey() == key {
			return r
		}
	}
	return nil
}

func validDirectForm() *order.Form {
	return &order.Form{
		SalesType:   "direct",
		StoreID:     "1",
		Name:        "João dos Santos",
		OrderNumber: order.AmountOf(6112),
		Date:        "2026-01-02",
		Items: []order.Entry{
			{ID: 1, Ref: "REF-100", Description: "Candeeiro de mesa", Quantity: 1, UnitPrice: order.AmountOf(123)},
		},
	}
}

func validDeliveryForm() *order.Form {
	f := validDirectForm()
	f.SalesType = "delivery"
	f.Email = "cliente@example.com"
	f.PhoneNumber = "+351912345678"
	f.Address1 = "Rua das Flores 123"
	f.PostalCode = "1500463"
	f.City = "Lisboa"
	return f
}

func boolPtr(b bool) *bool { return &b }

func failed(results []order.Result) []order.Result {
	var out []order.Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
