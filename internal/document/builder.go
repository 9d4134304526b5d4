// Package document turns a validated order into the renderer-ready
// DocumentData model. The transformation is pure: no I/O, fresh output per
// call, and a failed invariant aborts the whole build rather than emitting
// a partial document.
package document

import (
	"fmt"
	"math"
	"strconv"

	"encomendas/internal/config"
	"encomendas/internal/domain"
	"encomendas/internal/format"
)

// onDeliveryLabel is the fixed label of the balance settled on delivery.
const onDeliveryLabel = "No acto de entrega"

// Builder assembles DocumentData from validated orders using the injected
// company profile.
type Builder struct {
	company      config.CompanyConfig
	methodLabels map[domain.PaymentMethod]string
}

// NewBuilder creates a Builder over the configured company identity and
// payment-method label table.
func NewBuilder(company config.CompanyConfig, methodLabels map[domain.PaymentMethod]string) *Builder {
	return &Builder{company: company, methodLabels: methodLabels}
}

// Build maps a validated order to its document model. Validation should
// make the error paths unreachable, but arithmetic and invariant failures
// are still re-checked so a corrupt order can never produce a document.
func (b *Builder) Build(o *domain.Order) (*domain.DocumentData, error) {
	if len(o.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	items := make([]domain.DocumentItem, 0, len(o.Items))
	var totalAmount float64
	for i, item := range o.Items {
		total := float64(item.Quantity) * item.UnitPrice
		if math.IsNaN(total) {
			return nil, fmt.Errorf("item %d (%s): %w", i, item.Ref, domain.ErrItemTotal)
		}
		items = append(items, domain.DocumentItem{
			Ref:         item.Ref,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       total,
		})
		totalAmount += total
	}
	if math.IsNaN(totalAmount) {
		return nil, domain.ErrOrderTotal
	}

	customer := domain.Customer{
		Name:  o.Name,
		Email: o.Email,
		Phone: displayPhone(o.PhoneNumber),
	}
	if o.NIF != "" {
		customer.NIF = format.NIF(o.NIF)
	}

	var payments []domain.Payment
	if d := o.Delivery; d != nil {
		customer.Address = domain.Address{
			Address1:    d.Address1,
			Address2:    d.Address2,
			PostalCode:  format.PostalCode(d.PostalCode),
			City:        d.City,
			HasElevator: d.Elevator,
		}

		// A distinct billing address only exists when the customer unticked
		// "same address" AND filled in all three required billing fields.
		// Partial billing data means no billing override.
		if !d.SameAddress && d.BillingAddress1 != "" && d.BillingPostalCode != "" && d.BillingCity != "" {
			customer.BillingAddress = &domain.Address{
				Address1:   d.BillingAddress1,
				Address2:   d.BillingAddress2,
				PostalCode: format.PostalCode(d.BillingPostalCode),
				City:       d.BillingCity,
			}
		}

		var err error
		payments, err = b.paymentBreakdown(o, d)
		if err != nil {
			return nil, err
		}
	}

	return &domain.DocumentData{
		Company:  domain.Company{Name: b.company.Name, NIF: b.company.NIF},
		Customer: customer,
		Order: domain.DocumentOrder{
			ID:          strconv.Itoa(o.Number),
			StoreID:     b.company.StorePrefix + " " + o.StoreID,
			SalesType:   o.SalesType,
			Date:        format.LongDate(o.Date),
			Items:       items,
			VAT:         b.company.VATRate,
			TotalAmount: totalAmount,
			Notes:       o.Notes,
			Payments:    payments,
		},
	}, nil
}

// paymentBreakdown builds the payment-conditions rows. Absent or zero
// amounts simply omit their row; there are never placeholder entries.
func (b *Builder) paymentBreakdown(o *domain.Order, d *domain.DeliveryDetails) ([]domain.Payment, error) {
	var payments []domain.Payment

	if d.FirstPayment != nil && *d.FirstPayment > 0 && d.PaymentType != "" && !o.Date.IsZero() {
		label, ok := b.methodLabels[d.PaymentType]
		if !ok {
			return nil, fmt.Errorf("%q: %w", d.PaymentType, domain.ErrUnknownPaymentType)
		}
		payments = append(payments, domain.Payment{
			Amount: *d.FirstPayment,
			Method: d.PaymentType,
			Label:  label,
			Date:   format.LongDate(o.Date),
		})
	}

	if d.SecondPayment != nil && *d.SecondPayment > 0 {
		payments = append(payments, domain.Payment{
			Amount: *d.SecondPayment,
			Method: domain.PaymentOnDelivery,
			Label:  onDeliveryLabel,
		})
	}

	return payments, nil
}

// displayPhone formats a phone number for the document, or nil when the
// customer gave none.
func displayPhone(phone string) *string {
	if phone == "" {
		return nil
	}
	p := format.Phone(phone)
	return &p
}
