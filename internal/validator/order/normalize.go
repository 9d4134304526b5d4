package order

import "encomendas/internal/domain"

// Normalize converts a form that passed every rule into the typed order
// model: amounts parsed, the order number coerced, the date parsed and form
// defaults applied. Callers must not invoke it on an unvalidated form.
func Normalize(f *Form) *domain.Order {
	date, _ := ParseDate(f.Date)

	o := &domain.Order{
		SalesType:   domain.SalesType(f.SalesType),
		StoreID:     f.StoreID,
		Name:        f.Name,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		NIF:         f.NIF,
		Number:      int(f.OrderNumber.Value()),
		Date:        date,
		Notes:       f.Notes,
	}

	o.Items = make([]domain.LineItem, 0, len(f.Items))
	for _, e := range f.Items {
		o.Items = append(o.Items, domain.LineItem{
			ID:          e.ID,
			Ref:         e.Ref,
			Description: e.Description,
			Quantity:    int(e.Quantity),
			UnitPrice:   e.UnitPrice.Value(),
		})
	}

	if o.SalesType == domain.SalesTypeDelivery {
		d := &domain.DeliveryDetails{
			Address1:          f.Address1,
			Address2:          f.Address2,
			PostalCode:        f.PostalCode,
			City:              f.City,
			Elevator:          f.Elevator,
			SameAddress:       f.SameAddressOrDefault(),
			BillingAddress1:   f.BillingAddress1,
			BillingAddress2:   f.BillingAddress2,
			BillingPostalCode: f.BillingPostalCode,
			BillingCity:       f.BillingCity,
			PaymentType:       domain.PaymentMethod(f.PaymentType),
		}
		if f.FirstPayment.Valid() {
			v := f.FirstPayment.Value()
			d.FirstPayment = &v
		}
		if f.SecondPayment.Valid() {
			v := f.SecondPayment.Value()
			d.SecondPayment = &v
		}
		o.Delivery = d
	}

	return o
}
