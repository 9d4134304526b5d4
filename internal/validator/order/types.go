// Package order holds the raw sales-form submission type and the rule sets
// that validate it, discriminated by sales type.
package order

import (
	"bytes"
	"encoding/json"
	"math"
	"time"

	"encomendas/internal/format"
)

// Amount is a form field that arrives either as a JSON number or as a
// Portuguese comma-decimal string ("123,45"). A value that cannot be parsed
// is kept as present-but-invalid so rules can address the field.
type Amount struct {
	set   bool
	valid bool
	value float64
}

// AmountOf builds a present, valid Amount. Test fixtures use it.
func AmountOf(v float64) Amount {
	return Amount{set: true, valid: true, value: v}
}

// UnmarshalJSON accepts a number, a comma-decimal string, or null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = Amount{}
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Amount{set: true, valid: !math.IsNaN(n), value: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Wrong JSON type; keep it as an addressable field error instead
		// of failing the whole bind.
		*a = Amount{set: true}
		return nil
	}
	if s == "" {
		*a = Amount{}
		return nil
	}
	f := format.ParsePTNumber(s)
	*a = Amount{set: true, valid: !math.IsNaN(f), value: f}
	return nil
}

// Present reports whether the field was filled in at all.
func (a Amount) Present() bool { return a.set }

// Valid reports whether a present value parsed to a number.
func (a Amount) Valid() bool { return a.set && a.valid }

// Value returns the parsed number; only meaningful when Valid.
func (a Amount) Value() float64 { return a.value }

// Entry is one raw product line as submitted.
type Entry struct {
	ID          int64   `json:"id"`
	Ref         string  `json:"ref"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   Amount  `json:"unit_price"`
}

// Form is the raw order submission, prior to any validation. Delivery-only
// fields are simply left blank on direct sales.
type Form struct {
	SalesType   string  `json:"sales_type"`
	StoreID     string  `json:"store_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	NIF         string  `json:"nif"`
	OrderNumber Amount  `json:"order_number"`
	Date        string  `json:"date"`
	Notes       string  `json:"notes"`
	Items       []Entry `json:"items"`

	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Elevator    bool   `json:"elevator"`
	SameAddress *bool  `json:"same_address"`

	BillingAddress1   string `json:"billing_address1"`
	BillingAddress2   string `json:"billing_address2"`
	BillingPostalCode string `json:"billing_postal_code"`
	BillingCity       string `json:"billing_city"`

	FirstPayment  Amount `json:"first_payment"`
	SecondPayment Amount `json:"second_payment"`
	PaymentType   string `json:"payment_type"`
}

// SameAddressOrDefault applies the form default: billing follows the
// delivery address unless the customer unticks it.
func (f *Form) SameAddressOrDefault() bool {
	if f.SameAddress == nil {
		return true
	}
	return *f.SameAddress
}

// Result is the outcome of one rule for one field.
type Result struct {
	Passed  bool
	Field   string
	Message string
}

// FieldError addresses a validation message to the input that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// dateLayouts are the accepted submission formats for the order date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses the order date field. The zero time and false mean the
// value is not a syntactically valid date.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
