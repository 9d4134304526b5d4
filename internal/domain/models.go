package domain

import "time"

// LineItem is a single validated product entry on an order.
type LineItem struct {
	ID          int64
	Ref         string
	Description string
	Quantity    int
	UnitPrice   float64
}

// DeliveryDetails carries the address and payment fields that only exist
// for delivery orders.
type DeliveryDetails struct {
	Address1    string
	Address2    string
	PostalCode  string
	City        string
	Elevator    bool
	SameAddress bool

	BillingAddress1   string
	BillingAddress2   string
	BillingPostalCode string
	BillingCity       string

	FirstPayment  *float64
	SecondPayment *float64
	PaymentType   PaymentMethod
}

// Order is a fully validated, normalized order submission. Invalid input
// never reaches this type: string amounts are parsed, booleans defaulted,
// the order number coerced and the date parsed.
type Order struct {
	SalesType   SalesType
	StoreID     string
	Name        string
	Email       string
	PhoneNumber string
	NIF         string
	Number      int
	Date        time.Time
	Notes       string
	Items       []LineItem

	// Delivery is nil for direct sales.
	Delivery *DeliveryDetails
}

// Company is the fixed legal identity printed on every document. It comes
// from configuration, never from user input.
type Company struct {
	Name string `json:"name"`
	NIF  string `json:"nif"`
}

// Address is a display-ready address on the rendered document.
type Address struct {
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	HasElevator bool   `json:"has_elevator"`
}

// Customer is the customer block of the rendered document.
type Customer struct {
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Phone          *string  `json:"phone"`
	NIF            string   `json:"nif,omitempty"`
	Address        Address  `json:"address"`
	BillingAddress *Address `json:"billing_address,omitempty"`
}

// DocumentItem is a priced line on the rendered document.
type DocumentItem struct {
	Ref         string  `json:"ref"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Payment is one row of the payment-conditions table.
type Payment struct {
	Amount float64       `json:"amount"`
	Method PaymentMethod `json:"method"`
	Label  string        `json:"label"`
	Date   string        `json:"date"`
}

// DocumentOrder is the order block of the rendered document.
type DocumentOrder struct {
	ID          string         `json:"id"`
	StoreID     string         `json:"store_id"`
	SalesType   SalesType      `json:"sales_type"`
	Date        string         `json:"date"`
	Items       []DocumentItem `json:"items"`
	VAT         string         `json:"vat"`
	TotalAmount float64        `json:"total_amount"`
	Notes       string         `json:"notes,omitempty"`
	Payments    []Payment      `json:"payments,omitempty"`
}

// DocumentData is the renderer-ready representation of an order. It is the
// sole contract surface with the presentation collaborator and is never
// mutated after construction.
type DocumentData struct {
	Company  Company       `json:"company"`
	Customer Customer      `json:"customer"`
	Order    DocumentOrder `json:"order"`
}
