package domain

// SalesType discriminates the two supported order kinds.
type SalesType string

const (
	SalesTypeDirect   SalesType = "direct"
	SalesTypeDelivery SalesType = "delivery"
)

// Valid reports whether the sales type is one of the supported kinds.
func (s SalesType) Valid() bool {
	return s == SalesTypeDirect || s == SalesTypeDelivery
}

// PaymentMethod tags how an up-front payment is made.
type PaymentMethod string

const (
	PaymentMBWay    PaymentMethod = "mbway"
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"

	// PaymentOnDelivery tags the balance settled when the order arrives.
	// It is never user-selectable.
	PaymentOnDelivery PaymentMethod = "delivery"
)

// ValidationSeverity distinguishes blocking errors from advisory warnings.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)
