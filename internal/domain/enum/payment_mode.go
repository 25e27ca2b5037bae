package enum

// PaymentMode identifies how a donation was paid.
type PaymentMode string

const (
	PaymentOnline    PaymentMode = "Online"
	PaymentOffline   PaymentMode = "Offline"
	PaymentQRPayment PaymentMode = "QRPayment"
)

// DefaultPaymentMode is applied when a record arrives without a payment mode.
const DefaultPaymentMode = PaymentOffline

// Valid reports whether the mode is one of the known payment modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentOnline, PaymentOffline, PaymentQRPayment:
		return true
	}
	return false
}

// Display returns the human-readable label shown on receipts, with a
// decorative glyph per mode.
func (m PaymentMode) Display() string {
	switch m {
	case PaymentOnline:
		return "🌐 Online"
	case PaymentQRPayment:
		return "📱 QR Payment"
	case PaymentOffline:
		return "💵 Offline"
	default:
		return string(m)
	}
}
