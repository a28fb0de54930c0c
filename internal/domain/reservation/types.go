package reservation

// Status tracks the lifecycle of a reservation. Confirmed and denied are
// terminal; confirmed records live in their own collection, denied records
// stay in the pending collection as inert rows.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDenied    Status = "denied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDenied:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentDebit PaymentMethod = "debit"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentDebit:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}
