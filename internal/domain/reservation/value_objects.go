package reservation

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidDate          = errors.New("invalid reservation date")
	ErrInvalidPartyName     = errors.New("party name must not be empty")
	ErrInvalidAttendees     = errors.New("attendee count must be positive")
	ErrMissingCardDetails   = errors.New("debit card details are incomplete")
	ErrCardNumberTooLong    = errors.New("card number exceeds 20 digits")
	ErrInvalidCVV           = errors.New("cvv must be at most 3 digits")
)

const dateLayout = "2006-01-02"

// Date is a calendar day. Reservations are day-granular: one venue can
// hold at most one active reservation per Date.
type Date struct {
	value time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	return d.value
}

func (d Date) String() string {
	return d.value.Format(dateLayout)
}

func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}

func (d Date) IsZero() bool {
	return d.value.IsZero()
}

type PartyName struct {
	value string
}

func NewPartyName(s string) (PartyName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartyName{}, ErrInvalidPartyName
	}
	return PartyName{value: s}, nil
}

func (p PartyName) Value() string {
	return p.value
}

// DebitCard holds the debit payment fields for policy validation only.
// The bounds are submission policy, not real payment verification, and
// the card data is never persisted.
type DebitCard struct {
	number     string
	expiration string
	cvv        string
}

const (
	maxCardDigits = 20
	maxCVVDigits  = 3
)

func NewDebitCard(number, expiration, cvv string) (DebitCard, error) {
	number = strings.TrimSpace(number)
	expiration = strings.TrimSpace(expiration)
	cvv = strings.TrimSpace(cvv)

	if number == "" || expiration == "" || cvv == "" {
		return DebitCard{}, ErrMissingCardDetails
	}
	if len(digitsOf(number)) > maxCardDigits {
		return DebitCard{}, ErrCardNumberTooLong
	}
	if !isDigits(cvv) || len(cvv) > maxCVVDigits {
		return DebitCard{}, ErrInvalidCVV
	}

	return DebitCard{number: number, expiration: expiration, cvv: cvv}, nil
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
