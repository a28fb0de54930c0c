package reservation

import (
	"venue-scheduler/internal/domain/venue"

	"github.com/google/uuid"
)

// SubmitSpec carries the raw submission fields before domain validation.
type SubmitSpec struct {
	PartyName     string
	Attendees     int32
	Date          Date
	PaymentMethod PaymentMethod
	Card          *DebitCard
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// NewPending validates a submission against the target venue and builds a
// pending reservation with the venue's current price snapshotted in.
// Debit submissions must carry complete card details; the card itself is
// validated by its constructor and discarded after this check.
func (f *Factory) NewPending(v *venue.Venue, userID uuid.UUID, spec SubmitSpec) (*Reservation, error) {
	partyName, err := NewPartyName(spec.PartyName)
	if err != nil {
		return nil, err
	}
	if spec.Attendees <= 0 {
		return nil, ErrInvalidAttendees
	}
	if !v.CanHost(spec.Attendees) {
		return nil, ErrCapacityExceeded
	}
	if spec.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !spec.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if spec.PaymentMethod == PaymentDebit && spec.Card == nil {
		return nil, ErrMissingCardDetails
	}

	return &Reservation{
		id:            uuid.New(),
		venueID:       v.ID(),
		userID:        userID,
		partyName:     partyName,
		attendees:     spec.Attendees,
		date:          spec.Date,
		paymentMethod: spec.PaymentMethod,
		priceCents:    v.PriceCents(),
		status:        StatusPending,
	}, nil
}
