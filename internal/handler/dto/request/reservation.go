package request

import (
	"strings"

	"venue-scheduler/internal/usecase"
)

// CardDetails is accepted for debit payments only and never persisted.
type CardDetails struct {
	Number     string `json:"number" binding:"required"`
	Expiration string `json:"expiration" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

type SubmitReservationRequest struct {
	VenueID       string       `json:"venue_id" binding:"required"`
	PartyName     string       `json:"party_name" binding:"required,max=255"`
	Attendees     int32        `json:"attendees" binding:"required,gt=0"`
	Date          string       `json:"date" binding:"required"`
	PaymentMethod string       `json:"payment_method" binding:"required,oneof=cash debit"`
	Card          *CardDetails `json:"card,omitempty"`
}

func (r SubmitReservationRequest) ToParams() usecase.SubmitReservationParams {
	params := usecase.SubmitReservationParams{
		VenueID:       strings.TrimSpace(r.VenueID),
		PartyName:     strings.TrimSpace(r.PartyName),
		Attendees:     r.Attendees,
		Date:          strings.TrimSpace(r.Date),
		PaymentMethod: r.PaymentMethod,
	}
	if r.Card != nil {
		params.CardNumber = strings.TrimSpace(r.Card.Number)
		params.CardExpiration = strings.TrimSpace(r.Card.Expiration)
		params.CardCVV = strings.TrimSpace(r.Card.CVV)
	}
	return params
}
