package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// ReservationRM is a reservation as rendered to clients, joined with the
// venue name and the assigned worker set.
type ReservationRM struct {
	ID              uuid.UUID  `json:"id"`
	VenueID         string     `json:"venue_id"`
	VenueName       string     `json:"venue_name"`
	UserID          uuid.UUID  `json:"user_id"`
	PartyName       string     `json:"party_name"`
	Attendees       int32      `json:"attendees"`
	Date            string     `json:"date"`
	PaymentMethod   string     `json:"payment_method"`
	PriceCents      int64      `json:"price_cents"`
	Status          string     `json:"status"`
	AssignedWorkers []WorkerRM `json:"assigned_workers"`
	CreatedAt       time.Time  `json:"created_at"`
}
