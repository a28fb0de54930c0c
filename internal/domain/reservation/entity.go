package reservation

import (
	"errors"
	"time"

	"venue-scheduler/internal/domain/venue"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded = errors.New("attendee count exceeds venue capacity")
	ErrNotPending       = errors.New("reservation is not pending")
)

// Reservation is a request to occupy a venue slot (venue, date). The price
// is snapshotted from the venue at submission time and never recomputed.
type Reservation struct {
	id            uuid.UUID
	venueID       venue.ID
	userID        uuid.UUID
	partyName     PartyName
	attendees     int32
	date          Date
	paymentMethod PaymentMethod
	priceCents    int64
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	venueID venue.ID,
	userID uuid.UUID,
	partyName PartyName,
	attendees int32,
	date Date,
	paymentMethod PaymentMethod,
	priceCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		venueID:       venueID,
		userID:        userID,
		partyName:     partyName,
		attendees:     attendees,
		date:          date,
		paymentMethod: paymentMethod,
		priceCents:    priceCents,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) VenueID() venue.ID            { return r.venueID }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) PartyName() PartyName         { return r.partyName }
func (r *Reservation) Attendees() int32             { return r.attendees }
func (r *Reservation) Date() Date                   { return r.date }
func (r *Reservation) PaymentMethod() PaymentMethod { return r.paymentMethod }
func (r *Reservation) PriceCents() int64            { return r.priceCents }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}
