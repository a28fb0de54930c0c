//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	VenueID       string
	VenueName     string
	UserID        uuid.UUID
	PartyName     string
	Attendees     int32
	Date          string
	PaymentMethod string
	PriceCents    int64
	Status        string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		VenueID:       "grand-hall",
		VenueName:     "Grand Hall",
		UserID:        uuid.New(),
		PartyName:     "Sato wedding party",
		Attendees:     60,
		Date:          "2026-10-12",
		PaymentMethod: "cash",
		PriceCents:    250_000,
		Status:        "pending",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildSubmitParams() usecase.SubmitReservationParams {
	return usecase.SubmitReservationParams{
		VenueID:       b.VenueID,
		PartyName:     b.PartyName,
		Attendees:     b.Attendees,
		Date:          b.Date,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *ReservationBuilder) BuildReadModel() *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:              b.ID,
		VenueID:         b.VenueID,
		VenueName:       b.VenueName,
		UserID:          b.UserID,
		PartyName:       b.PartyName,
		Attendees:       b.Attendees,
		Date:            b.Date,
		PaymentMethod:   b.PaymentMethod,
		PriceCents:      b.PriceCents,
		Status:          b.Status,
		AssignedWorkers: []readmodel.WorkerRM{},
		CreatedAt:       time.Now(),
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.PendingSnapshot {
	date := MustDate(b.Date)
	return &shared.PendingSnapshot{
		ID:            b.ID,
		VenueID:       b.VenueID,
		UserID:        b.UserID,
		PartyName:     b.PartyName,
		Attendees:     b.Attendees,
		Date:          date,
		PaymentMethod: b.PaymentMethod,
		PriceCents:    b.PriceCents,
		Status:        b.Status,
		CreatedAt:     time.Now(),
	}
}
