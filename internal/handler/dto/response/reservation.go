package response

import (
	"time"

	"venue-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AssignedWorkerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationResponse struct {
	ID              uuid.UUID                `json:"id"`
	VenueID         string                   `json:"venue_id"`
	VenueName       string                   `json:"venue_name"`
	UserID          uuid.UUID                `json:"user_id"`
	PartyName       string                   `json:"party_name"`
	Attendees       int32                    `json:"attendees"`
	Date            string                   `json:"date"`
	PaymentMethod   string                   `json:"payment_method"`
	PriceCents      int64                    `json:"price_cents"`
	Status          string                   `json:"status"`
	AssignedWorkers []AssignedWorkerResponse `json:"assigned_workers"`
	CreatedAt       time.Time                `json:"created_at"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	workers := make([]AssignedWorkerResponse, len(rm.AssignedWorkers))
	for i, w := range rm.AssignedWorkers {
		workers[i] = AssignedWorkerResponse{ID: w.ID, Name: w.Name}
	}
	return &ReservationResponse{
		ID:              rm.ID,
		VenueID:         rm.VenueID,
		VenueName:       rm.VenueName,
		UserID:          rm.UserID,
		PartyName:       rm.PartyName,
		Attendees:       rm.Attendees,
		Date:            rm.Date,
		PaymentMethod:   rm.PaymentMethod,
		PriceCents:      rm.PriceCents,
		Status:          rm.Status,
		AssignedWorkers: workers,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromReservationList(rms []*readmodel.ReservationRM) []*ReservationResponse {
	res := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromReservationRM(rm)
	}
	return res
}
