package response

import (
	"time"

	"venue-scheduler/internal/usecase/readmodel"
)

type VenueResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Capacity   int32     `json:"capacity"`
	PriceCents int64     `json:"price_cents"`
	Features   string    `json:"features"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromVenueRM(rm *readmodel.VenueRM) *VenueResponse {
	return &VenueResponse{
		ID:         rm.ID,
		Name:       rm.Name,
		Location:   rm.Location,
		Capacity:   rm.Capacity,
		PriceCents: rm.PriceCents,
		Features:   rm.Features,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromVenueList(rms []*readmodel.VenueRM) []*VenueResponse {
	res := make([]*VenueResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromVenueRM(rm)
	}
	return res
}
