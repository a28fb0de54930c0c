package request

import (
	"strings"

	"venue-scheduler/internal/usecase"
)

type CreateVenueRequest struct {
	ID         string `json:"id" binding:"required,max=64"`
	Name       string `json:"name" binding:"required,max=255"`
	Location   string `json:"location" binding:"required,max=255"`
	Capacity   int32  `json:"capacity" binding:"required,gt=0"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	Features   string `json:"features" binding:"max=2000"`
}

func (r CreateVenueRequest) ToParams() usecase.CreateVenueParams {
	return usecase.CreateVenueParams{
		ID:         strings.TrimSpace(r.ID),
		Name:       strings.TrimSpace(r.Name),
		Location:   strings.TrimSpace(r.Location),
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
		Features:   strings.TrimSpace(r.Features),
	}
}

type UpdateVenueRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Location   string `json:"location" binding:"required,max=255"`
	Capacity   int32  `json:"capacity" binding:"required,gt=0"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	Features   string `json:"features" binding:"max=2000"`
}

func (r UpdateVenueRequest) ToParams(id string) usecase.CreateVenueParams {
	return usecase.CreateVenueParams{
		ID:         id,
		Name:       strings.TrimSpace(r.Name),
		Location:   strings.TrimSpace(r.Location),
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
		Features:   strings.TrimSpace(r.Features),
	}
}
