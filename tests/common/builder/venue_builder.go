//go:build unit || e2e

package builder

import (
	"time"

	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/readmodel"
)

type VenueBuilder struct {
	ID         string
	Name       string
	Location   string
	Capacity   int32
	PriceCents int64
	Features   string
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:         "grand-hall",
		Name:       "Grand Hall",
		Location:   "12 Main St",
		Capacity:   120,
		PriceCents: 250_000,
		Features:   "stage, catering kitchen",
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	id, err := venue.NewID(b.ID)
	if err != nil {
		return nil, err
	}
	name, err := venue.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	return venue.NewVenue(id, name, b.Location, b.Capacity, b.PriceCents, b.Features)
}

func (b *VenueBuilder) BuildReadModel() *readmodel.VenueRM {
	now := time.Now()
	return &readmodel.VenueRM{
		ID:         b.ID,
		Name:       b.Name,
		Location:   b.Location,
		Capacity:   b.Capacity,
		PriceCents: b.PriceCents,
		Features:   b.Features,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *VenueBuilder) BuildParams() usecase.CreateVenueParams {
	return usecase.CreateVenueParams{
		ID:         b.ID,
		Name:       b.Name,
		Location:   b.Location,
		Capacity:   b.Capacity,
		PriceCents: b.PriceCents,
		Features:   b.Features,
	}
}
