package venue

import "time"

// Venue is a bookable location. Mutable only through explicit admin edits;
// reservation submissions snapshot its price rather than referencing it.
type Venue struct {
	id         ID
	name       Name
	location   string
	capacity   int32
	priceCents int64
	features   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewVenue(id ID, name Name, location string, capacity int32, priceCents int64, features string) (*Venue, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Venue{
		id:         id,
		name:       name,
		location:   location,
		capacity:   capacity,
		priceCents: priceCents,
		features:   features,
	}, nil
}

func ReconstructVenue(id ID, name Name, location string, capacity int32, priceCents int64, features string, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		id:         id,
		name:       name,
		location:   location,
		capacity:   capacity,
		priceCents: priceCents,
		features:   features,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (v *Venue) ID() ID               { return v.id }
func (v *Venue) Name() Name           { return v.name }
func (v *Venue) Location() string     { return v.location }
func (v *Venue) Capacity() int32      { return v.capacity }
func (v *Venue) PriceCents() int64    { return v.priceCents }
func (v *Venue) Features() string     { return v.features }
func (v *Venue) CreatedAt() time.Time { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time { return v.updatedAt }

func (v *Venue) CanHost(attendees int32) bool {
	return attendees <= v.capacity
}
