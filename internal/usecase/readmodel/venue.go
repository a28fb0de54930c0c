package readmodel

import "time"

type VenueRM struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Capacity   int32     `json:"capacity"`
	PriceCents int64     `json:"price_cents"`
	Features   string    `json:"features"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
