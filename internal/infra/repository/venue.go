package repository

import (
	"context"

	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/pkg/pgconv"
)

type VenueRepository struct {
	db db.DBTX
}

func NewVenueRepository(dbtx db.DBTX) *VenueRepository {
	return &VenueRepository{db: dbtx}
}

const insertVenueSQL = `
INSERT INTO venues (id, name, location, capacity, price_cents, features)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *VenueRepository) Insert(ctx context.Context, v *venue.Venue) error {
	_, err := r.db.Exec(ctx, insertVenueSQL,
		v.ID().Value(), v.Name().Value(), v.Location(), v.Capacity(), v.PriceCents(), v.Features())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("venue identifier already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert venue", err)
	}
	return nil
}

const updateVenueSQL = `
UPDATE venues
SET name = $2, location = $3, capacity = $4, price_cents = $5, features = $6, updated_at = now()
WHERE id = $1
`

func (r *VenueRepository) Update(ctx context.Context, v *venue.Venue) error {
	tag, err := r.db.Exec(ctx, updateVenueSQL,
		v.ID().Value(), v.Name().Value(), v.Location(), v.Capacity(), v.PriceCents(), v.Features())
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id venue.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id.Value())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("venue still referenced by reservations", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
