package readstore

import (
	"context"

	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/pkg/pgconv"
	"venue-scheduler/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: dbtx}
}

const venueColumns = `id, name, location, capacity, price_cents, features, created_at, updated_at`

func (s *VenueReadStore) FindByID(ctx context.Context, id string) (*readmodel.VenueRM, error) {
	row := s.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	rm, err := scanVenueRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue", err)
	}
	return rm, nil
}

func (s *VenueReadStore) List(ctx context.Context) ([]*readmodel.VenueRM, error) {
	rows, err := s.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var venues []*readmodel.VenueRM
	for rows.Next() {
		rm, err := scanVenueRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		venues = append(venues, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venues", err)
	}
	return venues, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenueRM(row rowScanner) (*readmodel.VenueRM, error) {
	var (
		rm        readmodel.VenueRM
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Location,
		&rm.Capacity,
		&rm.PriceCents,
		&rm.Features,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}
