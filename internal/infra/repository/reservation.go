package repository

import (
	"context"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/pkg/pgconv"
	"venue-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const insertPendingSQL = `
INSERT INTO pending_reservations
	(id, venue_id, user_id, party_name, attendees, date, payment_method, price_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *ReservationRepository) InsertPending(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertPendingSQL,
		res.ID(),
		res.VenueID().Value(),
		res.UserID(),
		res.PartyName().Value(),
		res.Attendees(),
		pgconv.DateToPgtype(res.Date().Time()),
		res.PaymentMethod().String(),
		res.PriceCents(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("venue or user missing", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert pending reservation", err)
	}
	return id, nil
}

const pendingByIDSQL = `
SELECT id, venue_id, user_id, party_name, attendees, date, payment_method, price_cents, status, created_at
FROM pending_reservations
WHERE id = $1
FOR UPDATE
`

func (r *ReservationRepository) PendingByID(ctx context.Context, id uuid.UUID) (*shared.PendingSnapshot, error) {
	var (
		snap shared.PendingSnapshot
		date pgtype.Date
		ts   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, pendingByIDSQL, id).Scan(
		&snap.ID,
		&snap.VenueID,
		&snap.UserID,
		&snap.PartyName,
		&snap.Attendees,
		&date,
		&snap.PaymentMethod,
		&snap.PriceCents,
		&snap.Status,
		&ts,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load pending reservation", err)
	}

	snap.Date = reservation.NewDate(pgconv.DateFromPgtype(date))
	snap.CreatedAt = pgconv.TimeFromPgtype(ts)
	return &snap, nil
}

const slotTakenSQL = `
SELECT EXISTS (
	SELECT 1 FROM confirmed_reservations
	WHERE venue_id = $1 AND date = $2 AND id <> $3
) OR EXISTS (
	SELECT 1 FROM pending_reservations
	WHERE venue_id = $1 AND date = $2 AND status = 'pending' AND id <> $3
)
`

// SlotTaken checks both collections: a slot held by either a confirmed
// event or a still-pending request is occupied. Denied rows never count.
func (r *ReservationRepository) SlotTaken(ctx context.Context, venueID venue.ID, date reservation.Date, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, slotTakenSQL, venueID.Value(), pgconv.DateToPgtype(date.Time()), excludeID).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return taken, nil
}

// LockSlot serializes writers on one (venue, date) for the duration of
// the transaction. hashtextextended gives a stable 64-bit key for the
// advisory lock space.
func (r *ReservationRepository) LockSlot(ctx context.Context, venueID venue.ID, date reservation.Date) error {
	_, err := r.db.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2::text, 0))`,
		venueID.Value(), date.String())
	if err != nil {
		return infra.WrapRepoErr("failed to lock slot", err)
	}
	return nil
}

func (r *ReservationRepository) MarkDenied(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE pending_reservations SET status = 'denied', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation denied", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertConfirmedSQL = `
INSERT INTO confirmed_reservations
	(id, venue_id, user_id, party_name, attendees, date, payment_method, price_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// InsertConfirmedFrom copies the pending snapshot into the confirmed
// collection, keeping the reservation id and the submission-time price.
func (r *ReservationRepository) InsertConfirmedFrom(ctx context.Context, snap *shared.PendingSnapshot) error {
	_, err := r.db.Exec(ctx, insertConfirmedSQL,
		snap.ID,
		snap.VenueID,
		snap.UserID,
		snap.PartyName,
		snap.Attendees,
		pgconv.DateToPgtype(snap.Date.Time()),
		snap.PaymentMethod,
		snap.PriceCents,
		snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("confirmed slot already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert confirmed reservation", err)
	}
	return nil
}

func (r *ReservationRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pending_reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pending reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteConfirmed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM confirmed_reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete confirmed reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("confirmed reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
