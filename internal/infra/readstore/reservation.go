package readstore

import (
	"context"

	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/pkg/pgconv"
	"venue-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const pendingSelectSQL = `
SELECT p.id, p.venue_id, v.name, p.user_id, p.party_name, p.attendees,
       p.date, p.payment_method, p.price_cents, p.status, p.created_at
FROM pending_reservations p
JOIN venues v ON v.id = p.venue_id
`

const confirmedSelectSQL = `
SELECT c.id, c.venue_id, v.name, c.user_id, c.party_name, c.attendees,
       c.date, c.payment_method, c.price_cents, 'confirmed', c.created_at
FROM confirmed_reservations c
JOIN venues v ON v.id = c.venue_id
`

func (s *ReservationReadStore) FindPendingByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	return s.findOne(ctx, pendingSelectSQL+`WHERE p.id = $1`, id)
}

func (s *ReservationReadStore) FindConfirmedByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	return s.findOne(ctx, confirmedSelectSQL+`WHERE c.id = $1`, id)
}

func (s *ReservationReadStore) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	return s.list(ctx, pendingSelectSQL+`WHERE p.user_id = $1 ORDER BY p.date, p.created_at`, userID)
}

// ListPendingQueue excludes denied rows: they stay in the table for audit
// but are no longer awaiting review.
func (s *ReservationReadStore) ListPendingQueue(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	return s.list(ctx, pendingSelectSQL+`WHERE p.status = 'pending' ORDER BY p.created_at`)
}

func (s *ReservationReadStore) ListConfirmed(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	return s.list(ctx, confirmedSelectSQL+`ORDER BY c.date, c.created_at`)
}

func (s *ReservationReadStore) ListConfirmedByWorker(ctx context.Context, workerID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	sql := confirmedSelectSQL + `
JOIN reservation_workers rw ON rw.reservation_id = c.id
WHERE rw.worker_id = $1
ORDER BY c.date`
	return s.list(ctx, sql, workerID)
}

func (s *ReservationReadStore) findOne(ctx context.Context, sql string, args ...any) (*readmodel.ReservationRM, error) {
	rm, err := scanReservationRM(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	if err := s.attachWorkers(ctx, []*readmodel.ReservationRM{rm}); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *ReservationReadStore) list(ctx context.Context, sql string, args ...any) ([]*readmodel.ReservationRM, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var rms []*readmodel.ReservationRM
	for rows.Next() {
		rm, err := scanReservationRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	if err := s.attachWorkers(ctx, rms); err != nil {
		return nil, err
	}
	return rms, nil
}

func scanReservationRM(row rowScanner) (*readmodel.ReservationRM, error) {
	var (
		rm        readmodel.ReservationRM
		date      pgtype.Date
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID,
		&rm.VenueID,
		&rm.VenueName,
		&rm.UserID,
		&rm.PartyName,
		&rm.Attendees,
		&date,
		&rm.PaymentMethod,
		&rm.PriceCents,
		&rm.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	rm.Date = pgconv.DateFromPgtype(date).Format("2006-01-02")
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.AssignedWorkers = []readmodel.WorkerRM{}
	return &rm, nil
}

const workersForReservationsSQL = `
SELECT rw.reservation_id, u.id, u.name
FROM reservation_workers rw
JOIN users u ON u.id = rw.worker_id
WHERE rw.reservation_id = ANY($1)
ORDER BY u.name
`

func (s *ReservationReadStore) attachWorkers(ctx context.Context, rms []*readmodel.ReservationRM) error {
	if len(rms) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(rms))
	byID := make(map[uuid.UUID]*readmodel.ReservationRM, len(rms))
	for _, rm := range rms {
		ids = append(ids, rm.ID)
		byID[rm.ID] = rm
	}

	rows, err := s.db.Query(ctx, workersForReservationsSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load assigned workers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservationID uuid.UUID
			worker        readmodel.WorkerRM
		)
		if err := rows.Scan(&reservationID, &worker.ID, &worker.Name); err != nil {
			return infra.WrapRepoErr("failed to scan assigned worker", err)
		}
		if rm, ok := byID[reservationID]; ok {
			rm.AssignedWorkers = append(rm.AssignedWorkers, worker)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read assigned workers", err)
	}
	return nil
}
