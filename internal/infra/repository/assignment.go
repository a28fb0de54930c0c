package repository

import (
	"context"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"
	"venue-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(dbtx db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: dbtx}
}

// Replace swaps the worker set in one delete+insert pass. The
// UNIQUE (worker_id, date) index rejects a worker already committed
// elsewhere on the same day, even when two assignments race.
func (r *AssignmentRepository) Replace(ctx context.Context, reservationID uuid.UUID, date reservation.Date, workerIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM reservation_workers WHERE reservation_id = $1`, reservationID); err != nil {
		return infra.WrapRepoErr("failed to clear previous assignments", err)
	}

	for _, workerID := range workerIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO reservation_workers (reservation_id, worker_id, date) VALUES ($1, $2, $3)`,
			reservationID, workerID, pgconv.DateToPgtype(date.Time()))
		if err != nil {
			if pgconv.IsUniqueViolation(err) {
				return infra.WrapRepoErr("worker already committed on this date", err, infra.KindDuplicateKey)
			}
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("reservation or worker missing", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert assignment", err)
		}
	}
	return nil
}

func (r *AssignmentRepository) Clear(ctx context.Context, reservationID uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM reservation_workers WHERE reservation_id = $1`, reservationID); err != nil {
		return infra.WrapRepoErr("failed to clear assignments", err)
	}
	return nil
}

func (r *AssignmentRepository) WorkerIDsFor(ctx context.Context, reservationID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT worker_id FROM reservation_workers WHERE reservation_id = $1 ORDER BY worker_id`,
		reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assigned workers", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan worker id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read assigned workers", err)
	}
	return ids, nil
}

const conflictingWorkersSQL = `
SELECT DISTINCT worker_id
FROM reservation_workers
WHERE date = $1
  AND reservation_id <> $2
  AND worker_id = ANY($3)
`

func (r *AssignmentRepository) ConflictingWorkers(ctx context.Context, date reservation.Date, excludeReservationID uuid.UUID, workerIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, conflictingWorkersSQL,
		pgconv.DateToPgtype(date.Time()), excludeReservationID, workerIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check worker conflicts", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting worker", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read worker conflicts", err)
	}
	return ids, nil
}
