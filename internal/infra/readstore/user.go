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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userColumns = `id, email, name, is_admin, is_worker, is_active, last_login`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm        readmodel.AuthorizedUserRM
		hash      string
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email).Scan(
		&rm.ID, &rm.Email, &rm.Name, &rm.IsAdmin, &rm.IsWorker, &rm.IsActive, &lastLogin, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &rm, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var (
		rm        readmodel.AuthorizedUserRM
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id).Scan(
		&rm.ID, &rm.Email, &rm.Name, &rm.IsAdmin, &rm.IsWorker, &rm.IsActive, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &rm, nil
}

func (s *UserReadStore) ListWorkers(ctx context.Context) ([]*readmodel.WorkerRM, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name FROM users WHERE is_worker = TRUE AND is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workers", err)
	}
	defer rows.Close()

	var workers []*readmodel.WorkerRM
	for rows.Next() {
		var w readmodel.WorkerRM
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan worker", err)
		}
		workers = append(workers, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read workers", err)
	}
	return workers, nil
}

func (s *UserReadStore) ListMembers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY email`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	defer rows.Close()

	var members []*readmodel.AuthorizedUserRM
	for rows.Next() {
		var (
			rm        readmodel.AuthorizedUserRM
			lastLogin pgtype.Timestamptz
		)
		if err := rows.Scan(&rm.ID, &rm.Email, &rm.Name, &rm.IsAdmin, &rm.IsWorker, &rm.IsActive, &lastLogin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan member", err)
		}
		rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
		members = append(members, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read members", err)
	}
	return members, nil
}

// FindWorkers resolves a candidate id set to registered active workers.
func (s *UserReadStore) FindWorkers(ctx context.Context, ids []uuid.UUID) ([]*readmodel.WorkerRM, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name FROM users WHERE id = ANY($1) AND is_worker = TRUE AND is_active = TRUE ORDER BY name`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find workers", err)
	}
	defer rows.Close()

	var workers []*readmodel.WorkerRM
	for rows.Next() {
		var w readmodel.WorkerRM
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan worker", err)
		}
		workers = append(workers, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read workers", err)
	}
	return workers, nil
}
