package repository

import (
	"context"

	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetAdmin(ctx context.Context, userID uuid.UUID) error {
	return r.setFlag(ctx, `UPDATE users SET is_admin = TRUE, updated_at = now() WHERE id = $1`, userID)
}

func (r *UserRepository) SetWorker(ctx context.Context, userID uuid.UUID) error {
	return r.setFlag(ctx, `UPDATE users SET is_worker = TRUE, updated_at = now() WHERE id = $1`, userID)
}

func (r *UserRepository) setFlag(ctx context.Context, sql string, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, sql, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
