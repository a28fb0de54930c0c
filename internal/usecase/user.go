package usecase

import (
	"context"

	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// UserUseCase covers the admin promotion surface: granting the admin and
// worker flags on profile records mirrored from the identity collaborator.
type UserUseCase interface {
	PromoteToAdmin(ctx context.Context, userID uuid.UUID) error
	PromoteToWorker(ctx context.Context, userID uuid.UUID) error
	ListWorkers(ctx context.Context) ([]*readmodel.WorkerRM, error)
	ListMembers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads UserReadStore
}

func NewUserUseCase(uow shared.UnitOfWork, reads UserReadStore) UserUseCase {
	return &userUseCaseImpl{
		uow:   uow,
		reads: reads,
	}
}

func (u *userUseCaseImpl) PromoteToAdmin(ctx context.Context, userID uuid.UUID) error {
	return u.promote(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetAdmin(ctx, userID)
	})
}

func (u *userUseCaseImpl) PromoteToWorker(ctx context.Context, userID uuid.UUID) error {
	return u.promote(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetWorker(ctx, userID)
	})
}

func (u *userUseCaseImpl) promote(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := u.uow.Within(ctx, fn)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userUseCaseImpl) ListWorkers(ctx context.Context) ([]*readmodel.WorkerRM, error) {
	workers, err := u.reads.ListWorkers(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return workers, nil
}

func (u *userUseCaseImpl) ListMembers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	members, err := u.reads.ListMembers(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return members, nil
}
