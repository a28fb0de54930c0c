package usecase

import (
	"context"
	"errors"
	"strings"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// Every confirmed event is staffed by exactly two workers.
const requiredWorkers = 2

var (
	ErrInvalidAssignmentSize = errors.New("exactly two distinct workers required")
	ErrWorkerNotFound        = errors.New("candidate is not a registered worker")
	ErrWorkerConflict        = errors.New("worker already committed on this date")
)

// WorkerConflictError reports which candidates are already committed on
// the reservation's date, by name, for user-facing messages.
type WorkerConflictError struct {
	Workers []readmodel.WorkerRM
}

func (e *WorkerConflictError) Error() string {
	names := make([]string, len(e.Workers))
	for i, w := range e.Workers {
		names[i] = w.Name
	}
	return "worker(s) " + strings.Join(names, ", ") + " already assigned on this date"
}

func (e *WorkerConflictError) Unwrap() error {
	return ErrWorkerConflict
}

type WorkerReadStore interface {
	// FindWorkers resolves ids to registered workers; ids that are not
	// worker profiles are absent from the result.
	FindWorkers(ctx context.Context, ids []uuid.UUID) ([]*readmodel.WorkerRM, error)
}

type AssignmentUseCase interface {
	Assign(ctx context.Context, reservationID uuid.UUID, workerIDs []uuid.UUID) ([]readmodel.WorkerRM, error)
	Clear(ctx context.Context, reservationID uuid.UUID) error
}

type assignmentUseCaseImpl struct {
	uow         shared.UnitOfWork
	workerReads WorkerReadStore
}

func NewAssignmentUseCase(uow shared.UnitOfWork, workerReads WorkerReadStore) AssignmentUseCase {
	return &assignmentUseCaseImpl{
		uow:         uow,
		workerReads: workerReads,
	}
}

// Assign replaces the reservation's worker set with the proposed one.
// All-or-nothing: any committed candidate blocks the whole set and no
// write happens. Commitments in both the pending and confirmed
// collections count, since a person cannot work two events on one day.
func (a *assignmentUseCaseImpl) Assign(ctx context.Context, reservationID uuid.UUID, workerIDs []uuid.UUID) ([]readmodel.WorkerRM, error) {
	if !validAssignmentSet(workerIDs) {
		return nil, ErrInvalidAssignmentSize
	}

	candidates, err := a.workerReads.FindWorkers(ctx, workerIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(candidates) != requiredWorkers {
		return nil, ErrWorkerNotFound
	}

	candidateByID := make(map[uuid.UUID]readmodel.WorkerRM, len(candidates))
	for _, w := range candidates {
		candidateByID[w.ID] = *w
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().PendingByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if snap.Status != reservation.StatusPending.String() {
			return ErrAlreadyDecided
		}

		conflicting, err := tx.Assignments().ConflictingWorkers(ctx, snap.Date, reservationID, workerIDs)
		if err != nil {
			return err
		}
		if len(conflicting) > 0 {
			conflictErr := &WorkerConflictError{}
			for _, id := range conflicting {
				conflictErr.Workers = append(conflictErr.Workers, candidateByID[id])
			}
			return conflictErr
		}

		return tx.Assignments().Replace(ctx, reservationID, snap.Date, workerIDs)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound),
			errors.Is(err, ErrAlreadyDecided),
			errors.Is(err, ErrWorkerConflict):
			return nil, err
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Lost the race against a concurrent assignment touching one of
			// the same workers; the (worker, date) constraint caught it.
			return nil, ErrWorkerConflict
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	assigned := make([]readmodel.WorkerRM, 0, len(candidates))
	for _, w := range candidates {
		assigned = append(assigned, *w)
	}
	return assigned, nil
}

// Clear resets the worker set unconditionally; repeated calls are no-ops.
func (a *assignmentUseCaseImpl) Clear(ctx context.Context, reservationID uuid.UUID) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().PendingByID(ctx, reservationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return tx.Assignments().Clear(ctx, reservationID)
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return err
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func validAssignmentSet(workerIDs []uuid.UUID) bool {
	if len(workerIDs) != requiredWorkers {
		return false
	}
	return workerIDs[0] != workerIDs[1]
}
