package usecase

import (
	"context"
	"errors"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrSlotTaken            = errors.New("venue already reserved on this date")
	ErrIncompleteAssignment = errors.New("exactly two workers must be assigned before confirming")
	ErrAlreadyDecided       = errors.New("reservation has already been decided")
	ErrNotReservationOwner  = errors.New("reservation belongs to another user")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationReadStore interface {
	FindPendingByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	FindConfirmedByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.ReservationRM, error)
	// ListPendingQueue returns the admin review queue: pending-collection
	// rows still in pending status, denied rows filtered out.
	ListPendingQueue(ctx context.Context) ([]*readmodel.ReservationRM, error)
	ListConfirmed(ctx context.Context) ([]*readmodel.ReservationRM, error)
	ListConfirmedByWorker(ctx context.Context, workerID uuid.UUID) ([]*readmodel.ReservationRM, error)
}

type SubmitReservationParams struct {
	VenueID        string
	PartyName      string
	Attendees      int32
	Date           string
	PaymentMethod  string
	CardNumber     string
	CardExpiration string
	CardCVV        string
}

type ReservationUseCase interface {
	Submit(ctx context.Context, params SubmitReservationParams, userID uuid.UUID) (*readmodel.ReservationRM, error)
	Confirm(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	Deny(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, fromConfirmed bool) error
	CancelOwn(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetPending(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.ReservationRM, error)
	ListPendingQueue(ctx context.Context) ([]*readmodel.ReservationRM, error)
	ListConfirmed(ctx context.Context) ([]*readmodel.ReservationRM, error)
	ListWorkerSchedule(ctx context.Context, workerID uuid.UUID) ([]*readmodel.ReservationRM, error)
}

type reservationUseCaseImpl struct {
	uow        shared.UnitOfWork
	venueReads VenueReadStore
	reads      ReservationReadStore
	factory    *reservation.Factory
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	venueReads VenueReadStore,
	reads ReservationReadStore,
	factory *reservation.Factory,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:        uow,
		venueReads: venueReads,
		reads:      reads,
		factory:    factory,
	}
}

// Submit validates the request against the venue, then checks the slot and
// inserts the pending record inside one transaction. The per-slot advisory
// lock plus the partial unique index close the race between two concurrent
// submissions for the same (venue, date).
func (r *reservationUseCaseImpl) Submit(ctx context.Context, params SubmitReservationParams, userID uuid.UUID) (*readmodel.ReservationRM, error) {
	venueEntity, err := r.loadVenue(ctx, params.VenueID)
	if err != nil {
		return nil, err
	}

	spec, err := buildSubmitSpec(params)
	if err != nil {
		return nil, err
	}

	entity, err := r.factory.NewPending(venueEntity, userID, spec)
	if err != nil {
		return nil, err
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().LockSlot(ctx, entity.VenueID(), entity.Date()); err != nil {
			return err
		}

		taken, err := tx.Reservations().SlotTaken(ctx, entity.VenueID(), entity.Date(), uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		reservationID, err = tx.Reservations().InsertPending(ctx, entity)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.reads.FindPendingByID(ctx, reservationID)
}

// Confirm moves a fully assigned pending reservation into the confirmed
// collection. Copy and delete happen in the same transaction, so the
// record can never end up in both collections or neither.
func (r *reservationUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := r.lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		workers, err := tx.Assignments().WorkerIDsFor(ctx, id)
		if err != nil {
			return err
		}
		if len(workers) != requiredWorkers {
			return ErrIncompleteAssignment
		}

		venueID, err := venue.NewID(snap.VenueID)
		if err != nil {
			return err
		}
		if err := tx.Reservations().LockSlot(ctx, venueID, snap.Date); err != nil {
			return err
		}

		if err := tx.Reservations().InsertConfirmedFrom(ctx, snap); err != nil {
			return err
		}
		return tx.Reservations().DeletePending(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound),
			errors.Is(err, ErrAlreadyDecided),
			errors.Is(err, ErrIncompleteAssignment):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return r.reads.FindConfirmedByID(ctx, id)
}

// Deny marks the pending record denied in place and releases its workers.
// The row stays in the pending collection as an inert audit record.
func (r *reservationUseCaseImpl) Deny(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := r.lockPending(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Reservations().MarkDenied(ctx, id); err != nil {
			return err
		}
		return tx.Assignments().Clear(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrAlreadyDecided) {
			return err
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, fromConfirmed bool) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if fromConfirmed {
			err = tx.Reservations().DeleteConfirmed(ctx, id)
		} else {
			err = tx.Reservations().DeletePending(ctx, id)
		}
		if err != nil {
			return err
		}
		return tx.Assignments().Clear(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationUseCaseImpl) CancelOwn(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().PendingByID(ctx, id)
		if err != nil {
			return err
		}
		if snap.UserID != userID {
			return ErrNotReservationOwner
		}
		if err := tx.Reservations().DeletePending(ctx, id); err != nil {
			return err
		}
		return tx.Assignments().Clear(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrNotReservationOwner) {
			return err
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationUseCaseImpl) GetPending(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := r.reads.FindPendingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reads.ListPendingByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) ListPendingQueue(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reads.ListPendingQueue(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) ListConfirmed(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reads.ListConfirmed(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) ListWorkerSchedule(ctx context.Context, workerID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reads.ListConfirmedByWorker(ctx, workerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) loadVenue(ctx context.Context, id string) (*venue.Venue, error) {
	rm, err := r.venueReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	venueID, err := venue.NewID(rm.ID)
	if err != nil {
		return nil, err
	}
	name, err := venue.NewName(rm.Name)
	if err != nil {
		return nil, err
	}
	return venue.ReconstructVenue(venueID, name, rm.Location, rm.Capacity, rm.PriceCents, rm.Features, rm.CreatedAt, rm.UpdatedAt), nil
}

// lockPending loads the pending row under lock and rejects records that
// were already denied.
func (r *reservationUseCaseImpl) lockPending(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.PendingSnapshot, error) {
	snap, err := tx.Reservations().PendingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if snap.Status != reservation.StatusPending.String() {
		return nil, ErrAlreadyDecided
	}
	return snap, nil
}

func buildSubmitSpec(params SubmitReservationParams) (reservation.SubmitSpec, error) {
	date, err := reservation.ParseDate(params.Date)
	if err != nil {
		return reservation.SubmitSpec{}, err
	}

	method, err := reservation.NewPaymentMethod(params.PaymentMethod)
	if err != nil {
		return reservation.SubmitSpec{}, err
	}

	spec := reservation.SubmitSpec{
		PartyName:     params.PartyName,
		Attendees:     params.Attendees,
		Date:          date,
		PaymentMethod: method,
	}

	if method == reservation.PaymentDebit {
		card, err := reservation.NewDebitCard(params.CardNumber, params.CardExpiration, params.CardCVV)
		if err != nil {
			return reservation.SubmitSpec{}, err
		}
		spec.Card = &card
	}

	return spec, nil
}
