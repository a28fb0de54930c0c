package usecase

import (
	"context"
	"errors"

	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"
)

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrVenueAlreadyExists = errors.New("venue identifier already taken")
	ErrVenueInUse         = errors.New("venue has reservations")
)

type VenueReadStore interface {
	FindByID(ctx context.Context, id string) (*readmodel.VenueRM, error)
	List(ctx context.Context) ([]*readmodel.VenueRM, error)
}

type CreateVenueParams struct {
	ID         string
	Name       string
	Location   string
	Capacity   int32
	PriceCents int64
	Features   string
}

type VenueUseCase interface {
	Create(ctx context.Context, params CreateVenueParams) (*readmodel.VenueRM, error)
	Update(ctx context.Context, params CreateVenueParams) (*readmodel.VenueRM, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*readmodel.VenueRM, error)
	List(ctx context.Context) ([]*readmodel.VenueRM, error)
}

type venueUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads VenueReadStore
}

func NewVenueUseCase(uow shared.UnitOfWork, reads VenueReadStore) VenueUseCase {
	return &venueUseCaseImpl{
		uow:   uow,
		reads: reads,
	}
}

func (v *venueUseCaseImpl) Create(ctx context.Context, params CreateVenueParams) (*readmodel.VenueRM, error) {
	entity, err := buildVenue(params)
	if err != nil {
		return nil, err
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Venues().Insert(ctx, entity)
	})
	if err != nil {
		// The identifier is admin-chosen free text; a collision must be
		// rejected, never silently overwritten.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrVenueAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return v.reads.FindByID(ctx, entity.ID().Value())
}

func (v *venueUseCaseImpl) Update(ctx context.Context, params CreateVenueParams) (*readmodel.VenueRM, error) {
	entity, err := buildVenue(params)
	if err != nil {
		return nil, err
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Venues().Update(ctx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return v.reads.FindByID(ctx, entity.ID().Value())
}

func (v *venueUseCaseImpl) Delete(ctx context.Context, id string) error {
	venueID, err := venue.NewID(id)
	if err != nil {
		return err
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Venues().Delete(ctx, venueID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrVenueInUse
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (v *venueUseCaseImpl) Get(ctx context.Context, id string) (*readmodel.VenueRM, error) {
	rm, err := v.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (v *venueUseCaseImpl) List(ctx context.Context) ([]*readmodel.VenueRM, error) {
	rms, err := v.reads.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func buildVenue(params CreateVenueParams) (*venue.Venue, error) {
	id, err := venue.NewID(params.ID)
	if err != nil {
		return nil, err
	}
	name, err := venue.NewName(params.Name)
	if err != nil {
		return nil, err
	}
	return venue.NewVenue(id, name, params.Location, params.Capacity, params.PriceCents, params.Features)
}
