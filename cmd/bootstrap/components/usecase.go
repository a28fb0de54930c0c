package components

import (
	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		reservation.NewFactory,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewVenueUseCase,
		usecase.NewReservationUseCase,
		usecase.NewAssignmentUseCase,
		usecase.NewUserUseCase,
	),
)
