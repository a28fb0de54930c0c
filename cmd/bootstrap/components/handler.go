package components

import (
	"venue-scheduler/internal/handler"
	"venue-scheduler/internal/handler/api"
	"venue-scheduler/internal/handler/middleware"
	"venue-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewVenueHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewWorkerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
