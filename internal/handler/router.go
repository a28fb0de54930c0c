package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-scheduler/internal/handler/api"
	"venue-scheduler/internal/handler/middleware"
	"venue-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	venueHandler *api.VenueHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminHandler,
	workerHandler *api.WorkerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, venueHandler, reservationHandler, adminHandler, workerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	venueHandler *api.VenueHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminHandler,
	workerHandler *api.WorkerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		venues := apiGroup.Group("/venues")
		venues.Use(authMiddleware.RequireAuth())
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.Get},
			})

			adminOnly := venues.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: venueHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: venueHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: venueHandler.Delete},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Submit},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations/pending", Handler: adminHandler.ListPending},
				{Method: http.MethodGet, Path: "/reservations/confirmed", Handler: adminHandler.ListConfirmed},
				{Method: http.MethodPost, Path: "/reservations/:id/confirm", Handler: adminHandler.Confirm},
				{Method: http.MethodPost, Path: "/reservations/:id/deny", Handler: adminHandler.Deny},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: adminHandler.DeleteReservation},
				{Method: http.MethodPut, Path: "/reservations/:id/workers", Handler: adminHandler.AssignWorkers},
				{Method: http.MethodDelete, Path: "/reservations/:id/workers", Handler: adminHandler.ClearWorkers},
				{Method: http.MethodGet, Path: "/workers", Handler: adminHandler.ListWorkers},
				{Method: http.MethodGet, Path: "/workers/:id/schedule", Handler: workerHandler.Schedule},
				{Method: http.MethodGet, Path: "/members", Handler: adminHandler.ListMembers},
				{Method: http.MethodPost, Path: "/members/:id/admin", Handler: adminHandler.PromoteToAdmin},
				{Method: http.MethodPost, Path: "/members/:id/worker", Handler: adminHandler.PromoteToWorker},
			})
		}

		workers := apiGroup.Group("/workers")
		workers.Use(authMiddleware.RequireAuth(), authMiddleware.RequireWorker())
		{
			addRoutes(workers, []route{
				{Method: http.MethodGet, Path: "/me/schedule", Handler: workerHandler.MySchedule},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
