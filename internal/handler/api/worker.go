package api

import (
	"net/http"

	resdto "venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/internal/handler/middleware"
	"venue-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkerHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewWorkerHandler(reservationUseCase usecase.ReservationUseCase) *WorkerHandler {
	return &WorkerHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Own confirmed schedule
// @Description Confirmed reservations the authenticated worker is staffed on
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /workers/me/schedule [get]
func (h *WorkerHandler) MySchedule(c *gin.Context) {
	workerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.schedule(c, workerID)
}

// @Summary A worker's confirmed schedule
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Success 200 {array} resdto.ReservationResponse
// @Router /workers/{id}/schedule [get]
func (h *WorkerHandler) Schedule(c *gin.Context) {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid worker ID",
		})
		return
	}

	h.schedule(c, workerID)
}

func (h *WorkerHandler) schedule(c *gin.Context, workerID uuid.UUID) {
	rms, err := h.reservationUseCase.ListWorkerSchedule(c.Request.Context(), workerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(rms))
}
