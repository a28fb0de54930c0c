package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "venue-scheduler/internal/handler/dto/request"
	resdto "venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler covers the review queue: confirming, denying and staffing
// pending reservation requests, plus member role management.
type AdminHandler struct {
	reservationUseCase usecase.ReservationUseCase
	assignmentUseCase  usecase.AssignmentUseCase
	userUseCase        usecase.UserUseCase
}

func NewAdminHandler(
	reservationUseCase usecase.ReservationUseCase,
	assignmentUseCase usecase.AssignmentUseCase,
	userUseCase usecase.UserUseCase,
) *AdminHandler {
	return &AdminHandler{
		reservationUseCase: reservationUseCase,
		assignmentUseCase:  assignmentUseCase,
		userUseCase:        userUseCase,
	}
}

// @Summary List pending reservation requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations/pending [get]
func (h *AdminHandler) ListPending(c *gin.Context) {
	rms, err := h.reservationUseCase.ListPendingQueue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(rms))
}

// @Summary List confirmed reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations/confirmed [get]
func (h *AdminHandler) ListConfirmed(c *gin.Context) {
	rms, err := h.reservationUseCase.ListConfirmed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(rms))
}

// @Summary Assign workers to a pending reservation
// @Description Replace the worker pair staffed on a pending reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AssignWorkersRequest true "Worker pair"
// @Success 200 {array} resdto.AssignedWorkerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/workers [put]
func (h *AdminHandler) AssignWorkers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	var req reqdto.AssignWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	workers, err := h.assignmentUseCase.Assign(c.Request.Context(), id, req.WorkerIDs)
	if err != nil {
		var conflict *usecase.WorkerConflictError
		switch {
		case errors.As(err, &conflict):
			names := make([]string, len(conflict.Workers))
			for i, w := range conflict.Workers {
				names[i] = w.Name
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Workers already committed on this date",
				"workers": names,
			})
		case errors.Is(err, usecase.ErrWorkerConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workers already committed on this date",
			})
		case errors.Is(err, usecase.ErrInvalidAssignmentSize):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Exactly two distinct workers required",
			})
		case errors.Is(err, usecase.ErrWorkerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Candidate is not a registered worker",
			})
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation has already been decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	assigned := make([]resdto.AssignedWorkerResponse, len(workers))
	for i, w := range workers {
		assigned[i] = resdto.AssignedWorkerResponse{ID: w.ID, Name: w.Name}
	}
	c.JSON(http.StatusOK, assigned)
}

// @Summary Clear worker assignments
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id}/workers [delete]
func (h *AdminHandler) ClearWorkers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	if err := h.assignmentUseCase.Clear(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Confirm a pending reservation
// @Description Move a fully staffed pending reservation to the confirmed schedule
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/reservations/{id}/confirm [post]
func (h *AdminHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	rm, err := h.reservationUseCase.Confirm(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrIncompleteAssignment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Exactly two workers must be assigned before confirming",
			})
		case errors.Is(err, usecase.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue is already reserved on this date",
			})
		case errors.Is(err, usecase.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation has already been decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary Deny a pending reservation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/deny [post]
func (h *AdminHandler) Deny(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	err = h.reservationUseCase.Deny(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation has already been decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a reservation record
// @Description Remove a reservation from the pending or confirmed collection
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param collection query string false "pending or confirmed" default(pending)
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	fromConfirmed := c.DefaultQuery("collection", "pending") == "confirmed"

	if err := h.reservationUseCase.Delete(c.Request.Context(), id, fromConfirmed); err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List registered workers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WorkerResponse
// @Router /admin/workers [get]
func (h *AdminHandler) ListWorkers(c *gin.Context) {
	workers, err := h.userUseCase.ListWorkers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkerList(workers))
}

// @Summary List members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MemberResponse
// @Router /admin/members [get]
func (h *AdminHandler) ListMembers(c *gin.Context) {
	members, err := h.userUseCase.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberList(members))
}

// @Summary Promote a member to admin
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/members/{id}/admin [post]
func (h *AdminHandler) PromoteToAdmin(c *gin.Context) {
	h.promote(c, h.userUseCase.PromoteToAdmin)
}

// @Summary Promote a member to worker
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/members/{id}/worker [post]
func (h *AdminHandler) PromoteToWorker(c *gin.Context) {
	h.promote(c, h.userUseCase.PromoteToWorker)
}

func (h *AdminHandler) promote(c *gin.Context, fn func(ctx context.Context, userID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
