package api

import (
	"errors"
	"net/http"

	"venue-scheduler/internal/domain/venue"
	reqdto "venue-scheduler/internal/handler/dto/request"
	resdto "venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueUseCase usecase.VenueUseCase
}

func NewVenueHandler(venueUseCase usecase.VenueUseCase) *VenueHandler {
	return &VenueHandler{
		venueUseCase: venueUseCase,
	}
}

// @Summary Create venue
// @Description Register a venue under an admin-chosen identifier
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.venueUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVenueAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue identifier already taken",
			})
		case isVenueValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVenueRM(rm))
}

// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Venue"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	var req reqdto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.venueUseCase.Update(c.Request.Context(), req.ToParams(c.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case isVenueValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueRM(rm))
}

// @Summary Delete venue
// @Tags venues
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
	err := h.venueUseCase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, usecase.ErrVenueInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue has reservations and cannot be deleted",
			})
		case isVenueValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
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

// @Summary Get venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	rm, err := h.venueUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueRM(rm))
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	rms, err := h.venueUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueList(rms))
}

func isVenueValidationError(err error) bool {
	return errors.Is(err, venue.ErrInvalidVenueID) ||
		errors.Is(err, venue.ErrVenueIDTooLong) ||
		errors.Is(err, venue.ErrInvalidVenueName) ||
		errors.Is(err, venue.ErrInvalidCapacity) ||
		errors.Is(err, venue.ErrNegativePrice)
}
