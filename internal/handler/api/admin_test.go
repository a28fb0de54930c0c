//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venue-scheduler/internal/handler/api"
	resdto "venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/tests/common/builder"
	"venue-scheduler/tests/common/httptest"
	usecasemock "venue-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *usecasemock.MockReservationUseCase
	mockAssignment  *usecasemock.MockAssignmentUseCase
	mockUser        *usecasemock.MockUserUseCase
	handler         *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.mockAssignment = usecasemock.NewMockAssignmentUseCase(s.mockCtrl)
	s.mockUser = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockReservation, s.mockAssignment, s.mockUser)

	// Stand-in admin authentication middleware
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("identity", usecase.Identity{UserID: uuid.New(), IsAdmin: true})
		c.Next()
	}

	admin := s.router.Group("/admin", adminMiddleware)
	admin.GET("/reservations/pending", s.handler.ListPending)
	admin.GET("/reservations/confirmed", s.handler.ListConfirmed)
	admin.POST("/reservations/:id/confirm", s.handler.Confirm)
	admin.POST("/reservations/:id/deny", s.handler.Deny)
	admin.DELETE("/reservations/:id", s.handler.DeleteReservation)
	admin.PUT("/reservations/:id/workers", s.handler.AssignWorkers)
	admin.DELETE("/reservations/:id/workers", s.handler.ClearWorkers)
	admin.GET("/workers", s.handler.ListWorkers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAssignWorkers() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/workers"
	workerIDs := []uuid.UUID{uuid.New(), uuid.New()}
	body := map[string]any{"worker_ids": []string{workerIDs[0].String(), workerIDs[1].String()}}

	s.Run("success: returns the assigned pair", func() {
		assigned := []readmodel.WorkerRM{
			{ID: workerIDs[0], Name: "Tanaka"},
			{ID: workerIDs[1], Name: "Suzuki"},
		}
		s.mockAssignment.EXPECT().Assign(gomock.Any(), id, workerIDs).Return(assigned, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")

		var res []resdto.AssignedWorkerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("Tanaka", res[0].Name)
	})

	s.Run("error: 409 with conflicting worker names", func() {
		conflict := &usecase.WorkerConflictError{
			Workers: []readmodel.WorkerRM{{ID: workerIDs[1], Name: "Suzuki"}},
		}
		s.mockAssignment.EXPECT().Assign(gomock.Any(), id, workerIDs).Return(nil, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "Suzuki")
	})

	s.Run("error: 400 when the pair is not two distinct workers", func() {
		s.mockAssignment.EXPECT().Assign(gomock.Any(), id, workerIDs).Return(nil, usecase.ErrInvalidAssignmentSize)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "two distinct workers")
	})

	s.Run("error: 400 when request carries one worker only", func() {
		one := map[string]any{"worker_ids": []string{workerIDs[0].String()}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, one, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockAssignment.EXPECT().Assign(gomock.Any(), id, workerIDs).Return(nil, usecase.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *AdminHandlerTestSuite) TestConfirm() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/confirm"

	s.Run("success: returns the confirmed reservation", func() {
		rm := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = id
			b.Status = "confirmed"
		}).BuildReadModel()
		s.mockReservation.EXPECT().Confirm(gomock.Any(), id).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("confirmed", res.Status)
	})

	s.Run("error: 422 when staffing is incomplete", func() {
		s.mockReservation.EXPECT().Confirm(gomock.Any(), id).Return(nil, usecase.ErrIncompleteAssignment)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "two workers")
	})

	s.Run("error: 409 when the slot was taken meanwhile", func() {
		s.mockReservation.EXPECT().Confirm(gomock.Any(), id).Return(nil, usecase.ErrSlotTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reserved")
	})
}

func (s *AdminHandlerTestSuite) TestDeny() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/deny"

	s.Run("success: returns 204 No Content", func() {
		s.mockReservation.EXPECT().Deny(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already decided", func() {
		s.mockReservation.EXPECT().Deny(gomock.Any(), id).Return(usecase.ErrAlreadyDecided)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been decided")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()

	s.Run("deletes from the pending collection by default", func() {
		s.mockReservation.EXPECT().Delete(gomock.Any(), id, false).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("deletes from the confirmed collection when requested", func() {
		s.mockReservation.EXPECT().Delete(gomock.Any(), id, true).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/"+id.String()+"?collection=confirmed", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestListWorkers() {
	s.Run("success: returns registered workers", func() {
		workers := []*readmodel.WorkerRM{
			{ID: uuid.New(), Name: "Tanaka"},
			{ID: uuid.New(), Name: "Suzuki"},
		}
		s.mockUser.EXPECT().ListWorkers(gomock.Any()).Return(workers, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/workers", nil, "token")

		var res []resdto.WorkerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
	})
}
