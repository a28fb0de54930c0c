//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"venue-scheduler/internal/domain/reservation"
	"venue-scheduler/internal/handler/api"
	reqdto "venue-scheduler/internal/handler/dto/request"
	resdto "venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/tests/common/builder"
	"venue-scheduler/tests/common/httptest"
	"venue-scheduler/tests/common/testutil"
	usecasemock "venue-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockReservationUseCase
	handler  *api.ReservationHandler
	userID   uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUC)
	s.userID = uuid.New()

	// Stand-in authentication middleware
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("identity", usecase.Identity{UserID: s.userID})
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Submit)
	s.router.GET("/reservations", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func submitRequestBody() reqdto.SubmitReservationRequest {
	return reqdto.SubmitReservationRequest{
		VenueID:       "grand-hall",
		PartyName:     "Sato wedding party",
		Attendees:     60,
		Date:          "2026-10-12",
		PaymentMethod: "cash",
	}
}

func (s *ReservationHandlerTestSuite) TestSubmit() {
	url := "/reservations"

	s.Run("success: returns 201 Created for valid request", func() {
		returnRM := builder.NewReservationBuilder().BuildReadModel()
		s.mockUC.EXPECT().Submit(gomock.Any(), gomock.Any(), s.userID).Return(returnRM, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitRequestBody(), "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnRM.ID, body.ID)
		s.Equal(returnRM.VenueID, body.VenueID)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitRequestBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: venue_id", mutate: testutil.Field("venue_id", nil)},
			{name: "missing field: party_name", mutate: testutil.Field("party_name", nil)},
			{name: "missing field: date", mutate: testutil.Field("date", nil)},
			{name: "attendees zero", mutate: testutil.Field("attendees", 0)},
			{name: "party_name too long", mutate: testutil.Field("party_name", strings.Repeat("a", 256))},
			{name: "unknown payment method", mutate: testutil.Field("payment_method", "credit")},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), submitRequestBody(), c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 when venue does not exist", func() {
		s.mockUC.EXPECT().Submit(gomock.Any(), gomock.Any(), s.userID).Return(nil, usecase.ErrVenueNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitRequestBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})

	s.Run("error: 409 when slot already reserved", func() {
		s.mockUC.EXPECT().Submit(gomock.Any(), gomock.Any(), s.userID).Return(nil, usecase.ErrSlotTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitRequestBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reserved")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockUC.EXPECT().Submit(gomock.Any(), gomock.Any(), s.userID).Return(nil, reservation.ErrCapacityExceeded)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitRequestBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns own reservations", func() {
		rm := builder.NewReservationBuilder().BuildReadModel()
		s.mockUC.EXPECT().ListMine(gomock.Any(), s.userID).
			Return([]*readmodel.ReservationRM{rm}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(rm.ID, body[0].ID)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockUC.EXPECT().ListMine(gomock.Any(), s.userID).
			Return([]*readmodel.ReservationRM{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockUC.EXPECT().CancelOwn(gomock.Any(), id, s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when not the owner", func() {
		id := uuid.New()
		s.mockUC.EXPECT().CancelOwn(gomock.Any(), id, s.userID).Return(usecase.ErrNotReservationOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 409 when already decided", func() {
		id := uuid.New()
		s.mockUC.EXPECT().CancelOwn(gomock.Any(), id, s.userID).Return(usecase.ErrAlreadyDecided)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been decided")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the pending reservation", func() {
		rm := builder.NewReservationBuilder().BuildReadModel()
		s.mockUC.EXPECT().GetPending(gomock.Any(), rm.ID).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+rm.ID.String(), nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rm.ID, body.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUC.EXPECT().GetPending(gomock.Any(), id).Return(nil, usecase.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
