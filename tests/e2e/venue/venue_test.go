//go:build e2e

package venue_test

import (
	"net/http"
	"testing"

	"venue-scheduler/internal/handler/dto/request"
	"venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/tests/common/authtest"
	"venue-scheduler/tests/common/httptest"
	"venue-scheduler/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const venuesURL = "/api/venues"

type VenueSuite struct {
	e2e.SharedSuite
}

func TestVenueSuite(t *testing.T) {
	suite.Run(t, new(VenueSuite))
}

func (s *VenueSuite) createRequest(id string) request.CreateVenueRequest {
	return request.CreateVenueRequest{
		ID:         id,
		Name:       "Riverside Terrace",
		Location:   "8 Quay Road",
		Capacity:   80,
		PriceCents: 180_000,
		Features:   "open-air deck",
	}
}

func (s *VenueSuite) TestVenueManagement() {
	s.Run("admin creates, updates and deletes a venue", func() {
		adminToken := authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, venuesURL, s.createRequest("riverside-terrace"), adminToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var created response.VenueResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &created))
		require.Equal(s.T(), "riverside-terrace", created.ID)
		require.Equal(s.T(), int64(180_000), created.PriceCents)

		update := request.UpdateVenueRequest{
			Name:       "Riverside Terrace",
			Location:   "8 Quay Road",
			Capacity:   95,
			PriceCents: 210_000,
			Features:   "open-air deck, bar",
		}
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, venuesURL+"/riverside-terrace", update, adminToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var updated response.VenueResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &updated))
		require.Equal(s.T(), int32(95), updated.Capacity)
		require.Equal(s.T(), int64(210_000), updated.PriceCents)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, venuesURL+"/riverside-terrace", nil, adminToken)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, venuesURL+"/riverside-terrace", nil, adminToken)
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("duplicate venue id is rejected", func() {
		adminToken := authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, venuesURL, s.createRequest("grand-hall"), adminToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("member cannot manage venues but can browse them", func() {
		memberToken := authtest.LoginUser(s.T(), s.Router, "member@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, venuesURL, s.createRequest("members-hall"), memberToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, venuesURL, nil, memberToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var venues []*response.VenueResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &venues))
		require.Len(s.T(), venues, 2)
	})

	s.Run("venue with reservations cannot be deleted", func() {
		adminToken := authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")
		memberToken := authtest.LoginUser(s.T(), s.Router, "member@example.com", "password123")

		submit := request.SubmitReservationRequest{
			VenueID:       "grand-hall",
			PartyName:     "Sato wedding party",
			Attendees:     60,
			Date:          "2026-10-12",
			PaymentMethod: "cash",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", submit, memberToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, venuesURL+"/grand-hall", nil, adminToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})
}
