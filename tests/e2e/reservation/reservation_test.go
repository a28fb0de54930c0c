//go:build e2e

package reservation_test

import (
	"context"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"venue-scheduler/internal/handler/dto/request"
	"venue-scheduler/internal/handler/dto/response"
	"venue-scheduler/tests/common/authtest"
	"venue-scheduler/tests/common/dbtest"
	"venue-scheduler/tests/common/httptest"
	"venue-scheduler/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	pendingURL      = "/api/admin/reservations/pending"
	confirmedURL    = "/api/admin/reservations/confirmed"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) submitRequest(venueID, date string) request.SubmitReservationRequest {
	return request.SubmitReservationRequest{
		VenueID:       venueID,
		PartyName:     "Sato wedding party",
		Attendees:     60,
		Date:          date,
		PaymentMethod: "cash",
	}
}

func (s *ReservationSuite) workerIDByEmail(email string) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(), "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	require.NoError(s.T(), err)
	return id
}

func (s *ReservationSuite) submitAs(token, venueID, date string) response.ReservationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.submitRequest(venueID, date), token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var created response.ReservationResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &created))
	return created
}

func (s *ReservationSuite) assignPair(token string, reservationID uuid.UUID, workers []uuid.UUID) *stdhttptest.ResponseRecorder {
	body := request.AssignWorkersRequest{WorkerIDs: workers}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
		"/api/admin/reservations/"+reservationID.String()+"/workers", body, token)
}

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("submit, staff two workers, confirm", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		created := s.submitAs(memberToken, "grand-hall", "2026-10-12")
		require.Equal(t, "pending", created.Status)
		require.Equal(t, int64(250000), created.PriceCents)

		// The request shows up in the admin review queue.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var queue []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &queue))
		require.Len(t, queue, 1)

		// Confirming before staffing is rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+created.ID.String()+"/confirm", nil, adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		workers := []uuid.UUID{s.workerIDByEmail("worker1@example.com"), s.workerIDByEmail("worker2@example.com")}
		w = s.assignPair(adminToken, created.ID, workers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+created.ID.String()+"/confirm", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)
		require.Len(t, confirmed.AssignedWorkers, 2)

		// The pending queue is empty and the confirmed schedule holds the record.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		queue = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &queue))
		require.Empty(t, queue)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, confirmedURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var schedule []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &schedule))
		require.Len(t, schedule, 1)
	})

	s.Run("a slot accepts only one active request", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", false, false)

		s.submitAs(memberToken, "grand-hall", "2026-10-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			s.submitRequest("grand-hall", "2026-10-12"), otherToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Another date on the same venue is fine.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			s.submitRequest("grand-hall", "2026-10-13"), otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("denied requests free the slot and their workers", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		created := s.submitAs(memberToken, "annex", "2026-11-01")

		workers := []uuid.UUID{s.workerIDByEmail("worker1@example.com"), s.workerIDByEmail("worker2@example.com")}
		w := s.assignPair(adminToken, created.ID, workers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+created.ID.String()+"/deny", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Denying twice is rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+created.ID.String()+"/deny", nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// The slot is open again.
		resubmitted := s.submitAs(memberToken, "annex", "2026-11-01")
		require.NotEqual(t, created.ID, resubmitted.ID)

		// The workers are free to staff the new request on the same date.
		w = s.assignPair(adminToken, resubmitted.ID, workers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("worker committed elsewhere on the date blocks the whole pair", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		first := s.submitAs(memberToken, "grand-hall", "2026-12-05")
		second := s.submitAs(memberToken, "annex", "2026-12-05")

		worker1 := s.workerIDByEmail("worker1@example.com")
		worker2 := s.workerIDByEmail("worker2@example.com")
		worker3 := s.workerIDByEmail("worker3@example.com")

		w := s.assignPair(adminToken, first.ID, []uuid.UUID{worker1, worker2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.assignPair(adminToken, second.ID, []uuid.UUID{worker1, worker3})
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "Worker One")

		// Worker Two is also taken by the first reservation on that date.
		w = s.assignPair(adminToken, second.ID, []uuid.UUID{worker2, worker3})
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "Worker Two")

		// A pair of free workers goes through.
		worker4 := dbtest.CreateTestUser(t, s.DB, "worker4@example.com", "Worker Four", false, true)
		w = s.assignPair(adminToken, second.ID, []uuid.UUID{worker3, worker4})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("owner can cancel a pending request", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", false, false)

		created := s.submitAs(memberToken, "annex", "2026-11-20")

		// Someone else cannot cancel it.
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.ID.String(), nil, memberToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The slot is open again.
		s.submitAs(memberToken, "annex", "2026-11-20")
	})
}

func (s *ReservationSuite) TestWorkerSchedule() {
	s.Run("workers see their confirmed commitments only", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		workerToken := authtest.LoginUser(t, s.Router, "worker1@example.com", "password123")

		created := s.submitAs(memberToken, "grand-hall", "2026-10-12")

		workers := []uuid.UUID{s.workerIDByEmail("worker1@example.com"), s.workerIDByEmail("worker2@example.com")}
		w := s.assignPair(adminToken, created.ID, workers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Nothing shows up before confirmation.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/workers/me/schedule", nil, workerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var schedule []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &schedule))
		require.Empty(t, schedule)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+created.ID.String()+"/confirm", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/workers/me/schedule", nil, workerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		schedule = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &schedule))
		require.Len(t, schedule, 1)

		// Members without the worker flag are rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/workers/me/schedule", nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
