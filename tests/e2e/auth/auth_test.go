//go:build e2e

package auth_test

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

const loginURL = "/api/auth/login"

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials return tokens and the user profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
		require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

		var body response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, "member@example.com", body.User.Email)
		require.False(t, body.User.IsAdmin)
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: "wrongpass123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("unknown email is rejected with the same status", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("authenticated user reads own profile", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "admin@example.com")
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestRoleManagement() {
	s.Run("admin grants the worker flag", func() {
		t := s.T()

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		userID, memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "newhire@example.com", false, false)

		// Not a worker yet.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/workers/me/schedule", nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/members/"+userID.String()+"/worker", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The flag is live on the next login.
		memberToken = authtest.LoginUser(t, s.Router, "newhire@example.com", "password123")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/workers/me/schedule", nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("non-admin cannot grant roles", func() {
		t := s.T()

		userID, memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "plain@example.com", false, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/members/"+userID.String()+"/worker", nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
