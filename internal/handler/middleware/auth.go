package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"venue-scheduler/internal/handler/httperr"
	"venue-scheduler/internal/pkg/cookie"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken    = errs.New("access token missing")
	errIdentityMissing = errs.New("identity not set on context")
	errFlagDenied      = errs.New("caller lacks required role flag")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Set("jwt_claims", map[string]any{
			"user_id":   identity.UserID.String(),
			"is_admin":  identity.IsAdmin,
			"is_worker": identity.IsWorker,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireFlag(func(id usecase.Identity) bool { return id.IsAdmin })
}

// RequireWorker must run after RequireAuth. Admins pass as well so they
// can inspect worker schedules.
func (m *AuthMiddleware) RequireWorker() gin.HandlerFunc {
	return m.requireFlag(func(id usecase.Identity) bool { return id.IsWorker || id.IsAdmin })
}

func (m *AuthMiddleware) requireFlag(allowed func(usecase.Identity) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.Abort(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
			return
		}

		if !allowed(identity) {
			httperr.Abort(c, http.StatusForbidden, errFlagDenied, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	return token
}

func GetIdentity(c *gin.Context) (usecase.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return usecase.Identity{}, false
	}

	identity, ok := v.(usecase.Identity)
	return identity, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID, true
}
