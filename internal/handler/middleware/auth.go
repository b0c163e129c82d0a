package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/httperr"
	"fleetdesk/internal/usecase"
	"fleetdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	errTokenRequired      = errors.New("access token required")
	errInsufficientRole   = errors.New("insufficient role")
	errSessionUnavailable = errors.New("session missing from context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionKey = "session"
	ctxClaimsKey  = "jwt_claims"
)

var roleHierarchy = map[user.Role]int{
	user.RoleViewer:   1,
	user.RoleOperator: 2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth verifies the bearer token and stores the resulting session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errSessionUnavailable, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(session.Role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// SetSession is also used by handler tests to stand in for RequireAuth.
func SetSession(c *gin.Context, session shared.Session) {
	c.Set(ctxSessionKey, session)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": session.UserID.String(),
		"role":    session.Role.String(),
	})
}

func GetSession(c *gin.Context) (shared.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return shared.Session{}, false
	}
	session, ok := v.(shared.Session)
	return session, ok
}
