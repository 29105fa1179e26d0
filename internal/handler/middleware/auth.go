package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shuttlebook/internal/handler/httperr"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator shared.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator shared.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Set("jwt_claims", map[string]any{
			"user_id": actor.UserID.String(),
			"role":    actor.Role.String(),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
			return
		}

		if !actor.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("admin role required"), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	value, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}

	actor, ok := value.(shared.Actor)
	return actor, ok
}
