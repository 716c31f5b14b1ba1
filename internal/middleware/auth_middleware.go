package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/auth"
)

// identityKey is the gin context key the verified identity is stored under.
const identityKey = "identity"

// unauthorizedBody is the single response sent for every authentication
// failure; the failure reason is never surfaced to the client.
var unauthorizedBody = gin.H{"message": "unauthorized access"}

// AuthMiddleware is the gin middleware gate for bearer-token authentication.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier auth.TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if verifier == nil {
		panic("AuthMiddleware requires a non-nil TokenVerifier")
	}
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// RequireAuth verifies the Authorization header and binds the resulting
// identity into the request context, or short-circuits with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			if m.logger != nil {
				m.logger.Warn("token verification failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// IdentityFrom retrieves the verified identity bound by RequireAuth.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
