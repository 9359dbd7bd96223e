package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextUserKey is where requireAuth stores the resolved local user ID.
const contextUserKey = "user_id"

// Identity is the verified external identity carried by a bearer token.
type Identity struct {
	ExternalID string
	Email      string
}

// TokenVerifier validates bearer tokens against the identity provider.
// Implementations must return an error for expired or revoked tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// requireAuth verifies the bearer token and resolves the local user,
// creating it on first sight. A user whose user.created webhook has not
// arrived yet is created here; the webhook path tolerates the race.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		identity, err := s.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		u, err := s.users.EnsureUser(c.Request.Context(), identity.ExternalID, identity.Email)
		if err != nil {
			slog.Error("Failed to resolve user from token", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(contextUserKey, u.ID)
		c.Next()
	}
}

// currentUserID returns the user resolved by requireAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(contextUserKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
