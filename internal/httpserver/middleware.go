package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"sneakerstore/internal/domain"
	usersvc "sneakerstore/internal/service/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userContextKey  = "currentUser"
	requestIDHeader = "X-Request-Id"
)

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the client.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// authMiddleware resolves the bearer token to a user and aborts with
// 401 when the token is missing or invalid, or 404 when the token is
// valid but its subject no longer exists.
func authMiddleware(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		u, err := users.ResolveToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, usersvc.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			case errors.Is(err, domain.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			default:
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"detail": "service unavailable"})
			}
			return
		}

		c.Set(userContextKey, u)
		c.Next()
	}
}

// currentUser returns the user stored by authMiddleware. Handlers behind
// the middleware can rely on it being present.
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
