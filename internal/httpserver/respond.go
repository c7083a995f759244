package httpserver

import (
	"context"
	"errors"
	"net/http"

	"sneakerstore/internal/domain"
	usersvc "sneakerstore/internal/service/user"

	"github.com/gin-gonic/gin"
)

// respondError maps domain failures to HTTP statuses. Anything not in
// the taxonomy becomes a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"detail": "already exists"})
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
	case errors.Is(err, usersvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
