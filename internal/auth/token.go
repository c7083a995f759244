package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec issues and verifies signed, time-bound bearer tokens. The
// tokens are stateless: expiry is the only invalidation mechanism.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject identifies the user and which
// expires after the configured TTL.
func (c *TokenCodec) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})
	return token.SignedString(c.secret)
}

// Verify returns the subject of a valid token. Expired, tampered,
// malformed, or wrongly signed tokens all report ok=false; callers
// treat every failure identically.
func (c *TokenCodec) Verify(tokenString string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// TTL exposes the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}
