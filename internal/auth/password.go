package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 32
	keyLength  = 32
	// MinKDFIterations is the floor for the PBKDF2 work factor; anything
	// lower is silently raised to it.
	MinKDFIterations = 100_000
)

// PasswordHasher derives and verifies salted PBKDF2-SHA256 credentials
// encoded as "salt_hex:digest_hex". The iteration count is fixed at
// construction and shared by Hash and Verify.
type PasswordHasher struct {
	iterations int
}

func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations < MinKDFIterations {
		iterations = MinKDFIterations
	}
	return &PasswordHasher{iterations: iterations}
}

// Hash generates a fresh random salt and returns the encoded credential.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest), nil
}

// Verify recomputes the digest for password against the encoded
// credential. Any malformed encoding yields false; the error channel is
// deliberately collapsed into the boolean so callers cannot distinguish
// a wrong password from a corrupt hash.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	salt, stored, ok := decodeCredential(encoded)
	if !ok {
		return false
	}
	digest := pbkdf2.Key([]byte(password), salt, h.iterations, len(stored), sha256.New)
	return subtle.ConstantTimeCompare(digest, stored) == 1
}

func decodeCredential(encoded string) (salt, digest []byte, ok bool) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 2 {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}
	digest, err = hex.DecodeString(parts[1])
	if err != nil || len(digest) == 0 {
		return nil, nil, false
	}
	return salt, digest, true
}
