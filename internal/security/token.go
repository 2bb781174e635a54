package security

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateStateToken creates an opaque UUID token, used as the OAuth
// state parameter and for request correlation ids
func GenerateStateToken() string {
	return uuid.New().String()
}

// GenerateSecureToken generates a cryptographically secure random hex
// token of the given byte length
func GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
