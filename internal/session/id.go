package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// GenerateID generates a cryptographically secure session ID.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {

	const size = 32 // 256 bits

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Sign produces the cookie value "<id>.<mac>" where mac is an HMAC-SHA256
// of the id keyed by the signing secret. The id alphabet is base64url, so
// "." is a safe separator.
func Sign(id string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return id + "." + sig
}

// Verify checks a signed cookie value and returns the embedded session id.
// A missing or forged signature yields ok=false; callers treat that the
// same as no session at all.
func Verify(value string, secret string) (id string, ok bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", false
	}

	id = value[:i]
	if hmac.Equal([]byte(Sign(id, secret)), []byte(value)) {
		return id, true
	}
	return "", false
}
