package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// CodeService generates the human-typed one-time escrow codes and their
// at-rest digests. Codes are numeric so agents can relay them over a
// phone call; only the HMAC-SHA256 digest is persisted, keyed with a
// server-side secret so a leaked store does not expose live codes.
// The digest is deterministic, which keeps the uniqueness scan over
// non-terminal requests cheap.
type CodeService struct {
	secret []byte
	length int
}

// NewCodeService creates a code service. length is the number of digits.
func NewCodeService(secret string, length int) *CodeService {
	if length <= 0 {
		length = 6
	}
	return &CodeService{secret: []byte(secret), length: length}
}

// Generate returns a fresh random numeric code.
func (s *CodeService) Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < s.length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}
	return fmt.Sprintf("%0*d", s.length, n), nil
}

// Digest computes the lowercase hex HMAC-SHA256 of a code.
func (s *CodeService) Digest(code string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a plaintext code against a stored digest.
// Uses constant-time comparison to prevent timing attacks.
func (s *CodeService) Verify(code, digest string) bool {
	return hmac.Equal([]byte(s.Digest(code)), []byte(digest))
}
