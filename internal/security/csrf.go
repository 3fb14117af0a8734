package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"timeclash/internal/models"
)

// csrfContext separates form tokens from any other MAC made with the same secret
const csrfContext = "timeclash-form:"

// CSRFGenerator issues form tokens bound to a browser session. Tokens are
// an HMAC of the session ID, so a session keeps one token for its lifetime
// and nothing extra is stored server side.
type CSRFGenerator struct {
	secret []byte
}

func NewCSRFGenerator(secret string) *CSRFGenerator {
	return &CSRFGenerator{secret: []byte(secret)}
}

// RandomSecret returns a hex secret for processes started without CSRF_SECRET
func RandomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateToken returns the form token for session
func (g *CSRFGenerator) GenerateToken(session models.BrowserSession) (string, error) {
	if !IsValidSessionID(session.ID) {
		return "", fmt.Errorf("invalid session ID %q", session.ID)
	}
	return hex.EncodeToString(g.sign(session.ID)), nil
}

// ValidateToken reports whether token was issued for session
func (g *CSRFGenerator) ValidateToken(session models.BrowserSession, token string) bool {
	if token == "" || !IsValidSessionID(session.ID) {
		return false
	}
	got, err := hex.DecodeString(token)
	if err != nil {
		return false
	}
	return hmac.Equal(got, g.sign(session.ID))
}

func (g *CSRFGenerator) sign(sessionID string) []byte {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(csrfContext + sessionID))
	return mac.Sum(nil)
}
