package security

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// GenerateSessionID creates a new UUID identifying one browser's practice session
func GenerateSessionID() string {
	return uuid.New().String()
}

// IsValidSessionID reports whether a cookie value could have come from GenerateSessionID
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsSecureRequest determines if the request is over HTTPS, directly or behind a proxy
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if r.Header.Get("X-Forwarded-Proto") == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// CreateSessionCookie creates the session cookie.
// Secure is set only when the request arrived over HTTPS.
func CreateSessionCookie(r *http.Request, name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
