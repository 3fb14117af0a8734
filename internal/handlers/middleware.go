package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"timeclash/internal/models"
	"timeclash/internal/repository"
	"timeclash/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions *repository.SessionRepository
	csrf     *security.CSRFGenerator
	limiter  *security.RateLimiter

	trustProxy bool
}

// NewMiddleware creates a new middleware instance. trustProxy makes the rate
// limiter key clients by X-Forwarded-For / X-Real-IP instead of the socket address.
func NewMiddleware(sessions *repository.SessionRepository, csrf *security.CSRFGenerator, limiter *security.RateLimiter, trustProxy bool) *Middleware {
	return &Middleware{
		sessions:   sessions,
		csrf:       csrf,
		limiter:    limiter,
		trustProxy: trustProxy,
	}
}

// WithSession loads the visitor's session from its cookie. A missing or
// malformed cookie gets a new ID; an unknown or expired one keeps its ID with
// empty state. Nothing is stored until a handler saves the session.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var session models.BrowserSession

		cookie, err := r.Cookie(SessionCookieName)
		switch {
		case err != nil || !security.IsValidSessionID(cookie.Value):
			session = m.sessions.Create()
		default:
			s, err := m.sessions.Get(cookie.Value)
			if err != nil {
				s = m.sessions.Resume(cookie.Value)
			}
			session = s
		}

		http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// CSRFProtect rejects state-changing requests without a token matching the session.
// It must run inside WithSession.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, ErrNoSession, "", nil)
			return
		}

		if err := r.ParseForm(); err != nil {
			respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Error parsing form", err)
			return
		}

		token := r.FormValue(CSRFFormField)
		if token == "" {
			token = r.Header.Get(CSRFHeader)
		}
		if !m.csrf.ValidateToken(session, token) {
			log.Printf("CSRF validation failed for %s %s", r.Method, r.URL.Path)
			respondWithError(w, http.StatusForbidden, ErrInvalidCSRFToken, "", nil)
			return
		}

		next(w, r)
	}
}

// RateLimit refuses clients that exceed the configured request rate
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r, m.trustProxy)
		if !m.limiter.Allow(ip) {
			log.Printf("Rate limit exceeded for %s", ip)
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetSessionFromContext retrieves the visitor's session from the request context
func GetSessionFromContext(ctx context.Context) (models.BrowserSession, bool) {
	session, ok := ctx.Value(SessionContextKey).(models.BrowserSession)
	return session, ok
}
