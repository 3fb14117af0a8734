package security

import (
	"net/http/httptest"
	"testing"
	"time"

	"timeclash/internal/models"
)

func TestGenerateSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateSessionID()
		if !IsValidSessionID(id) {
			t.Fatalf("generated ID %q does not validate", id)
		}
		if seen[id] {
			t.Fatalf("duplicate session ID %q", id)
		}
		seen[id] = true
	}
	if IsValidSessionID("not-a-session") {
		t.Error("arbitrary text should not validate as a session ID")
	}
}

func TestCreateSessionCookie(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantSecure bool
	}{
		{name: "plain http", wantSecure: false},
		{name: "behind https proxy", header: "https", wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/converter", nil)
			if tt.header != "" {
				r.Header.Set("X-Forwarded-Proto", tt.header)
			}
			c := CreateSessionCookie(r, "sid", "value", time.Now().Add(time.Hour))
			if c.Secure != tt.wantSecure {
				t.Errorf("Secure = %v, want %v", c.Secure, tt.wantSecure)
			}
			if !c.HttpOnly || c.Path != "/" {
				t.Errorf("unexpected cookie flags: %+v", c)
			}
		})
	}
}

func TestCSRFGenerator(t *testing.T) {
	g := NewCSRFGenerator("secret")
	session := models.BrowserSession{ID: GenerateSessionID()}
	otherSession := models.BrowserSession{ID: GenerateSessionID()}

	token, err := g.GenerateToken(session)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if !g.ValidateToken(session, token) {
		t.Error("token should validate for its own session")
	}
	if g.ValidateToken(otherSession, token) {
		t.Error("token should not validate for another session")
	}
	if g.ValidateToken(session, "") || g.ValidateToken(session, "not-hex") {
		t.Error("empty or malformed token should not validate")
	}
	if _, err := g.GenerateToken(models.BrowserSession{}); err == nil {
		t.Error("expected error for empty session ID")
	}
	if _, err := g.GenerateToken(models.BrowserSession{ID: "session-1"}); err == nil {
		t.Error("expected error for a session ID that is not a UUID")
	}

	// Saving a session changes its state and expiry but not its token
	session.Quiz.Score = 3
	session.ExpiresAt = time.Now().Add(time.Hour)
	if !g.ValidateToken(session, token) {
		t.Error("token should survive changes to session state")
	}

	other := NewCSRFGenerator("different")
	if other.ValidateToken(session, token) {
		t.Error("token should not validate under a different secret")
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret() error = %v", err)
	}
	b, _ := RandomSecret()
	if len(a) != 64 || a == b {
		t.Errorf("expected two distinct 64-char secrets, got %q and %q", a, b)
	}
}

func TestRateLimiter(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return current }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests should be allowed")
	}
	if rl.Allow("a") {
		t.Error("third request inside the window should be refused")
	}
	if !rl.Allow("b") {
		t.Error("other clients have their own bucket")
	}

	current = current.Add(time.Minute)
	if !rl.Allow("a") {
		t.Error("bucket should refill after the window")
	}

	current = current.Add(3 * time.Minute)
	if removed := rl.Cleanup(); removed != 2 {
		t.Errorf("Cleanup() removed %d, want 2", removed)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		remote     string
		want       string
	}{
		{name: "forwarded chain behind proxy", trustProxy: true, headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, remote: "1.1.1.1:1234", want: "10.0.0.1"},
		{name: "real ip behind proxy", trustProxy: true, headers: map[string]string{"X-Real-IP": "10.0.0.9"}, remote: "1.1.1.1:1234", want: "10.0.0.9"},
		{name: "no headers behind proxy", trustProxy: true, remote: "192.168.1.5:5555", want: "192.168.1.5"},
		{name: "forwarded header ignored without proxy", headers: map[string]string{"X-Forwarded-For": "10.0.0.1"}, remote: "1.1.1.1:1234", want: "1.1.1.1"},
		{name: "real ip ignored without proxy", headers: map[string]string{"X-Real-IP": "10.0.0.9"}, remote: "1.1.1.1:1234", want: "1.1.1.1"},
		{name: "remote addr", remote: "192.168.1.5:5555", want: "192.168.1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
