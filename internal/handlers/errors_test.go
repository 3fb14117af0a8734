package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", "", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}

	body := strings.TrimSpace(recorder.Body.String())
	if body != "Teapot" {
		t.Fatalf("expected body 'Teapot', got %q", body)
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, ErrInternalServerError, "Error rendering page", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Error rendering page") {
		t.Fatalf("expected log to include log message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestRespondWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithJSON(recorder, 201, map[string]interface{}{"ok": true})

	if recorder.Code != 201 {
		t.Fatalf("expected status 201, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	var body map[string]bool
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil || !body["ok"] {
		t.Fatalf("unexpected body %q (%v)", recorder.Body.String(), err)
	}
}

func TestWantsJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/practice/answer", nil)
	if wantsJSON(r) {
		t.Error("plain form post should not want JSON")
	}
	r.Header.Set("Accept", "application/json, text/plain")
	if !wantsJSON(r) {
		t.Error("Accept: application/json should want JSON")
	}
}
