package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	log := &mockLogger{}
	handler := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest("GET", "/panel", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Len(t, log.messages, 2)
	assert.Equal(t, "request started", log.messages[0])
	assert.Equal(t, "request completed", log.messages[1])
}

func TestLoggingExcludedPath(t *testing.T) {
	log := &mockLogger{}
	handler := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, 200, rec.Code)
	}

	assert.Empty(t, log.messages)
}

func TestLoggingCustomConfig(t *testing.T) {
	log := &mockLogger{}
	config := LoggingConfig{
		ExcludePaths: []string{"/skip"},
	}

	handler := LoggingWithConfig(log, config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/skip", nil))
	assert.Empty(t, log.messages)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Len(t, log.messages, 2)
}

func TestCaptureHeadersRedaction(t *testing.T) {
	h := http.Header{}
	h.Set("Accept", "text/html")
	h.Set("Authorization", "Bearer secret-token")

	sensitive := map[string]bool{"Authorization": true}

	got := captureHeaders(h, sensitive)

	assert.Equal(t, "text/html", got["Accept"])
	assert.Equal(t, "[REDACTED]", got["Authorization"])
	assert.NotContains(t, got["Authorization"], "secret")
}
