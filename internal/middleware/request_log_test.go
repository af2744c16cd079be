package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-activity-log/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type captureLogger struct {
	logger.Logger
	warns  []map[string]any
	debugs []map[string]any
}

func (c *captureLogger) Warn(msg string, fields map[string]any)  { c.warns = append(c.warns, fields) }
func (c *captureLogger) Debug(msg string, fields map[string]any) { c.debugs = append(c.debugs, fields) }

func TestRequestLog_StatusAndRequestID(t *testing.T) {
	log := &captureLogger{Logger: logger.Nop()}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLog(log))
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(log.debugs) != 1 || log.debugs[0]["status"] != http.StatusOK {
		t.Fatalf("expected one debug entry with 200, got %+v", log.debugs)
	}
	if len(log.warns) != 1 || log.warns[0]["status"] != http.StatusInternalServerError {
		t.Fatalf("expected one warn entry with 500, got %+v", log.warns)
	}
	if id, _ := log.debugs[0]["request_id"].(string); id == "" {
		t.Fatalf("expected request id in log fields")
	}
}
