package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return out
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		if id == "" || w.Body.String() != id {
			t.Errorf("header %q, body %q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("header = %q", got)
		}
	})
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		wantError   string
	}{
		{"development shows detail", true, "kaboom"},
		{"production hides detail", false, "Algo salió mal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Recovery(tt.development))
			r.GET("/", func(c *gin.Context) { panic(errors.New("kaboom")) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d", w.Code)
			}
			body := decode(t, w.Body.Bytes())
			if body["success"] != false || body["message"] != "Error interno del servidor" || body["error"] != tt.wantError {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(16))
	r.POST("/", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRecorder()
	r.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
	if small.Code != http.StatusOK {
		t.Errorf("small body status = %d", small.Code)
	}

	big := httptest.NewRecorder()
	r.ServeHTTP(big, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	if big.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("big body status = %d", big.Code)
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	if got := testutil.ToFloat64(counter); got != before+2 {
		t.Errorf("counter = %v, want %v", got, before+2)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.Config{}) })

	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	entry := decode(t, bytes.TrimSpace(buf.Bytes()))
	if entry["level"] != "warn" || entry["path"] != "/missing?x=1" || entry["status"] != float64(404) {
		t.Errorf("entry = %v", entry)
	}
	if entry["request_id"] == "" {
		t.Error("request_id missing")
	}
}
