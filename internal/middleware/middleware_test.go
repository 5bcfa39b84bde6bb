package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(NewMemoryStore(), tc.lim, time.Minute))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last *httptest.ResponseRecorder
			for i := 0; i < tc.reqs; i++ {
				last = httptest.NewRecorder()
				r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/", nil))
			}
			if last.Code != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last.Code)
			}
			if tc.expect == http.StatusTooManyRequests && last.Header().Get("Retry-After") != "60" {
				t.Fatalf("expected Retry-After=60, got %q", last.Header().Get("Retry-After"))
			}
		})
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func TestRateLimiter_StoreFailureLetsRequestThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(failingStore{}, 1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: code=%d", i, w.Code)
		}
	}
}

func TestMemoryStore_WindowReset(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		n, _ := s.Incr(ctx, "1.2.3.4", time.Minute)
		if n != want {
			t.Fatalf("want %d got %d", want, n)
		}
	}
	if n, _ := s.Incr(ctx, "5.6.7.8", time.Minute); n != 1 {
		t.Fatalf("keys must be counted separately, got %d", n)
	}

	now = now.Add(2 * time.Minute)
	if n, _ := s.Incr(ctx, "1.2.3.4", time.Minute); n != 1 {
		t.Fatalf("counter should reset after the window, got %d", n)
	}
	if _, ok := s.clients["5.6.7.8"]; ok {
		t.Fatalf("expired counters should be swept")
	}
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := NewRedisStore(ctx, "127.0.0.1:1", "", 0); err == nil {
		t.Fatalf("expected connection error")
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestErrorHandler_Body(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "done")
		_ = c.Error(assertErr{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error_details"] != "boom" {
		t.Fatalf("unexpected body %v", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	if w.Code != http.StatusAccepted {
		t.Fatalf("handler response should be kept, got %d", w.Code)
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected deadline on request context, code=%d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:5173", "http://localhost:5173"},
		{"http://evil.example", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", tt.origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Fatalf("origin %s: want %q got %q", tt.origin, tt.want, got)
		}
	}
}

func TestCORS_PreflightAllowsRequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.PUT("/api/v1/view/filters", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/view/filters", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Request-ID")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight rejected: code=%d", w.Code)
	}
	if !strings.Contains(strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-request-id") {
		t.Fatalf("X-Request-ID not allowed: %q", w.Header().Get("Access-Control-Allow-Headers"))
	}
}
