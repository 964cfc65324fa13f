package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestIDFromContext(c))
	})
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst then reject", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 2)
		now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }
		r := newRouter(rl.Middleware())

		assert.Equal(t, http.StatusOK, get(r, nil).Code)
		assert.Equal(t, http.StatusOK, get(r, nil).Code)

		w := get(r, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "REQ-020001")

		now = now.Add(time.Second)
		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	})

	t.Run("disabled with zero rate", func(t *testing.T) {
		r := newRouter(NewRateLimiterWithConfig(0, 1).Middleware())
		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusOK, get(r, nil).Code)
		}
	})

	t.Run("cleanup forgets idle clients", func(t *testing.T) {
		rl := NewRateLimiter()
		now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }

		rl.allow("10.0.0.1")
		now = now.Add(visitorTTL + time.Second)
		rl.Cleanup()

		assert.Empty(t, rl.visitors)
	})

	t.Run("reset restores the burst", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 1)
		now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }
		r := newRouter(rl.Middleware())

		assert.Equal(t, http.StatusOK, get(r, nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(r, nil).Code)

		rl.Reset()
		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	})
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID(), RequestLogger())

	w := get(r, map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())

	w = get(r, nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
}
