package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(6) // burst 1
	require.NotNil(t, rl)

	assert.NoError(t, rl.Allow("10.0.0.1"))
	assert.Error(t, rl.Allow("10.0.0.1"))
	assert.NoError(t, rl.Allow("10.0.0.2"))

	assert.Nil(t, newRateLimiter(0))
}

func TestRateLimitMiddleware(t *testing.T) {
	mw := New(log.NewNop(), Config{ExtractPerMin: 6})
	r := gin.New()
	r.POST("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.9.9.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("1.1.1.1"))
	assert.Equal(t, http.StatusOK, do("2.2.2.2"))
}

func TestRateLimitIgnoresUntrustedForwarding(t *testing.T) {
	mw := New(log.NewNop(), Config{ExtractPerMin: 6})
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.POST("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, do("3.3.3.3"))
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc", w.Body.String())
		assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
	})
}
