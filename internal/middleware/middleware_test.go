package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-chatbot/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientIP(t *testing.T) {
	tcs := map[string]struct {
		headers map[string]string
		remote  string
		want    string
	}{
		"forwarded by trusted proxy": {
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remote:  "10.0.0.2:5000",
			want:    "203.0.113.7",
		},
		"real ip from trusted proxy": {
			headers: map[string]string{"X-Real-IP": "198.51.100.4"},
			remote:  "10.0.0.2:5000",
			want:    "198.51.100.4",
		},
		"forwarded by untrusted peer": {
			headers: map[string]string{"X-Forwarded-For": "127.0.0.1"},
			remote:  "198.51.100.20:5000",
			want:    "198.51.100.20",
		},
		"non-ip forwarded value": {
			headers: map[string]string{"X-Forwarded-For": "unknown"},
			remote:  "10.0.0.2:5000",
			want:    "10.0.0.2",
		},
		"remote addr": {
			remote: "192.0.2.1:1234",
			want:   "192.0.2.1",
		},
		"unparseable remote addr": {
			remote: "pipe",
			want:   "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))
			var got string
			r.GET("/", func(c *gin.Context) { got = ClientIP(c) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(remote, forwarded string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.RemoteAddr = remote
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	// burst of 1 for 10/min
	assert.Equal(t, http.StatusOK, send("203.0.113.1:4000", ""))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1:4000", ""))
	// rotating the header does not buy a new bucket
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1:4000", "198.51.100.77"))
	assert.Equal(t, http.StatusOK, send("203.0.113.2:4000", ""))
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAllowIPs(t *testing.T) {
	mw := New(log.NewNop(), Config{MetricsAllowedIPs: []string{"10.0.0.0/8", "192.0.2.9"}})
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.GET("/metrics", mw.AllowIPs(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for remote, want := range map[string]int{
		"10.1.2.3:80":    http.StatusOK,
		"192.0.2.9:80":   http.StatusOK,
		"203.0.113.5:80": http.StatusForbidden,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.RemoteAddr = remote
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, remote)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.RemoteAddr = "203.0.113.5:80"
	req.Header.Set("X-Forwarded-For", "192.0.2.9")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	var seen string
	r.GET("/", mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}
