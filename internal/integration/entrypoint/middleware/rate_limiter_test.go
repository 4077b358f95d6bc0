package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedRouter(t *testing.T, limit int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	limiter := NewRateLimiter(client, limit, window)
	engine.POST("/login", limiter.Limit("login"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine, mr
}

func doRequest(engine *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		doRequest(engine, "10.0.0.1:1234")
	}
	if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exceeding the limit, got %d", code)
	}
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 1, time.Minute)

	if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", code)
	}
	if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("first client: expected 429, got %d", code)
	}
	if code := doRequest(engine, "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("second client should not be throttled by the first, got %d", code)
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	engine, mr := newRateLimitedRouter(t, 1, time.Minute)

	doRequest(engine, "10.0.0.1:1234")
	if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 before window expiry, got %d", code)
	}

	mr.FastForward(61 * time.Second)

	if code := doRequest(engine, "10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("expected 200 after window expiry, got %d", code)
	}
}
