// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
)

func TestRateLimit(t *testing.T) {
	newServer := func() *echo.Echo {
		e := echo.New()
		// a very slow refill keeps the test deterministic
		e.Use(RateLimit(config.RateLimitConfig{RPS: 0.001, Burst: 3, MaxClients: 100}))
		ok := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }
		e.GET("/api/v1/businesses/", ok)
		e.GET("/api/v1/health/", ok)
		return e
	}

	request := func(e *echo.Echo, path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("should answer 429 after the burst is used up", func(t *testing.T) {
		e := newServer()
		for range 3 {
			assert.Equal(t, http.StatusNoContent, request(e, "/api/v1/businesses/", "10.0.0.1").Code)
		}
		rec := request(e, "/api/v1/businesses/", "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("should keep separate buckets per client", func(t *testing.T) {
		e := newServer()
		for range 4 {
			request(e, "/api/v1/businesses/", "10.0.0.1")
		}
		assert.Equal(t, http.StatusNoContent, request(e, "/api/v1/businesses/", "10.0.0.2").Code)
	})

	t.Run("should never limit the health check", func(t *testing.T) {
		e := newServer()
		for range 10 {
			assert.Equal(t, http.StatusNoContent, request(e, "/api/v1/health/", "10.0.0.3").Code)
		}
	})
}

func TestIPRateLimiterIdleTTL(t *testing.T) {
	limiter := newIPRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1}, 500*time.Millisecond)

	first := limiter.get("10.0.0.1")
	time.Sleep(300 * time.Millisecond)
	assert.Same(t, first, limiter.get("10.0.0.1"))
	time.Sleep(300 * time.Millisecond)
	// older than the ttl, but used within it
	assert.Same(t, first, limiter.get("10.0.0.1"))

	time.Sleep(700 * time.Millisecond)
	assert.NotSame(t, first, limiter.get("10.0.0.1"))
}
