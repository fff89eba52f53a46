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
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
)

// clients which did not send a request for this long start with a full bucket again
const limiterIdleTTL = 10 * time.Minute

type ipRateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(cfg config.RateLimitConfig, idleTTL time.Duration) *ipRateLimiter {
	size := cfg.MaxClients
	if size <= 0 {
		size = 10000
	}
	return &ipRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, idleTTL),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// Get does not renew the ttl, Add does
	l.limiters.Add(ip, limiter)
	return limiter
}

// RateLimit is a best effort per instance token bucket keyed by the client ip.
func RateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	limiter := newIPRateLimiter(cfg, limiterIdleTTL)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if isHealthCheck(ctx) {
				return next(ctx)
			}

			reservation := limiter.get(ctx.RealIP()).Reserve()
			if !reservation.OK() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			if delay := reservation.Delay(); delay > 0 {
				// do not consume the token, the request is rejected
				reservation.Cancel()
				ctx.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(ctx)
		}
	}
}
