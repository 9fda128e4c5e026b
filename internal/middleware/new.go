package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"familybridge/config"
	"familybridge/pkg/log"
	"familybridge/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg config.RateLimitConfig) Middleware {
	m := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedPeers)
	}
	return m
}

// rateLimiter keeps one token bucket per client, evicting idle clients after five minutes.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxPeers int) *rateLimiter {
	if maxPeers <= 0 {
		maxPeers = 1000
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxPeers, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
