package middleware

import (
	"campus-chatbot/pkg/log"
)

// Config holds the settings of the shared HTTP middleware.
type Config struct {
	// RateLimitPerMin is the chat request budget of one client. Zero disables limiting.
	RateLimitPerMin int
	// MetricsAllowedIPs restricts /metrics to these addresses or CIDR ranges. Empty allows all.
	MetricsAllowedIPs []string
}

type Middleware struct {
	l                 log.Logger
	limiter           *rateLimiter
	metricsAllowedIPs []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:                 l,
		metricsAllowedIPs: cfg.MetricsAllowedIPs,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
