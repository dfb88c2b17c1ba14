package middleware

import (
	"lifeplanner/config"
	"lifeplanner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cfg     config.RateLimitConfig
	limiter *clientLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newClientLimiter(cfg.PerMinute),
	}
}
