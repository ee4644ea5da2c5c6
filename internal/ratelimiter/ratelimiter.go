package ratelimiter

import "time"

type Limiter interface {
	// Allow counts one request for key and reports whether it may proceed.
	// When it may not, the duration says how long until the window resets.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
