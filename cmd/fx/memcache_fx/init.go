package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "lifesync/pkg/memcache"
)

// 5 failed attempts lock a client out for 15 minutes.
const (
	maxAttempts   = 5
	attemptWindow = 15 * time.Minute
)

var Module = fx.Provide(provideAttemptLimiter)

func provideAttemptLimiter() mem.AttemptLimiter {
	return mem.NewAttemptLimits(maxAttempts, attemptWindow)
}
