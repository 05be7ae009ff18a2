package fareplanner

import (
	"bytes"
	"time"

	"github.com/voyagetools/paris-fare-planner/cache"
	"github.com/voyagetools/paris-fare-planner/config"
)

// quoteCache memoizes rendered responses across requests. The backend is
// selected by config; the default is no caching at all.
var quoteCache cache.Cache = cache.Nop{}

// InitCache wires the quote cache from the loaded configuration.
func InitCache() {
	ttl := time.Duration(config.Config.Cache.TTLSeconds) * time.Second
	switch config.Config.Cache.Backend {
	case "memory":
		quoteCache = cache.NewMemory(ttl)
	case "redis":
		quoteCache = cache.NewRedis(config.Config.Cache.RedisAddr, ttl)
	default:
		quoteCache = cache.Nop{}
	}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}
