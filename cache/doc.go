// Package cache memoizes rendered quote responses.
//
// The planner itself is cheap and pure; caching exists so that repeated
// identical requests against the HTTP surface are served from stored
// bytes. Two backends are provided: an in-process TTL map and Redis.
// Cache failures are never fatal, callers fall through to recomputation.
package cache
