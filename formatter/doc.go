// Package formatter renders a computed quote for transport.
//
// Two renderings are supported: JSON for the HTTP API and an aligned
// plain-text table for the CLI. Both consume the same Quote envelope and
// preserve the strategy order they are given; ranking is the planner's
// job and is never redone here.
package formatter
