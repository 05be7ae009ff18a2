package config

import (
	"github.com/voyagetools/paris-fare-planner/fares"
)

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// CacheConfig selects the quote cache backend
type CacheConfig struct {
	Backend    string `yaml:"backend" validate:"omitempty,oneof=none memory redis"`
	RedisAddr  string `yaml:"redisAddr" validate:"omitempty,hostname_port"`
	TTLSeconds int    `yaml:"ttlSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig    `yaml:"server" validate:"required"`
	Fares  fares.Overrides `yaml:"fares"`
	Cache  CacheConfig     `yaml:"cache"`
}
