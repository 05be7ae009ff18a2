// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Fare overrides are optional; any fare left unset keeps the built-in
// Île-de-France default.
package config
