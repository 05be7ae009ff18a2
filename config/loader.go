package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/voyagetools/paris-fare-planner/fares"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8190
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Cache); err != nil {
		return err
	}
	if err := v.Struct(cfg.Fares); err != nil {
		return err
	}
	Config = cfg
	return Table().Validate()
}

// Table returns the active fare table: the built-in defaults with the
// configured overrides applied.
func Table() fares.Table {
	return Config.Fares.Apply(fares.Default())
}
