package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/partfoundry/quoting/pkg/domain/services"
)

// Load returns the engine rate configuration. Defaults cover the full
// table; a YAML file, when given, overrides individual rates so a shop
// can adjust labor rates or the stock catalog without a code change.
func Load(path string) (services.RateConfig, error) {
	cfg := services.DefaultRateConfig()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read rate config %s: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal rate config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid rate config: %w", err)
	}
	return cfg, nil
}
