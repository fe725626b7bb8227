// internal/recommender/config.go
package recommender

import (
	"time"

	"evea-matching/internal/common/config"
)

type Config struct {
	MaxResults         int
	ScoringConcurrency int
	Timeout            time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxResults:         20,
		ScoringConcurrency: 8,
		Timeout:            10 * time.Second,
	}
}

// FromEngineConfig maps the application engine section onto the
// service config.
func FromEngineConfig(cfg config.EngineConfig) *Config {
	c := LoadConfig()
	if cfg.MaxResults > 0 {
		c.MaxResults = cfg.MaxResults
	}
	if cfg.ScoringConcurrency > 0 {
		c.ScoringConcurrency = cfg.ScoringConcurrency
	}
	if cfg.RequestTimeout > 0 {
		c.Timeout = time.Duration(cfg.RequestTimeout) * time.Millisecond
	}
	return c
}
