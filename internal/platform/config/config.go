package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration so main stays lean.
type Server struct {
	Addr            string        `env:"BLOODLINK_ADDR" envDefault:":8080"`
	TopologyPath    string        `env:"BLOODLINK_TOPOLOGY"`
	SeedDonors      bool          `env:"BLOODLINK_SEED" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"BLOODLINK_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
