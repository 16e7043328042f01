package env

import (
	"os"

	"slots_backend/internal/config"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig без PG_DSN леджер и записи хранятся в памяти процесса
func NewPGConfig() config.PGConfig {
	return &pgConfig{
		dsn: os.Getenv(dsnName),
	}
}

func (cfg *pgConfig) Enabled() bool {
	return len(cfg.dsn) > 0
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
