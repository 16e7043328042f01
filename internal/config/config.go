package config

import (
	"time"

	"slots_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// EconomyConfig параметры экономики и идентификатор программы
type EconomyConfig interface {
	ProgramID() string
	Economy() model.Economy
}

type HTTPConfig interface {
	Address() string
}

type MetricsConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	Enabled() bool
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
}
