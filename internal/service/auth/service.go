package auth

import (
	"time"

	"slots_backend/internal/config"
	"slots_backend/internal/service"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// LoginPrefix префикс сообщения входа, за ним unix время в секундах
	LoginPrefix = "slots-login:"
	// LoginWindow допустимое расхождение времени сообщения входа с часами сервера
	LoginWindow = 5 * time.Minute
	// usedLoginsSize сколько последних сообщений входа помнит сервер
	usedLoginsSize = 1 << 16
)

type serv struct {
	jwtConfig config.JWTConfig
	clock     quartz.Clock
	logger    *log.Logger

	// usedLogins уже принятые сообщения входа, ключ signer:message
	usedLogins *lru.Cache[string, time.Time]
}

func NewService(jwtConfig config.JWTConfig, clock quartz.Clock, logger *log.Logger) service.AuthService {
	// Ошибка возможна только при неположительном размере
	usedLogins, _ := lru.New[string, time.Time](usedLoginsSize)
	return &serv{
		jwtConfig:  jwtConfig,
		clock:      clock,
		logger:     logger.With("component", "auth"),
		usedLogins: usedLogins,
	}
}
