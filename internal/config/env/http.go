package env

import (
	"errors"
	"net"
	"os"

	"slots_backend/internal/config"
)

const (
	httpHostEnvName    = "HTTP_HOST"
	httpPortEnvName    = "HTTP_PORT"
	metricsAddrEnvName = "METRICS_ADDRESS"
	logLevelEnvName    = "LOG_LEVEL"

	defaultMetricsAddress = ":9090"
	defaultLogLevel       = "info"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

type metricsConfig struct {
	address string
}

// NewMetricsConfig адрес для /metrics, по умолчанию :9090
func NewMetricsConfig() config.MetricsConfig {
	addr := os.Getenv(metricsAddrEnvName)
	if len(addr) == 0 {
		addr = defaultMetricsAddress
	}
	return &metricsConfig{address: addr}
}

func (cfg *metricsConfig) Address() string {
	return cfg.address
}

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
