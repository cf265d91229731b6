package config

import (
	"errors"
	"fmt"
	"slices"
)

// Окружения запуска сервиса.
const (
	EnvDev    = "DEV"
	EnvPytest = "PYTEST"
	EnvStg    = "STG"
	EnvPrd    = "PRD"
)

// ErrUnknownEnvironment возвращается для неподдерживаемого NOTEBOARD_ENVIRONMENT.
var ErrUnknownEnvironment = errors.New("unknown environment")

// SecurityConfig содержит настройки CORS, допустимых хостов и ограничения частоты запросов.
type SecurityConfig struct {
	Environment    string   `yaml:"environment" env:"NOTEBOARD_ENVIRONMENT" env-default:"DEV"`
	CORSOrigins    []string `yaml:"cors_origins" env:"NOTEBOARD_CORS_ORIGINS" env-separator:","`
	AllowedHosts   []string `yaml:"allowed_hosts" env:"NOTEBOARD_ALLOWED_HOSTS" env-default:"localhost,127.0.0.1" env-separator:","`
	RateLimitRPS   int      `yaml:"rate_limit_rps" env:"NOTEBOARD_RATE_LIMIT_RPS" env-default:"100"`
	RateLimitBurst int      `yaml:"rate_limit_burst" env:"NOTEBOARD_RATE_LIMIT_BURST" env-default:"20"`
}

// Validate проверяет значение окружения.
func (s *SecurityConfig) Validate() error {
	if !slices.Contains([]string{EnvDev, EnvPytest, EnvStg, EnvPrd}, s.Environment) {
		return fmt.Errorf("%w: %q", ErrUnknownEnvironment, s.Environment)
	}
	return nil
}
