package config

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"NOTEBOARD_POSTGRES_HOST" env-default:"0.0.0.0"`
	Port          int    `yaml:"port" env:"NOTEBOARD_POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"NOTEBOARD_POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"NOTEBOARD_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"NOTEBOARD_POSTGRES_DB" env-default:"noteboard"`
	MinConn       int    `yaml:"min_conn" env:"NOTEBOARD_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `yaml:"max_conn" env:"NOTEBOARD_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"NOTEBOARD_MIGRATIONS_DIR" env-default:"migrations/noteboard"`
}

// GetDSN возвращает строку подключения к Postgres для pgx.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL подключения для migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// GetMigrationsSource возвращает file:// URL каталога миграций.
func (p *PostgresConfig) GetMigrationsSource() (string, error) {
	dir := p.MigrationsDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve migrations dir %q: %w", dir, err)
		}
		dir = abs
	}
	return "file://" + filepath.ToSlash(dir), nil
}
