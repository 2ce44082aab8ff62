package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Content  ContentConfig  `yaml:"content"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds document store connection settings.
// Both URL and Name are optional: without them the store runs degraded.
type DatabaseConfig struct {
	URL            string        `yaml:"url"             env:"DATABASE_URL"`
	Name           string        `yaml:"name"            env:"DATABASE_NAME"`
	Namespace      string        `yaml:"namespace"       env:"DATABASE_NAMESPACE"       env-default:"portfolio"`
	Username       string        `yaml:"username"        env:"DATABASE_USER"`
	Password       string        `yaml:"password"        env:"DATABASE_PASSWORD"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"5s"`
	MaxConns       int32         `yaml:"max_conns"       env:"DATABASE_MAX_CONNS"       env-default:"10"`
}

// URLSet reports whether a connection URL was configured.
func (d DatabaseConfig) URLSet() bool { return strings.TrimSpace(d.URL) != "" }

// NameSet reports whether a database name was configured.
func (d DatabaseConfig) NameSet() bool { return strings.TrimSpace(d.Name) != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ContentConfig holds static content settings.
type ContentConfig struct {
	// ArticlesPath replaces the embedded article list when set.
	ArticlesPath string `yaml:"articles_path" env:"ARTICLES_PATH"`
}

// Validate checks the values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("database.connect_timeout must be positive"))
	}
	if c.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be at least 1, got %d", c.Database.MaxConns))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of json, text", c.Log.Format))
	}

	return errors.Join(errs...)
}
