package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings ghactivity reads from its TOML file.
type Config struct {
	Host      string
	Port      int
	UserAgent string
	// Timeout bounds one request/response exchange; negative disables it.
	Timeout  time.Duration
	LogLevel string
	Theme    string
}

const (
	defaultConfigPath = "~/.config/ghactivity/config.toml"
	defaultHost       = "api.github.com"
	defaultPort       = 443
	defaultUserAgent  = "ghactivity/0.1"
	defaultTimeout    = 10 * time.Second
	defaultLogLevel   = "warn"
	defaultTheme      = "Plain"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Host:      defaultHost,
		Port:      defaultPort,
		UserAgent: defaultUserAgent,
		Timeout:   defaultTimeout,
		LogLevel:  defaultLogLevel,
		Theme:     defaultTheme,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Host           string `toml:"host"`
		Port           int    `toml:"port"`
		UserAgent      string `toml:"user_agent"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		LogLevel       string `toml:"log_level"`
		Theme          string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if host := strings.TrimSpace(raw.Host); host != "" {
		cfg.Host = host
	}
	if raw.Port > 0 {
		if raw.Port > 65535 {
			return Config{}, fmt.Errorf("parse config: port %d out of range", raw.Port)
		}
		cfg.Port = raw.Port
	}
	if agent := strings.TrimSpace(raw.UserAgent); agent != "" {
		cfg.UserAgent = agent
	}
	switch {
	case raw.TimeoutSeconds > 0:
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	case raw.TimeoutSeconds < 0:
		cfg.Timeout = -1
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

// Address returns the host:port pair the client dials.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
