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

// Config captures the settings rentdesk needs to talk to the rental backend.
type Config struct {
	APIURL      string
	Timeout     time.Duration
	PollEvery   time.Duration
	ReportLimit int
}

const (
	defaultConfigPath  = "~/.config/rentdesk/config.toml"
	defaultAPIURL      = "http://127.0.0.1:3000"
	defaultTimeoutSec  = 10
	defaultPollSec     = 30
	defaultReportLimit = 10
)

// Load locates and parses the rentdesk config, falling back to defaults when
// the file is missing. Zero or negative values keep their defaults; only an
// unreadable or unparseable file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		PollSeconds    int    `toml:"poll_seconds"`
		ReportLimit    int    `toml:"report_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.ReportLimit > 0 {
		cfg.ReportLimit = raw.ReportLimit
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		APIURL:      defaultAPIURL,
		Timeout:     defaultTimeoutSec * time.Second,
		PollEvery:   defaultPollSec * time.Second,
		ReportLimit: defaultReportLimit,
	}
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
