package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultEndpoint is where the Ray desktop app listens.
	DefaultEndpoint = "http://localhost:23517"

	ClientPrefix    = "RAY_"
	InspectorPrefix = "RAYINSPECT_"
)

// Client configures a ray session.
type Client struct {
	Enabled    bool          `koanf:"enabled"`
	Endpoint   string        `koanf:"endpoint" validate:"required,url"`
	Transport  string        `koanf:"transport" validate:"required,oneof=http log discard"`
	Timeout    time.Duration `koanf:"timeout" validate:"gte=0"`
	CallerInfo bool          `koanf:"caller_info"`
	LogLevel   string        `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Inspector configures the local stand-in inspector server.
type Inspector struct {
	Port         string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	RecentLimit  int           `koanf:"recent_limit" validate:"gt=0"`
	NoColor      bool          `koanf:"no_color"`
}

// DefaultClient returns the configuration used when nothing is set.
func DefaultClient() *Client {
	return &Client{
		Enabled:   true,
		Endpoint:  DefaultEndpoint,
		Transport: "http",
		Timeout:   2 * time.Second,
		LogLevel:  "warn",
	}
}

// DefaultInspector returns the inspector defaults (the port Ray listens on).
func DefaultInspector() *Inspector {
	return &Inspector{
		Port:         "23517",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
		RecentLimit:  100,
	}
}

// LoadClient reads RAY_* environment variables (after an optional .env file)
// on top of DefaultClient and validates the result.
func LoadClient(dotenv ...string) (*Client, error) {
	return LoadClientWith(nil, dotenv...)
}

// LoadClientWith is LoadClient with overrides keyed by koanf name (e.g.
// "endpoint"). Overrides win over the environment and are validated with it.
func LoadClientWith(overrides map[string]any, dotenv ...string) (*Client, error) {
	cfg := DefaultClient()
	if err := load(ClientPrefix, cfg, overrides, dotenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInspector reads RAYINSPECT_* environment variables on top of
// DefaultInspector and validates the result.
func LoadInspector(dotenv ...string) (*Inspector, error) {
	cfg := DefaultInspector()
	if err := load(InspectorPrefix, cfg, nil, dotenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel, defaulting to warn.
func (c *Client) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

func load(prefix string, out any, overrides map[string]any, dotenv []string) error {
	if err := loadDotenv(dotenv); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
	}

	if err := k.Unmarshal("", out); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(out); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// loadDotenv loads the given files, or ./.env when none are named. A missing
// default file is not an error. Variables already set in the environment win.
func loadDotenv(files []string) error {
	if len(files) > 0 {
		return godotenv.Load(files...)
	}
	if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load()
}
