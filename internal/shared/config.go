package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// APIKeyEnv is the environment variable holding the Phish.net API key.
const APIKeyEnv = "PHISHNET_API_KEY"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	PhishNet PhishNetConfig `toml:"phishnet"`
	Dates    DatesConfig    `toml:"dates"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

// PhishNetConfig contains Phish.net API settings.
type PhishNetConfig struct {
	APIKey         string  `toml:"api_key"`
	BaseURL        string  `toml:"base_url"`
	RateLimit      float64 `toml:"rate_limit"` // Requests per second
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// DatesConfig bounds the selectable show dates.
type DatesConfig struct {
	MinDate     string `toml:"min_date"`
	DefaultDate string `toml:"default_date"`
	FutureDays  int    `toml:"future_days"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv loads variables from the given .env files (default ".env") into the process environment.
//
// A missing file is not an error; variables already set in the environment win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values with their environment counterparts.
func (c *Config) ApplyEnv() {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		c.PhishNet.APIKey = key
	}
}

// Validate reports configuration that would halt lookups.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PhishNet.APIKey) == "" {
		return fmt.Errorf("%w: set it in your environment or .env file", ErrMissingAPIKey)
	}
	if c.PhishNet.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative", ErrInvalidConfig)
	}
	if _, err := c.DateBounds(time.Now()); err != nil {
		return err
	}
	return nil
}

// Timeout returns the HTTP timeout for Phish.net requests.
func (c *Config) Timeout() time.Duration {
	if c.PhishNet.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.PhishNet.TimeoutSeconds) * time.Second
}

// Addr returns the host:port the web server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogLevel parses the configured [log.Level], falling back to [log.InfoLevel].
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// DateBounds builds the selectable [DateRange] relative to now.
func (c *Config) DateBounds(now time.Time) (DateRange, error) {
	minDate, err := ParseDate(c.Dates.MinDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: min_date: %v", ErrInvalidConfig, err)
	}
	def, err := ParseDate(c.Dates.DefaultDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: default_date: %v", ErrInvalidConfig, err)
	}

	maxDate := Day(now).AddDate(0, 0, c.Dates.FutureDays)
	if maxDate.Before(minDate) {
		return DateRange{}, fmt.Errorf("%w: min_date is after the latest selectable date", ErrInvalidConfig)
	}

	return DateRange{Min: minDate, Max: maxDate, Default: def}, nil
}
