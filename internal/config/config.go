package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Log     Log     `mapstructure:"log"`      // logging section
	Study   Study   `mapstructure:"study"`    // study session tuning
	Matcher Matcher `mapstructure:"matcher"`  // answer matching section
	UI      UI      `mapstructure:"ui"`       // terminal layout limits
	DB      DB      `mapstructure:"database"` // optional session archive
}

// Log contains logger settings. The study screen owns the terminal, so logs go to a file.
type Log struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Study contains retry limits for random draws.
type Study struct {
	ResampleAttempts   int `mapstructure:"resample_attempts"`
	DistractorAttempts int `mapstructure:"distractor_attempts"`
}

// Matcher contains answer matching parameters.
type Matcher struct {
	Similarity float64 `mapstructure:"similarity"` // minimum similarity for fuzzy answers
}

// UI contains the smallest terminal size that is drawn.
type UI struct {
	MinWidth  int `mapstructure:"min_width"`
	MinHeight int `mapstructure:"min_height"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"url"`               // database connection string, empty disables the archive
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Pick up a local .env file if there is one.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "flashdeck.log"))
	v.SetDefault("study.resample_attempts", 12)
	v.SetDefault("study.distractor_attempts", 12)
	v.SetDefault("matcher.similarity", 0.8)
	v.SetDefault("ui.min_width", 20)
	v.SetDefault("ui.min_height", 10)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.path", "LOG_PATH")
	_ = v.BindEnv("database.url", "DATABASE_URL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Matcher.Similarity <= 0 || c.Matcher.Similarity > 1 {
		return fmt.Errorf("%w: matcher.similarity must be in (0, 1], got %v", ErrInvalidConfig, c.Matcher.Similarity)
	}
	if c.Study.ResampleAttempts < 1 || c.Study.DistractorAttempts < 1 {
		return fmt.Errorf("%w: study attempts must be positive", ErrInvalidConfig)
	}
	if c.UI.MinWidth < 1 || c.UI.MinHeight < 1 {
		return fmt.Errorf("%w: ui minimum size must be positive", ErrInvalidConfig)
	}
	return nil
}
