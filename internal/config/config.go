// Package config loads process configuration from defaults, an optional
// YAML file, .env files and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	auction "gift-auction/internal/auctionService"
	"gift-auction/internal/auctionerrors"
	"gift-auction/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config.yaml"
	PathEnv     = "AUCTION_CONFIG"
)

// Config is the full process configuration
type Config struct {
	Port          string           `yaml:"port"`
	LogLevel      string           `yaml:"log_level"`
	TimerInterval time.Duration    `yaml:"timer_interval"`
	Auction       models.Config    `yaml:"auction"`
	Settings      auction.Settings `yaml:"settings"`
}

// Default mirrors the demo auction: 10 gifts, 3 per round, one minute rounds
func Default() Config {
	return Config{
		Port:          "8080",
		LogLevel:      "info",
		TimerInterval: 200 * time.Millisecond,
		Auction: models.Config{
			TotalGifts:       10,
			PerRound:         3,
			RoundDurationSec: 60,
		},
	}
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// LoadDotEnv loads .env files without overriding variables that are
// already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds the configuration. path may be empty, in which case
// $AUCTION_CONFIG or config.yaml is used if present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path = DefaultPath
	}

	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: %w - failed to parse %s: %v", auctionerrors.ErrInvalidConfig, path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TIMER_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %w - TIMER_INTERVAL=%q: %v", auctionerrors.ErrInvalidConfig, v, err)
		}
		cfg.TimerInterval = d
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"TOTAL_GIFTS", &cfg.Auction.TotalGifts},
		{"PER_ROUND", &cfg.Auction.PerRound},
		{"ROUND_DURATION_SEC", &cfg.Auction.RoundDurationSec},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %w - %s=%q is not an integer", auctionerrors.ErrInvalidConfig, e.name, v)
		}
		*e.dst = n
	}

	int64s := []struct {
		name string
		dst  *int64
	}{
		{"MIN_BID", &cfg.Settings.MinBid},
		{"MIN_BID_DIFFERENCE", &cfg.Settings.MinBidDifference},
		{"ANTISNIPING_SEC", &cfg.Settings.AntiSnipingSec},
	}
	for _, e := range int64s {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %w - %s=%q is not an integer", auctionerrors.ErrInvalidConfig, e.name, v)
		}
		*e.dst = n
	}
	return nil
}

// Validate rejects negative values and an empty port
func (c Config) Validate() error {
	a := c.Auction
	if a.TotalGifts < 0 || a.PerRound < 0 || a.RoundDurationSec < 0 {
		return fmt.Errorf("config: %w - auction values must be non-negative: %+v", auctionerrors.ErrInvalidConfig, a)
	}
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TimerInterval <= 0 {
		return fmt.Errorf("config: %w - timer interval must be positive", auctionerrors.ErrInvalidConfig)
	}
	if strings.TrimPrefix(c.Port, ":") == "" {
		return fmt.Errorf("config: %w - empty port", auctionerrors.ErrInvalidConfig)
	}
	return nil
}
