package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "MEGA"
	EnvConfigPath = "MEGA_CONFIG"

	DefaultBaseURL = "https://challenge.crossmint.io"

	configDirName  = ".megaverse"
	configFileName = "config.toml"

	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var envKeys = []string{
	"base_url",
	"candidate_id",
	"retries",
	"base_delay_ms",
	"rate_limit_delay_ms",
	"pace_ms",
	"pattern_pace_ms",
	"workers",
}

type Config struct {
	BaseURL     string     `toml:"base_url"`
	CandidateID string     `toml:"candidate_id"`
	Submission  Submission `toml:"submission"`
}

type Submission struct {
	Retries          int   `toml:"retries"`
	BaseDelayMS      int64 `toml:"base_delay_ms"`
	RateLimitDelayMS int64 `toml:"rate_limit_delay_ms"`
	PaceMS           int64 `toml:"pace_ms"`
	PatternPaceMS    int64 `toml:"pattern_pace_ms"`
	Workers          int   `toml:"workers"`
}

func Default() Config {
	cfg := Config{BaseURL: DefaultBaseURL}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Submission.Retries == 0 {
		c.Submission.Retries = 3
	}
	if c.Submission.BaseDelayMS == 0 {
		c.Submission.BaseDelayMS = 1000
	}
	if c.Submission.RateLimitDelayMS == 0 {
		c.Submission.RateLimitDelayMS = 2000
	}
	if c.Submission.PaceMS == 0 {
		c.Submission.PaceMS = 1000
	}
	if c.Submission.PatternPaceMS == 0 {
		c.Submission.PatternPaceMS = 500
	}
	if c.Submission.Workers == 0 {
		c.Submission.Workers = 1
	}
}

func (c Config) Validate() error {
	if c.Submission.Retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", c.Submission.Retries)
	}
	if c.Submission.BaseDelayMS < 0 {
		return fmt.Errorf("base_delay_ms must not be negative, got %d", c.Submission.BaseDelayMS)
	}
	if c.Submission.RateLimitDelayMS < 0 {
		return fmt.Errorf("rate_limit_delay_ms must not be negative, got %d", c.Submission.RateLimitDelayMS)
	}
	if c.Submission.PaceMS < 0 {
		return fmt.Errorf("pace_ms must not be negative, got %d", c.Submission.PaceMS)
	}
	if c.Submission.PatternPaceMS < 0 {
		return fmt.Errorf("pattern_pace_ms must not be negative, got %d", c.Submission.PatternPaceMS)
	}
	if c.Submission.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Submission.Workers)
	}

	return nil
}

func (c Config) RequireCandidateID() error {
	if strings.TrimSpace(c.CandidateID) == "" {
		return fmt.Errorf("candidate id is not configured (set candidate_id in the config file or %s_CANDIDATE_ID)", EnvPrefix)
	}

	return nil
}

func (s Submission) BaseDelay() time.Duration {
	return time.Duration(s.BaseDelayMS) * time.Millisecond
}

func (s Submission) RateLimitDelay() time.Duration {
	return time.Duration(s.RateLimitDelayMS) * time.Millisecond
}

func (s Submission) Pace() time.Duration {
	return time.Duration(s.PaceMS) * time.Millisecond
}

func (s Submission) PatternPace() time.Duration {
	return time.Duration(s.PatternPaceMS) * time.Millisecond
}

// Load reads the config file when it exists, then applies environment
// overrides and defaults. A missing file is not an error so the CLI
// works out of the box.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	applyEnvOverrides(v, &cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(v *viper.Viper, cfg *Config) {
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if v.IsSet("base_url") {
		cfg.BaseURL = v.GetString("base_url")
	}
	if v.IsSet("candidate_id") {
		cfg.CandidateID = v.GetString("candidate_id")
	}
	if v.IsSet("retries") {
		cfg.Submission.Retries = v.GetInt("retries")
	}
	if v.IsSet("base_delay_ms") {
		cfg.Submission.BaseDelayMS = v.GetInt64("base_delay_ms")
	}
	if v.IsSet("rate_limit_delay_ms") {
		cfg.Submission.RateLimitDelayMS = v.GetInt64("rate_limit_delay_ms")
	}
	if v.IsSet("pace_ms") {
		cfg.Submission.PaceMS = v.GetInt64("pace_ms")
	}
	if v.IsSet("pattern_pace_ms") {
		cfg.Submission.PatternPaceMS = v.GetInt64("pattern_pace_ms")
	}
	if v.IsSet("workers") {
		cfg.Submission.Workers = v.GetInt("workers")
	}
}

func Path() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		return normalizePath(override)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName, configFileName), nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// Write persists cfg atomically so a crash mid-write never leaves a
// truncated config behind.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, configFileMode); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}

	return nil
}
