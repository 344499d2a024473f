// Package config loads manualfsm settings.
//
// Precedence, lowest first: defaults, YAML file, .env file, MANUALFSM_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/manualfsm/internal/logging"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/synth"
)

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "manualfsm.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MANUALFSM_"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

type Config struct {
	Strategy      string        `yaml:"strategy"`
	MaxInputBytes int           `yaml:"max_input_bytes"`
	Store         StoreConfig   `yaml:"store"`
	Server        ServerConfig  `yaml:"server"`
	Library       LibraryConfig `yaml:"library"`
	Log           LogConfig     `yaml:"log"`
}

type StoreConfig struct {
	Driver string      `yaml:"driver"`
	Dir    string      `yaml:"dir"`
	Redis  RedisConfig `yaml:"redis"`
	// Redact lists regular expressions masked out of stored descriptions,
	// conditions and actions.
	Redact []string `yaml:"redact"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LibraryConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy:      string(synth.Linear),
		MaxInputBytes: compiler.DefaultMaxInputBytes,
		Store: StoreConfig{
			Driver: DriverMemory,
			Dir:    ".manualfsm/graphs",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "manualfsm:",
			},
		},
		Server:  ServerConfig{Addr: ":8080"},
		Library: LibraryConfig{Dir: "manuals"},
		Log:     LogConfig{Level: "info", Format: string(logging.FormatText)},
	}
}

// Loader carries the sources consulted by Load.
type Loader struct {
	path    string
	envFile string
	getenv  func(string) string
}

// Option configures a Loader.
type Option func(*Loader)

// WithFile reads YAML from path. A missing explicit file is an error.
func WithFile(path string) Option {
	return func(l *Loader) {
		l.path = path
	}
}

// WithEnvFile loads a dotenv file before reading the environment.
// Variables already present in the environment win.
func WithEnvFile(path string) Option {
	return func(l *Loader) {
		l.envFile = path
	}
}

// WithGetenv replaces os.Getenv.
func WithGetenv(fn func(string) string) Option {
	return func(l *Loader) {
		l.getenv = fn
	}
}

// Load builds and validates a Config.
func Load(opts ...Option) (Config, error) {
	l := &Loader{envFile: ".env", getenv: os.Getenv}
	for _, opt := range opts {
		opt(l)
	}

	cfg := Default()

	if err := l.applyFile(&cfg); err != nil {
		return Config{}, err
	}
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", l.envFile, err)
		}
	}
	if err := l.applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l *Loader) applyFile(cfg *Config) error {
	path := l.path
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v := l.getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := l.getenv(EnvPrefix + key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("STRATEGY", &cfg.Strategy)
	str("STORE_DRIVER", &cfg.Store.Driver)
	str("STORE_DIR", &cfg.Store.Dir)
	str("REDIS_ADDR", &cfg.Store.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Store.Redis.Password)
	str("REDIS_PREFIX", &cfg.Store.Redis.Prefix)
	str("SERVER_ADDR", &cfg.Server.Addr)
	str("LIBRARY_DIR", &cfg.Library.Dir)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	if v := l.getenv(EnvPrefix + "STORE_REDACT"); v != "" {
		cfg.Store.Redact = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Store.Redact = append(cfg.Store.Redact, p)
			}
		}
	}

	if err := num("MAX_INPUT_BYTES", &cfg.MaxInputBytes); err != nil {
		return err
	}
	if err := num("REDIS_DB", &cfg.Store.Redis.DB); err != nil {
		return err
	}
	if v := l.getenv(EnvPrefix + "REDIS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREDIS_TTL: %w", EnvPrefix, err)
		}
		cfg.Store.Redis.TTL = d
	}
	return nil
}

// Validate rejects unknown enum values.
func (c Config) Validate() error {
	var errs []error
	if _, err := synth.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.Store.Driver))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	for _, p := range c.Store.Redact {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("invalid redact pattern %q: %w", p, err))
		}
	}
	if c.Store.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("redis ttl must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
