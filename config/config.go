package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the configuration of the vectorizer service
type Config struct {
	Server ServerConfig `toml:"server"`
	Limits LimitsConfig `toml:"limits"`
	Redis  RedisConfig  `toml:"redis"`
	Morph  MorphConfig  `toml:"morph"`
	NLP    NLPConfig    `toml:"nlp"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	SwaggerURL   string   `toml:"swagger_url"`
}

// LimitsConfig bounds the work a single request may ask for
type LimitsConfig struct {
	MaxDocuments  int `toml:"max_documents"`
	MaxComponents int `toml:"max_components"`
}

// RedisConfig holds the usage statistics store settings
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// MorphConfig holds the morphology backend settings used for lemmatization
type MorphConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
	Retries int      `toml:"retries"`
}

// NLPConfig holds prose settings
type NLPConfig struct {
	// ModelDir points to a custom prose NER model; empty uses the bundled model
	ModelDir string `toml:"model_dir"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

// Duration is a time.Duration decoded from strings such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{30 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
			SwaggerURL:   "http://localhost:8080/swagger/doc.json",
		},
		Limits: LimitsConfig{
			MaxDocuments:  5000,
			MaxComponents: 100,
		},
		Redis: RedisConfig{
			Enabled:  true,
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		Morph: MorphConfig{
			Timeout: Duration{30 * time.Second},
			Retries: 3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and
// environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VECTORIZER_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.Limits.MaxDocuments < 1 {
		return fmt.Errorf("max_documents must be positive, got %d", c.Limits.MaxDocuments)
	}
	if c.Limits.MaxComponents < 1 {
		return fmt.Errorf("max_components must be positive, got %d", c.Limits.MaxComponents)
	}
	if c.Morph.Retries < 0 {
		return fmt.Errorf("morph retries cannot be negative, got %d", c.Morph.Retries)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: expected text or json", c.Log.Format)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = GetStringEnv("VECTORIZER_ADDR", cfg.Server.Addr)
	cfg.Server.ReadTimeout.Duration = GetDurationEnv("VECTORIZER_READ_TIMEOUT", cfg.Server.ReadTimeout.Duration)
	cfg.Server.WriteTimeout.Duration = GetDurationEnv("VECTORIZER_WRITE_TIMEOUT", cfg.Server.WriteTimeout.Duration)
	cfg.Server.SwaggerURL = GetStringEnv("VECTORIZER_SWAGGER_URL", cfg.Server.SwaggerURL)

	cfg.Limits.MaxDocuments = GetIntEnv("VECTORIZER_MAX_DOCUMENTS", cfg.Limits.MaxDocuments)
	cfg.Limits.MaxComponents = GetIntEnv("VECTORIZER_MAX_COMPONENTS", cfg.Limits.MaxComponents)

	cfg.Redis.Enabled = GetBoolEnv("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Host = GetStringEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = GetIntEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = GetStringEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetIntEnv("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.PoolSize = GetIntEnv("REDIS_POOL_SIZE", cfg.Redis.PoolSize)

	cfg.Morph.BaseURL = GetStringEnv("MORPH_BACKEND_URL", cfg.Morph.BaseURL)
	cfg.Morph.Timeout.Duration = GetDurationEnv("MORPH_TIMEOUT", cfg.Morph.Timeout.Duration)
	cfg.Morph.Retries = GetIntEnv("MORPH_RETRIES", cfg.Morph.Retries)

	cfg.NLP.ModelDir = GetStringEnv("PROSE_MODEL_DIR", cfg.NLP.ModelDir)

	cfg.Log.Level = GetStringEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = GetStringEnv("LOG_FORMAT", cfg.Log.Format)
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
