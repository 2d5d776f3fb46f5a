package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.env"

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	HTTP      HTTPConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Redis     RedisConfig
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	TLSCertFile     string
	TLSKeyFile      string
	PprofEnabled    bool
}

// TLSEnabled reports whether both a certificate and a key were configured.
func (c HTTPConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

type LogConfig struct {
	Level string
	Dir   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Enabled is false when RPS is zero.
func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0
}

type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads an optional env file into the process environment and resolves
// every setting from the environment, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("CONFIG_FILE", defaultConfigFile)

	if err := godotenv.Load(v.GetString("CONFIG_FILE")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	setDefaults(v)

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:            v.GetString("HTTP_ADDR"),
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("HTTP_IDLE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
			TLSCertFile:     v.GetString("TLS_CERT_FILE"),
			TLSKeyFile:      v.GetString("TLS_KEY_FILE"),
			PprofEnabled:    v.GetBool("PPROF_ENABLED"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
			Dir:   v.GetString("LOG_DIR"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(v.GetString("CACHE_BACKEND")),
			TTL:     v.GetDuration("CACHE_TTL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("HTTP_READ_TIMEOUT", 9*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 12*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("PPROF_ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("CACHE_BACKEND", CacheNone)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.Log.Level)
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND: %q", c.Cache.Backend)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid CACHE_TTL: %s", c.Cache.TTL)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid MAX_BODY_BYTES: %d", c.HTTP.MaxBodyBytes)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("invalid RATE_LIMIT_RPS: %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_BURST: %d", c.RateLimit.Burst)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must not be empty")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
