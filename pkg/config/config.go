package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"15s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"500ms"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Upstream struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout" default:"3s"`
		Attempts int           `yaml:"attempts" default:"2"`
		Backoff  time.Duration `yaml:"backoff" default:"100ms"`
		Breaker  struct {
			MaxRequests         uint32        `yaml:"max_requests" default:"1"`
			Interval            time.Duration `yaml:"interval" default:"60s"`
			Timeout             time.Duration `yaml:"timeout" default:"30s"`
			ConsecutiveFailures uint32        `yaml:"consecutive_failures" default:"5"`
		} `yaml:"breaker"`
	} `yaml:"upstream"`
	Cache struct {
		TTL     time.Duration `yaml:"ttl" default:"30s"`
		MaxSize int           `yaml:"max_size" default:"1000"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			PoolSize int    `yaml:"pool_size" default:"10"`
			Prefix   string `yaml:"prefix" default:"signalengine"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	RateLimit struct {
		RPS   float64 `yaml:"rps" default:"20"`
		Burst int     `yaml:"burst" default:"40"`
	} `yaml:"ratelimit"`
	Classify struct {
		RegimeBoost   float64 `yaml:"regime_boost" default:"1.3"`
		RegimeDamping float64 `yaml:"regime_damping" default:"0.8"`
	} `yaml:"classify"`
}

// Default returns a config with every default applied.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Upstream.BaseURL != "" {
		u, err := url.Parse(c.Upstream.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("upstream.base_url must be an absolute URL, got '%s'", c.Upstream.BaseURL)
		}
	}
	if c.Upstream.Attempts < 1 {
		return fmt.Errorf("upstream.attempts must be at least 1")
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	if err := ValidateRegimeFactors(c.Classify.RegimeBoost, c.Classify.RegimeDamping); err != nil {
		return fmt.Errorf("classify.%w", err)
	}
	return nil
}

// ValidateRegimeFactors requires boost > 1 and damping in (0,1).
func ValidateRegimeFactors(boost, damping float64) error {
	if boost <= 1 {
		return fmt.Errorf("regime_boost must be > 1, got %g", boost)
	}
	if damping <= 0 || damping >= 1 {
		return fmt.Errorf("regime_damping must be in (0,1), got %g", damping)
	}
	return nil
}
