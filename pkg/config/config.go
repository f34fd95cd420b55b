package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Provider struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
		// Fallback prices returned when the upstream quote fetch fails.
		FallbackPrices map[string]float64 `yaml:"fallback_prices"`
	} `yaml:"provider"`
	Stream struct {
		Enabled        bool          `yaml:"enabled"`
		URL            string        `yaml:"url"`
		APIKey         string        `yaml:"api_key"`
		Tickers        []string      `yaml:"tickers"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		PingInterval   time.Duration `yaml:"ping_interval"`
	} `yaml:"stream"`
	Specialist struct {
		Tickers        []string `yaml:"tickers"`         // tickers served by the specialist engine
		PrimaryTicker  string   `yaml:"primary_ticker"`  // ticker that carries the warrant component
		WarrantTickers []string `yaml:"warrant_tickers"` // tickers with a configured warrant position
	} `yaml:"specialist"`
	Scanner struct {
		Universe     []string `yaml:"universe"`
		RefreshAt    string   `yaml:"refresh_at"` // daily HH:MM, server local time
		DefaultLimit int      `yaml:"default_limit"`
		DefaultMin   float64  `yaml:"default_min_score"`
	} `yaml:"scanner"`
	Cache struct {
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
		MemoryMaxSize int `yaml:"memory_max_size"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("STREAM_API_KEY"); v != "" {
		c.Stream.APIKey = v
	}
	if v := os.Getenv("SCANNER_UNIVERSE"); v != "" {
		c.Scanner.Universe = strings.Split(v, ",")
	}
	if v := os.Getenv("SPECIALIST_TICKERS"); v != "" {
		c.Specialist.Tickers = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		if ok {
			c.Cache.Redis.Host = host
			fmt.Sscanf(port, "%d", &c.Cache.Redis.Port)
		} else {
			c.Cache.Redis.Host = v
		}
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Specialist.Tickers) == 0 {
		return fmt.Errorf("specialist.tickers cannot be empty")
	}
	if c.Specialist.PrimaryTicker == "" {
		return fmt.Errorf("specialist.primary_ticker is required")
	}
	if len(c.Scanner.Universe) == 0 {
		return fmt.Errorf("scanner.universe cannot be empty")
	}
	if c.Stream.Enabled && c.Stream.URL == "" {
		return fmt.Errorf("stream.url is required when stream.enabled")
	}
	return nil
}
