package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Temporal  TemporalConfig  `mapstructure:"temporal"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Flight    FlightConfig    `mapstructure:"flight"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
}

type TemporalConfig struct {
	HostPort  string `mapstructure:"host_port"`
	Namespace string `mapstructure:"namespace"`
	TaskQueue string `mapstructure:"task_queue"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	OTLPAddr    string `mapstructure:"otlp_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// ProvidersConfig configures the outbound data providers.
type ProvidersConfig struct {
	OpenMeteoURL string `mapstructure:"open_meteo_url"`
	TimeAPIURL   string `mapstructure:"time_api_url"`
	RatesURL     string `mapstructure:"rates_url"`
	GeoapifyURL  string `mapstructure:"geoapify_url"`
	GeoapifyKey  string `mapstructure:"geoapify_key"`
	NominatimURL string `mapstructure:"nominatim_url"`
	UserAgent    string `mapstructure:"user_agent"`
	TimeoutSec   int    `mapstructure:"timeout_seconds"`
	MaxRetries   int    `mapstructure:"max_retries"`
}

// Timeout returns the per-request timeout.
func (p ProvidersConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSec) * time.Second
}

type FlightConfig struct {
	PathSteps        int `mapstructure:"path_steps"`
	AnimationDelayMs int `mapstructure:"animation_delay_ms"`
}

// AnimationDelay returns the pause between animation frames.
func (f FlightConfig) AnimationDelay() time.Duration {
	return time.Duration(f.AnimationDelayMs) * time.Millisecond
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "flyworld")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "flyworld")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "briefing-prefetch")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.otlp_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("providers.open_meteo_url", "https://api.open-meteo.com")
	v.SetDefault("providers.time_api_url", "https://www.timeapi.io")
	v.SetDefault("providers.rates_url", "https://open.er-api.com")
	v.SetDefault("providers.geoapify_url", "https://api.geoapify.com")
	v.SetDefault("providers.geoapify_key", "")
	v.SetDefault("providers.nominatim_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("providers.user_agent", "flyworld/1.0")
	v.SetDefault("providers.timeout_seconds", 10)
	v.SetDefault("providers.max_retries", 3)
	v.SetDefault("flight.path_steps", 150)
	v.SetDefault("flight.animation_delay_ms", 40)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: FLYWORLD_DATABASE_HOST → database.host
	v.SetEnvPrefix("FLYWORLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Database.Host == "" {
		errs = append(errs, "database.host is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, "database.user is required")
	}
	if c.Database.DBName == "" {
		errs = append(errs, "database.dbname is required")
	}
	if c.NATS.URL == "" {
		errs = append(errs, "nats.url is required")
	}
	if c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required")
	}
	if c.Temporal.HostPort == "" {
		errs = append(errs, "temporal.host_port is required")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Providers.TimeoutSec <= 0 {
		errs = append(errs, "providers.timeout_seconds must be positive")
	}
	if c.Providers.MaxRetries < 0 {
		errs = append(errs, "providers.max_retries must not be negative")
	}
	if c.Providers.UserAgent == "" {
		errs = append(errs, "providers.user_agent is required")
	}
	if c.Flight.PathSteps < 1 || c.Flight.PathSteps > 1000 {
		errs = append(errs, fmt.Sprintf("flight.path_steps must be 1-1000, got %d", c.Flight.PathSteps))
	}
	if c.Flight.AnimationDelayMs < 0 {
		errs = append(errs, "flight.animation_delay_ms must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
