package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type ValkeyConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// GeneratorConfig holds the defaults applied when a request omits an
// option.
type GeneratorConfig struct {
	SpacingMeters   float64 `mapstructure:"spacing_m"`
	StartLetter     string  `mapstructure:"start_letter"`
	StartNumber     int     `mapstructure:"start_number"`
	NumberingStyle  string  `mapstructure:"numbering_style"`
	DestinationSide string  `mapstructure:"destination_side"`
}

// Defaults converts the generator section into a RowConfig.
func (g GeneratorConfig) Defaults() domain.RowConfig {
	return domain.RowConfig{
		SpacingMeters:   g.SpacingMeters,
		StartLetter:     g.StartLetter,
		StartNumber:     g.StartNumber,
		NumberingStyle:  g.NumberingStyle,
		DestinationSide: domain.Side(g.DestinationSide),
	}
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("valkey.enabled", true)
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("generator.spacing_m", 6.0)
	v.SetDefault("generator.start_letter", "F")
	v.SetDefault("generator.start_number", 1)
	v.SetDefault("generator.numbering_style", domain.NumberingZeroPadded)
	v.SetDefault("generator.destination_side", string(domain.SideA))

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ROWGEN_SERVER_PORT → server.port
	v.SetEnvPrefix("ROWGEN")
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
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Valkey.Enabled && c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required when valkey.enabled")
	}
	if c.Generator.SpacingMeters <= 0 {
		errs = append(errs, fmt.Sprintf("generator.spacing_m must be positive, got %g", c.Generator.SpacingMeters))
	}
	if c.Generator.StartNumber < 0 {
		errs = append(errs, "generator.start_number must be non-negative")
	}
	switch c.Generator.NumberingStyle {
	case domain.NumberingZeroPadded, domain.NumberingUnpadded:
	default:
		errs = append(errs, fmt.Sprintf("generator.numbering_style must be %q or %q", domain.NumberingZeroPadded, domain.NumberingUnpadded))
	}
	switch domain.Side(c.Generator.DestinationSide) {
	case domain.SideA, domain.SideB, domain.SideNone:
	default:
		errs = append(errs, "generator.destination_side must be A, B or none")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
