package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Report     ReportConfig     `mapstructure:"report"`
	Validation ValidationConfig `mapstructure:"validation"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig holds where validation results are kept.
type StorageConfig struct {
	ResultsDir string `mapstructure:"results_dir"`
}

// ReportConfig holds the institutional texts and assets of the PDF.
type ReportConfig struct {
	AssetsDir      string   `mapstructure:"assets_dir"`
	SequencePrefix string   `mapstructure:"sequence_prefix"` // empty disables document numbers
	Place          string   `mapstructure:"place"`
	TimeZone       string   `mapstructure:"time_zone"`
	Letterhead     []string `mapstructure:"letterhead"`
	Signature      []string `mapstructure:"signature"`
}

// ValidationConfig tunes the content checks.
type ValidationConfig struct {
	DateColumnTokens []string `mapstructure:"date_column_tokens"`
	MaxExamples      int      `mapstructure:"max_examples"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.max_upload_bytes", 256*1024*1024)
	v.SetDefault("storage.results_dir", "./resultados")
	v.SetDefault("report.assets_dir", "./logos")
	v.SetDefault("report.sequence_prefix", "")
	v.SetDefault("report.place", "Ciudad de México")
	v.SetDefault("report.time_zone", "America/Mexico_City")
	v.SetDefault("report.letterhead", []string{
		"Unidad de Innovación de la Gestión Pública",
		"Dirección General de Datos y Transparencia Proactiva",
	})
	v.SetDefault("report.signature", []string{
		"Atentamente",
		"Datos Abiertos",
		"Dirección de Innovación y Análisis de Datos",
	})
	v.SetDefault("validation.date_column_tokens", []string{"fecha"})
	v.SetDefault("validation.max_examples", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("ODCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Location returns the configured report time zone, falling back to UTC.
func (c ReportConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
