// Package config resolves runtime settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"pastamakers/internal/reservation"
	"pastamakers/internal/telemetry"
)

// Environment variable names.
const (
	EnvAPIURL       = "PASTA_API_URL"
	EnvMenuFile     = "PASTA_MENU_FILE"
	EnvLogFile      = "PASTA_LOG_FILE"
	EnvLogLevel     = "PASTA_LOG_LEVEL"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// DefaultEnvFile is read when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

// DefaultLogFile keeps logs off the terminal the UI draws on.
const DefaultLogFile = "pastamakers.log"

// Config holds the settings for one run.
type Config struct {
	APIBaseURL   string
	MenuFile     string // empty = bundled menu
	LogFile      string
	LogLevel     string
	OTLPEndpoint string
	OTLPInsecure bool
	ServiceName  string
}

// Load parses args, then fills anything not given on the command line from
// the environment (after loading the .env file), then from defaults.
func Load(args []string) (Config, error) {
	var cfg Config
	var envFile string
	logFileSet := false

	fs := flag.NewFlagSet("pastamakers", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.APIBaseURL, "api", "", "reservation API base URL")
	fs.StringVar(&cfg.MenuFile, "menu", "", "menu JSON file (defaults to the bundled menu)")
	fs.Func("log-file", "log destination; '-' for stderr, empty to discard", func(v string) error {
		cfg.LogFile = v
		logFileSet = true
		return nil
	})
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&envFile, "env", "", "dotenv file to load (default .env when present)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = getEnv(EnvAPIURL, reservation.DefaultBaseURL)
	}
	if cfg.MenuFile == "" {
		cfg.MenuFile = os.Getenv(EnvMenuFile)
	}
	if !logFileSet {
		if v, ok := os.LookupEnv(EnvLogFile); ok {
			cfg.LogFile = v
		} else {
			cfg.LogFile = DefaultLogFile
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv(EnvLogLevel, "info")
	}
	cfg.OTLPEndpoint = os.Getenv(EnvOTLPEndpoint)
	cfg.ServiceName = getEnv(EnvServiceName, telemetry.DefaultServiceName)
	if raw := os.Getenv(EnvOTLPInsecure); raw != "" {
		insecure, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q", EnvOTLPInsecure, raw)
		}
		cfg.OTLPInsecure = insecure
	}

	return cfg, nil
}

// Telemetry returns the tracing settings.
func (c Config) Telemetry() telemetry.Config {
	return telemetry.Config{
		Endpoint:    c.OTLPEndpoint,
		ServiceName: c.ServiceName,
		Insecure:    c.OTLPInsecure,
	}
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. An explicit path must exist.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("env file %q: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
