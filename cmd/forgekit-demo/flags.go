package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	CatalogPath   string
	LogLevel      string
	LogFormat     string
	Debug         bool
	JournalSize   int
	Watch         bool
	WatchDebounce time.Duration
	ShowMetrics   bool
	ShowVersion   bool
	ShowHelp      bool
	Validate      bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.CatalogPath, "catalog",
		getEnv("FORGEKIT_CATALOG", ""),
		"Path to a catalog file; empty runs the built-in catalog (env: FORGEKIT_CATALOG)")

	flag.StringVar(&cfg.CatalogPath, "c",
		getEnv("FORGEKIT_CATALOG", ""),
		"Path to a catalog file; empty runs the built-in catalog (env: FORGEKIT_CATALOG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("FORGEKIT_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: FORGEKIT_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("FORGEKIT_LOG_FORMAT", "text"),
		"Log format: json, text (env: FORGEKIT_LOG_FORMAT)")

	flag.BoolVar(&cfg.Debug, "debug",
		getEnvBool("FORGEKIT_DEBUG", false),
		"Enable debug mode (env: FORGEKIT_DEBUG)")

	flag.IntVar(&cfg.JournalSize, "journal-size",
		getEnvInt("FORGEKIT_JOURNAL_SIZE", 64),
		"Construction journal capacity (env: FORGEKIT_JOURNAL_SIZE)")

	flag.BoolVar(&cfg.Watch, "watch",
		getEnvBool("FORGEKIT_WATCH", false),
		"Watch the catalog file and replay the family walkthrough on change (env: FORGEKIT_WATCH)")

	flag.DurationVar(&cfg.WatchDebounce, "watch-debounce",
		getEnvDuration("FORGEKIT_WATCH_DEBOUNCE", 500*time.Millisecond),
		"Quiet period before a catalog change is applied (env: FORGEKIT_WATCH_DEBOUNCE)")

	flag.BoolVar(&cfg.ShowMetrics, "show-metrics",
		getEnvBool("FORGEKIT_SHOW_METRICS", false),
		"Print construction metrics in Prometheus text format at exit (env: FORGEKIT_SHOW_METRICS)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate the catalog and exit")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	// Override log level if debug is set
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	// Validate catalog file exists when one was named
	if cfg.CatalogPath != "" {
		if _, err := os.Stat(cfg.CatalogPath); err != nil {
			return fmt.Errorf("catalog file not found: %s", cfg.CatalogPath)
		}
	}

	// Watch mode needs a file to watch
	if cfg.Watch && cfg.CatalogPath == "" {
		return fmt.Errorf("watch mode requires -catalog")
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	// Validate journal capacity
	if cfg.JournalSize <= 0 {
		return fmt.Errorf("invalid journal size: %d", cfg.JournalSize)
	}

	// Validate debounce window
	if cfg.WatchDebounce <= 0 {
		return fmt.Errorf("invalid watch debounce: %s", cfg.WatchDebounce)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Object Construction Walkthrough

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Run the built-in walkthrough
  %s

  # Materialize factories from a catalog file
  %s --catalog=catalogs/pets.yaml

  # Watch the catalog and replay the family walkthrough on change
  %s --catalog=catalogs/pets.yaml --watch

  # Run with environment variables
  export FORGEKIT_CATALOG=/etc/forgekit/pets.yaml
  export FORGEKIT_LOG_LEVEL=debug
  %s

  # Validate a catalog only
  %s --catalog=catalogs/pets.yaml --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
