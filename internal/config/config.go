package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	CatalogURL      string
	SheetWebhookURL string
	DraftServiceURL string
	SyncWorkers     int
	SyncQueueSize   int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSyncWorkers     = 2
	defaultSyncQueueSize   = 64
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		CatalogURL:      getString(lookup, "CATALOG_URL", ""),
		SheetWebhookURL: getString(lookup, "SHEET_WEBHOOK_URL", ""),
		DraftServiceURL: getString(lookup, "DRAFT_SERVICE_URL", ""),
		SyncWorkers:     getInt(lookup, "SYNC_WORKERS", defaultSyncWorkers),
		SyncQueueSize:   getInt(lookup, "SYNC_QUEUE_SIZE", defaultSyncQueueSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogURL, "catalog", cfg.CatalogURL, "Product catalog source URL (empty disables catalog checks)")
	fs.StringVar(&cfg.SheetWebhookURL, "sheet", cfg.SheetWebhookURL, "Spreadsheet sync webhook URL (empty disables sync)")
	fs.StringVar(&cfg.DraftServiceURL, "draft", cfg.DraftServiceURL, "Email draft service URL (empty uses local template)")
	fs.IntVar(&cfg.SyncWorkers, "sync-workers", cfg.SyncWorkers, "Number of concurrent sync workers")
	fs.IntVar(&cfg.SyncQueueSize, "sync-queue", cfg.SyncQueueSize, "Pending sync queue capacity")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SyncWorkers <= 0 {
		cfg.SyncWorkers = defaultSyncWorkers
	}

	if cfg.SyncQueueSize <= 0 {
		cfg.SyncQueueSize = defaultSyncQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
