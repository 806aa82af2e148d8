package config

import (
	"time"
)

// Source kinds for the daily CSV exports
const (
	SourceHTTP  = "http"
	SourceMinIO = "minio"
	SourceDir   = "dir"
)

// Config holds the application configuration
// This is the single source of truth for all configuration options
type Config struct {
	Port string // Server port, e.g. ":8080"

	// Data source configuration
	SourceKind  string // Where the daily CSV exports live: "http", "minio" or "dir"
	DataBaseURL string // Base URL serving the exports (http source)
	DataDir     string // Local directory containing the exports (dir source)

	// MinIO settings (minio source)
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	// CSVFiles is the fixed list of daily export filenames to load. Each name
	// must embed the record date as M(M)-D(D)-YYYY somewhere in the name.
	CSVFiles []string

	CacheExpiry            time.Duration // How long a completed load satisfies repeat load requests
	TopItemsLimit          int           // Number of entries in the top chain/token lists
	StatsBroadcastInterval time.Duration // Interval for pushing stats snapshots to WebSocket clients
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Port: ":8080",

		SourceKind:  SourceDir,
		DataBaseURL: "http://localhost:8081",
		DataDir:     "data",

		MinIOEndpoint:  "localhost:9001",
		MinIOAccessKey: "minioadmin",
		MinIOSecretKey: "minioadmin",
		MinIOBucket:    "ccip-exports",
		MinIOUseSSL:    false,

		CSVFiles: []string{
			"CCIP Stats - 08-14-2025 CCIP.csv",
			"CCIP Stats - 08-15-2025 CCIP.csv",
			"CCIP Stats - 08-16-2025 CCIP.csv",
			"CCIP Stats - 08-17-2025 CCIP.csv",
			"08-18-2025 CCIP.csv",
			"08-19-2025 CCIP.csv",
			"08-20-2025 CCIP.csv",
			"08-21-2025 CCIP.csv",
			"08-22-2025 CCIP.csv",
			"08-23-2025 CCIP.csv",
			"08-24-2025 CCIP.csv",
			"08-25-2025 CCIP.csv",
			"08-26-2025 CCIP.csv",
			"08-27-2025 CCIP.csv",
			"08-28-2025 CCIP.csv",
			"08-29-2025 CCIP.csv",
			"08-30-2025 CCIP.csv",
			"08-31-2025 CCIP.csv",
			"09-1-2025 CCIP.csv",
			"09-02-2025 CCIP.csv",
			"09-03-2025 CCIP.csv",
			"09-04-2025 CCIP.csv",
			"09-05-2025 CCIP.csv",
			"09-06-2025 CCIP.csv",
			"09-07-2025 CCIP.csv",
			"09-08-2025 CCIP.csv",
			"09-09-2025 CCIP.csv",
			"09-10-2025 CCIP.csv",
			"09-11-2025 CCIP.csv",
			"09-12-2025 CCIP.csv",
			"09-13-2025 CCIP.csv",
			"09-14-2025 CCIP.csv",
			"09-15-2025 CCIP.csv",
			"09-16-2025 CCIP.csv",
			"09-17-2025 CCIP.csv",
			"09-18-2025 CCIP.csv",
			"09-19-2025 CCIP.csv",
			"09-20-2025 CCIP.csv",
			"09-21-2025 CCIP.csv",
			"09-22-2025 CCIP.csv",
			"09-23-2025 CCIP.csv",
		},

		CacheExpiry:            5 * time.Minute,
		TopItemsLimit:          10,
		StatsBroadcastInterval: 15 * time.Second,
	}
}
