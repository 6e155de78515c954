// Package config handles configuration for the archive server: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import "time"

// Storage backends selectable with Config.Storage.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

// Config holds runtime settings for the archive server.
//
// Fields:
//   - Addr: bind address of the HTTP server.
//   - Storage: remote backend, one of "file", "postgres" or "s3".
//   - DataFile: path of the JSON file used by the file backend.
//   - TableURL / TableKey: PostgreSQL DSN and password of the hosted table.
//     Both are required for the postgres backend.
//   - S3AccessKey / S3SecretKey / S3Bucket / S3Region / S3BaseEndpoint /
//     S3ObjectKey: object storage settings for the s3 backend.
//   - LogFile: optional rotating log file written next to stdout.
//   - MaxBodyBytes: upper bound for POST bodies.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Addr            string
	Storage         string
	DataFile        string
	TableURL        string
	TableKey        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3ObjectKey     string
	LogFile         string
	LogLevel        string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.Storage = StorageFile
	c.DataFile = "data/archive.json"
	c.S3Region = "us-east-1"
	c.S3ObjectKey = "archive.json"
	c.LogLevel = "info"
	c.MaxBodyBytes = 10 << 20
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then the optional JSON
// file, then the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
