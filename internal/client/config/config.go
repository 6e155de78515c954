package config

import "time"

// Config holds runtime settings for the life archive CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the archive server.
//   - LocalDBPath: SQLite file holding the on-device copy.
//   - ExportDir: directory for backup files written by "export".
//   - LogLevel: debug, info, warn or error.
//   - OnlineCheckInterval: how often the client probes server reachability.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	LocalDBPath         string
	ExportDir           string
	LogLevel            string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.LocalDBPath = "lifearchive.db"
	c.ExportDir = "backups"
	c.LogLevel = "warn"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
