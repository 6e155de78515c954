package config

import (
	"os"
	"strconv"
	"time"
)

var lookupEnv = os.LookupEnv

func envString(dst *string, key string) {
	if v, ok := lookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// parseEnv overlays Config with environment variables. Empty variables are
// treated as unset; malformed numbers and durations are ignored.
//
//	ARCHIVE_ADDR, ARCHIVE_STORAGE, ARCHIVE_DATA_FILE,
//	ARCHIVE_TABLE_URL, ARCHIVE_TABLE_KEY,
//	ARCHIVE_S3_ACCESS_KEY, ARCHIVE_S3_SECRET_KEY, ARCHIVE_S3_BUCKET,
//	ARCHIVE_S3_REGION, ARCHIVE_S3_ENDPOINT, ARCHIVE_S3_OBJECT_KEY,
//	ARCHIVE_LOG_FILE, ARCHIVE_LOG_LEVEL, ARCHIVE_MAX_BODY_BYTES,
//	ARCHIVE_SHUTDOWN_TIMEOUT
func parseEnv(cfg *Config) {
	envString(&cfg.Addr, "ARCHIVE_ADDR")
	envString(&cfg.Storage, "ARCHIVE_STORAGE")
	envString(&cfg.DataFile, "ARCHIVE_DATA_FILE")
	envString(&cfg.TableURL, "ARCHIVE_TABLE_URL")
	envString(&cfg.TableKey, "ARCHIVE_TABLE_KEY")
	envString(&cfg.S3AccessKey, "ARCHIVE_S3_ACCESS_KEY")
	envString(&cfg.S3SecretKey, "ARCHIVE_S3_SECRET_KEY")
	envString(&cfg.S3Bucket, "ARCHIVE_S3_BUCKET")
	envString(&cfg.S3Region, "ARCHIVE_S3_REGION")
	envString(&cfg.S3BaseEndpoint, "ARCHIVE_S3_ENDPOINT")
	envString(&cfg.S3ObjectKey, "ARCHIVE_S3_OBJECT_KEY")
	envString(&cfg.LogFile, "ARCHIVE_LOG_FILE")
	envString(&cfg.LogLevel, "ARCHIVE_LOG_LEVEL")

	if v, ok := lookupEnv("ARCHIVE_MAX_BODY_BYTES"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		}
	}
	if v, ok := lookupEnv("ARCHIVE_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
}
