package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lifearchive/internal/flagx"
	"github.com/dmitrijs2005/lifearchive/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Fields left out of the
// file keep their current value.
type JsonConfig struct {
	Addr            *string         `json:"addr"`
	Storage         *string         `json:"storage"`
	DataFile        *string         `json:"data_file"`
	TableURL        *string         `json:"table_url"`
	TableKey        *string         `json:"table_key"`
	S3AccessKey     *string         `json:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key"`
	S3Bucket        *string         `json:"s3_bucket"`
	S3Region        *string         `json:"s3_region"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint"`
	S3ObjectKey     *string         `json:"s3_object_key"`
	LogFile         *string         `json:"log_file"`
	LogLevel        *string         `json:"log_level"`
	MaxBodyBytes    *int64          `json:"max_body_bytes"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// parseJson overlays Config with the file named by -c or -config. Nothing
// happens when neither flag is given. Unreadable files and invalid JSON
// panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.Addr, c.Addr)
	set(&config.Storage, c.Storage)
	set(&config.DataFile, c.DataFile)
	set(&config.TableURL, c.TableURL)
	set(&config.TableKey, c.TableKey)
	set(&config.S3AccessKey, c.S3AccessKey)
	set(&config.S3SecretKey, c.S3SecretKey)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.S3ObjectKey, c.S3ObjectKey)
	set(&config.LogFile, c.LogFile)
	set(&config.LogLevel, c.LogLevel)
	set(&config.MaxBodyBytes, c.MaxBodyBytes)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
