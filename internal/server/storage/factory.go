package storage

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/server/config"
)

var (
	openTableStore = func(ctx context.Context, dsn, key string, c *codec.Codec, log logging.Logger, now func() time.Time) (Store, error) {
		s, err := OpenTableStore(ctx, dsn, key, c, log, now)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	openObjectStore = func(ctx context.Context, set ObjectSettings, c *codec.Codec, log logging.Logger, now func() time.Time) (Store, error) {
		s, err := OpenObjectStore(ctx, set, c, log, now)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

// New returns the backend selected by cfg.Storage. A hosted backend whose
// settings are incomplete falls back to the file backend, as does an
// unknown storage name. Only invalid settings of a fully configured hosted
// backend are returned; an unreachable backend degrades at read time.
func New(ctx context.Context, cfg *config.Config, c *codec.Codec, log logging.Logger, now func() time.Time) (Store, error) {
	file := func() Store { return NewFileStore(cfg.DataFile, c, log, now) }

	switch cfg.Storage {
	case config.StoragePostgres:
		if cfg.TableURL == "" || cfg.TableKey == "" {
			log.Warn(ctx, "hosted table not configured, using file storage",
				"hasTableURL", cfg.TableURL != "", "hasTableKey", cfg.TableKey != "")
			return file(), nil
		}
		return openTableStore(ctx, cfg.TableURL, cfg.TableKey, c, log, now)

	case config.StorageS3:
		if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			log.Warn(ctx, "object storage not configured, using file storage",
				"hasBucket", cfg.S3Bucket != "", "hasCredentials", cfg.S3AccessKey != "" && cfg.S3SecretKey != "")
			return file(), nil
		}
		return openObjectStore(ctx, ObjectSettings{
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Key:          cfg.S3ObjectKey,
		}, c, log, now)

	case config.StorageFile, "":
		return file(), nil

	default:
		log.Warn(ctx, "unknown storage, using file storage", "storage", cfg.Storage)
		return file(), nil
	}
}
