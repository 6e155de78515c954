package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/common"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
)

// objectAPI is the part of *s3.Client used by ObjectStore.
type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// ObjectSettings locate the archive object.
type ObjectSettings struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
	Key          string
}

// ObjectStore is the object-storage backend. It reads and writes a single
// JSON object and works with MinIO as well as AWS S3.
type ObjectStore struct {
	api    objectAPI
	bucket string
	key    string
	codec  *codec.Codec
	log    logging.Logger
	now    func() time.Time
}

// OpenObjectStore builds an S3 client from static credentials.
func OpenObjectStore(ctx context.Context, set ObjectSettings, c *codec.Codec, log logging.Logger, now func() time.Time) (*ObjectStore, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(set.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(set.AccessKey, set.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading S3 config: %w", err)
	}

	api := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if set.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(set.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewObjectStore(api, set.Bucket, set.Key, c, log, now), nil
}

func NewObjectStore(api objectAPI, bucket, key string, c *codec.Codec, log logging.Logger, now func() time.Time) *ObjectStore {
	if now == nil {
		now = time.Now
	}
	if key == "" {
		key = "archive.json"
	}
	return &ObjectStore{api: api, bucket: bucket, key: key, codec: c, log: log, now: now}
}

func (s *ObjectStore) Name() string { return "s3" }

func (s *ObjectStore) Close() error { return nil }

// Load never fails: a missing object, a transport error or unreadable
// content is logged and answered with the seed document.
func (s *ObjectStore) Load(ctx context.Context) (*archive.Document, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			s.log.Warn(ctx, "archive object missing, using seed", "bucket", s.bucket, "key", s.key, "error", common.ErrRemoteReadDegraded)
		} else {
			s.log.Error(ctx, "archive object read failed, using seed", "bucket", s.bucket, "key", s.key, "error", fmt.Errorf("%w: %v", common.ErrRemoteReadDegraded, err))
		}
		return archive.Fallback(s.now()), nil
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil || len(data) == 0 {
		s.log.Warn(ctx, "archive object empty, using seed", "bucket", s.bucket, "key", s.key, "error", err)
		return archive.Fallback(s.now()), nil
	}

	doc, _, err := s.codec.Decode(data)
	if err != nil {
		s.log.Error(ctx, "archive object unreadable, using seed", "bucket", s.bucket, "key", s.key, "error", err)
		return archive.Fallback(s.now()), nil
	}
	return doc, nil
}

// Save overwrites the object. Failures are wrapped in
// common.ErrRemoteWriteFailed.
func (s *ObjectStore) Save(ctx context.Context, doc *archive.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding archive: %v", common.ErrRemoteWriteFailed, err)
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.log.Error(ctx, "archive object write failed", "bucket", s.bucket, "key", s.key, "error", err)
		return fmt.Errorf("%w: %v", common.ErrRemoteWriteFailed, err)
	}
	return nil
}
