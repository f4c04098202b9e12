package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	cfg "github.com/complytrack/complytrack/internal/config"
)

// Storage hands out download URLs for stored documents. There is no
// upload path yet, so the interface is read-only.
type Storage interface {
	// PresignedURL returns a time-limited download URL for the object at
	// the given path.
	PresignedURL(path string, expiry time.Duration) (string, error)
}

// S3Storage implements Storage for S3-compatible backends (AWS S3, MinIO,
// DigitalOcean Spaces, Cloudflare R2, ...).
type S3Storage struct {
	presignClient *s3.PresignClient
	bucket        string
}

// New builds an S3 storage from app config, or returns nil when no bucket
// is configured. Document listings degrade gracefully without it.
func New(c *cfg.Config) (Storage, error) {
	if c.S3Bucket == "" {
		slog.Info("no S3 bucket configured, document downloads disabled")
		return nil, nil
	}

	slog.Info("initializing S3 storage",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)

	ctx := context.Background()

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(c.S3Region))

	if c.S3AccessKey != "" && c.S3SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.S3AccessKey, c.S3SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if c.S3Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = true // required for MinIO and friends
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Storage{
		presignClient: s3.NewPresignClient(client),
		bucket:        c.S3Bucket,
	}, nil
}

func (s *S3Storage) PresignedURL(path string, expiry time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	presignedReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}

	return presignedReq.URL, nil
}
