package storage

import (
	"context"
	"time"

	"pickleball-api/core/config"
	"pickleball-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// IStorage resolves stored image object keys to browsable URLs
type IStorage interface {
	ResolveImageURL(ctx context.Context, key string) (string, error)
}

type Storage struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
}

var instance *Storage

func GetStorage() IStorage {
	return instance
}

func InitStorage(cfg config.S3Config) *Storage {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	client := s3.New(opts)
	instance = &Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		ttl:       time.Duration(cfg.PresignTTL) * time.Minute,
	}
	logger.Info("S3 storage initialized", "region", cfg.Region, "bucket", cfg.Bucket)
	return instance
}

// ResolveImageURL returns a presigned GET URL for an object key. Keys that
// already look like absolute URLs pass through untouched, so seeded and demo
// records can carry external image links.
func (s *Storage) ResolveImageURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if len(key) > 8 && (key[:7] == "http://" || key[:8] == "https://") {
		return key, nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		logger.Error("Storage:ResolveImageURL:Error", "key", key, "error", err)
		return "", err
	}
	return req.URL, nil
}
