package storage

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PresignExpiry is the longest lifetime S3 accepts for a presigned GET.
const PresignExpiry = 7 * 24 * time.Hour

// ObjectAPI is the part of *minio.Client the storage layer calls.
type ObjectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

//go:generate mockgen -source=object_storage.go -destination=mock/object_storage_mock.go -package=mock
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	// Upload stores data under key and returns a URL the object can be
	// fetched from.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	URL(ctx context.Context, key string) (string, error)
}

type objectStorage struct {
	api           ObjectAPI
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// NewObjectStorage builds the storage layer. When publicBaseURL is set,
// object URLs are publicBaseURL/key; otherwise they are presigned.
func NewObjectStorage(api ObjectAPI, bucket, publicBaseURL string, logger ...*zap.Logger) ObjectStorage {
	l := zap.L().Named("storage.object")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.object")
	}
	return &objectStorage{
		api:           api,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        l,
	}
}

func (s *objectStorage) EnsureBucket(ctx context.Context) error {
	found, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	s.logger.Info("creating bucket", zap.String("bucket", s.bucket))
	return s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *objectStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	info, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("put object failed", zap.String("key", key), zap.Error(err))
		return "", err
	}
	s.logger.Debug("object stored",
		zap.String("key", key),
		zap.Int64("size", info.Size),
		zap.String("etag", info.ETag),
	)
	return s.URL(ctx, key)
}

func (s *objectStorage) URL(ctx context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + strings.TrimLeft(key, "/"), nil
	}
	u, err := s.api.PresignedGetObject(ctx, s.bucket, key, PresignExpiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
