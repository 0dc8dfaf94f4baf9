package s3storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// MediaStore uploads media files to an S3-compatible bucket (MinIO in
// development) and hands back public URLs. It is the only component that
// talks to object storage; everything upstream sees store-then-commit
// semantics through the MediaStorageSvc port.
type MediaStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ portssvc.MediaStorageSvc = (*MediaStore)(nil)

// NewMediaStore builds the S3 client from application config. Static
// credentials plus a custom endpoint keep it MinIO-compatible.
func NewMediaStore(ctx context.Context, cfg *config.Config) (*MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	})

	baseURL := cfg.MediaBaseURL
	if baseURL == "" {
		baseURL = strings.TrimSuffix(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &MediaStore{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store uploads the file at localPath under folder and returns its public
// URL. Any failure surfaces as apperrors.ErrUpload so callers short-circuit
// before persisting a dangling reference.
func (m *MediaStore) Store(ctx context.Context, localPath string, folder string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, apperrors.ErrUpload)
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	key := path.Join(folder, uuid.NewString()+ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", key, apperrors.ErrUpload)
	}

	return m.baseURL + "/" + key, nil
}
