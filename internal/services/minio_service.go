package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"sequence-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService stores poster uploads and archived exports in an S3 compatible bucket.
type MinIOService struct {
	client        *minio.Client
	bucket        string
	region        string
	publicURL     string
	posterPrefix  string
	exportPrefix  string
	presignExpiry time.Duration
	logger        *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:        minioClient,
		bucket:        cfg.BucketName,
		region:        cfg.Region,
		publicURL:     cfg.PublicURL,
		posterPrefix:  strings.Trim(cfg.PosterPrefix, "/"),
		exportPrefix:  strings.Trim(cfg.ExportPrefix, "/"),
		presignExpiry: cfg.PresignExpiry,
		logger:        logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	// Posters are referenced directly by the records, so they must be readable
	// without credentials. Exports stay private.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s/*"]
			}
		]
	}`, s.bucket, s.posterPrefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Poster prefix set to public read")
	return nil
}

// GeneratePresignedURL returns an upload URL for a poster and the public URL
// to store in the record's poster field once the upload completes.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectPath := posterObjectPath(s.posterPrefix, filename, uuid.New().String()[:8])

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, s.presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.objectURL(objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     s.presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// PutExport uploads an export document under the export prefix.
func (s *MinIOService) PutExport(ctx context.Context, filename string, data []byte) (string, error) {
	objectPath := path.Join(s.exportPrefix, filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectPath, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to upload export")
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"objectPath": objectPath,
		"size":       len(data),
	}).Info("Export archived")

	return s.objectURL(objectPath), nil
}

// objectURL builds the public URL of an object from the configured public
// base, keeping only its scheme and host.
func (s *MinIOService) objectURL(objectPath string) string {
	return publicObjectURL(s.publicURL, s.bucket, objectPath)
}

func publicObjectURL(publicURL, bucket, objectPath string) string {
	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(publicURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, host, bucket, objectPath)
}

// posterObjectPath makes an upload key unique by suffixing the base name.
func posterObjectPath(prefix, filename, suffix string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return path.Join(prefix, fmt.Sprintf("%s_%s%s", name, suffix, ext))
}
