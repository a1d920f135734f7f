package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignTTL = 5 * time.Minute

// MediaService hands out presigned URLs so clients upload and read media
// directly against the object store; no bytes pass through this server.
type MediaService struct {
	Client *s3.Client
	Bucket string
}

// NewMediaService builds a MediaService against the configured bucket
func NewMediaService(ctx context.Context, region, bucket string) (*MediaService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

// UploadURL generates a presigned URL for uploading a file and returns the
// object key the upload will land under.
func (ms *MediaService) UploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	if fileName == "" {
		return "", "", fmt.Errorf("fileName is required: %w", ErrValidation)
	}
	key := "media/" + time.Now().UTC().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presigned, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// ReadURL generates a presigned URL for reading an uploaded object
func (ms *MediaService) ReadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required: %w", ErrValidation)
	}
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presigned, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
