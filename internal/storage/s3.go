package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service stores objects in an S3-compatible bucket (Cloudflare R2 in
// production) and maps keys to public URLs under a configured base.
type S3Service struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

func NewS3Service(client *s3.Client, bucket, publicBaseURL string) *S3Service {
	return &S3Service{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// R2Config carries the settings needed to reach a Cloudflare R2 bucket
// over the S3 API.
type R2Config struct {
	AccessKey     string
	SecretKey     string
	AccountID     string
	Bucket        string
	PublicBaseURL string
}

// NewR2Service builds an S3Service against the R2 account endpoint.
// Blank credentials are refused up front with ErrMissingCredentials so
// startup can fail fast instead of erroring on the first upload.
func NewR2Service(ctx context.Context, cfg R2Config) (*S3Service, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg, err := awscfg.LoadDefaultConfig(ctx,
		awscfg.WithRegion("auto"),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	return NewS3Service(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

// Upload writes the object under the given key verbatim. Keys are the
// uploaded filenames; there is no sanitization or collision handling.
func (s *S3Service) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if s.bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	if key == "" {
		return fmt.Errorf("object key is required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

func (s *S3Service) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

var _ Service = (*S3Service)(nil)
