// Package assets implements ports.AssetStore on S3-compatible object storage
// (AWS S3, Cloudflare R2, MinIO). Objects are written under
// <folder>/<uuid>.<ext> and referenced by public URL when a public base URL
// is configured, or by bare key otherwise.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// sniffLen is how many bytes http.DetectContentType inspects.
const sniffLen = 512

// Compile-time interface checks.
var (
	_ ports.AssetStore = (*Store)(nil)
	_ ports.AssetStore = Discard{}
	_ ObjectAPI        = (*s3.Client)(nil)
)

// ObjectAPI is the subset of the S3 client used by Store.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client from cfg. All SDK traffic goes through
// httpClient, which carries the retry, breaker and tracing policy, so the
// SDK's own retryer is reduced to a single attempt.
// httpClient goes on the S3 options, not the shared config, which must keep
// the SDK's buildable client for AWS_CA_BUNDLE to load.
func NewClient(ctx context.Context, cfg *config.AssetsConfig, httpClient s3.HTTPClient) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.HTTPClient = httpClient
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// Store uploads images to a single bucket.
type Store struct {
	api           ObjectAPI
	bucket        string
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

// New returns a Store writing to cfg.Bucket through api.
func New(api ObjectAPI, cfg *config.AssetsConfig, logger *slog.Logger) *Store {
	return &Store{
		api:           api,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxUploadBytes,
		logger:        logger,
	}
}

// Upload implements ports.AssetStore. The body is buffered so the request
// can be signed and replayed by the retrying transport.
func (s *Store) Upload(ctx context.Context, folder string, file ports.Upload) (string, error) {
	body, err := io.ReadAll(io.LimitReader(file.Body, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w: %w", file.Filename, domain.ErrUploadFailed, err)
	}
	if int64(len(body)) > s.maxBytes {
		return "", fmt.Errorf("%s exceeds %d bytes: %w", file.Filename, s.maxBytes, domain.ErrUploadFailed)
	}

	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(body[:min(len(body), sniffLen)])
	}

	key := objectKey(folder, file.Filename, contentType)

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w: %w", key, domain.ErrUploadFailed, translateError(err))
	}

	s.logger.DebugContext(ctx, "asset uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(body)),
	)
	return s.refFor(key), nil
}

// Delete implements ports.AssetStore.
func (s *Store) Delete(ctx context.Context, ref string) error {
	key := s.keyFor(ref)
	if key == "" {
		return nil
	}

	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, translateError(err))
	}
	return nil
}

func (s *Store) refFor(key string) string {
	if s.publicBaseURL == "" {
		return key
	}
	return s.publicBaseURL + "/" + key
}

func (s *Store) keyFor(ref string) string {
	if s.publicBaseURL != "" {
		ref = strings.TrimPrefix(ref, s.publicBaseURL+"/")
	}
	return strings.TrimPrefix(ref, "/")
}

// objectKey returns <folder>/<uuid>.<ext>. The extension comes from the
// filename, falling back to the content type; it is omitted when neither
// yields one.
func objectKey(folder, filename, contentType string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" || ext == "." {
		ext = ""
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return path.Join(folder, uuid.NewString()+ext)
}

// Discard is the asset store used when object storage is not configured.
// Every upload fails with domain.ErrUploadFailed, which callers log and
// otherwise ignore.
type Discard struct{}

// Upload implements ports.AssetStore.
func (Discard) Upload(_ context.Context, folder string, file ports.Upload) (string, error) {
	return "", fmt.Errorf("asset storage disabled, dropping %s/%s: %w", folder, file.Filename, domain.ErrUploadFailed)
}

// Delete implements ports.AssetStore.
func (Discard) Delete(context.Context, string) error { return nil }
