package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config selects the bucket and credentials. The env tags are relative,
// callers embed it under their own prefix (e.g. PAYCODE_S3_BUCKET).
type S3Config struct {
	Bucket      string `env:"BUCKET"`
	Region      string `env:"REGION"`
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	SecretKey   string `env:"SECRET_ACCESS_KEY"`
	// Endpoint points at an S3-compatible service such as MinIO.
	Endpoint       string `env:"ENDPOINT"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`
	// BaseURL is the public URL prefix. Derived from Endpoint or the AWS
	// bucket host when empty.
	BaseURL string `env:"BASE_URL"`
	// KeyPrefix is prepended to every object key, e.g. "codes".
	KeyPrefix string `env:"KEY_PREFIX"`
	// UploadTimeout bounds a single Put. Zero leaves it to the caller's context.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// S3Storage stores files as objects in one bucket. Safe for concurrent use.
type S3Storage struct {
	client        S3Client
	bucket        string
	prefix        string
	baseURL       string
	uploadTimeout time.Duration
}

// S3Option configures NewS3Storage.
type S3Option func(*S3Storage)

// WithS3Client uses client instead of building one from the AWS config.
func WithS3Client(client S3Client) S3Option {
	return func(s *S3Storage) {
		s.client = client
	}
}

// NewS3Storage creates an S3 storage for cfg.Bucket. Unless WithS3Client is
// given, the client is built from the default AWS config chain with the
// static credentials of cfg taking precedence.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: S3 bucket and region are required", ErrInvalidConfig)
	}
	prefix := strings.Trim(cfg.KeyPrefix, "/")
	if strings.Contains(prefix, "..") {
		return nil, fmt.Errorf("%w: key prefix %q", ErrInvalidConfig, cfg.KeyPrefix)
	}
	if prefix != "" {
		prefix += "/"
	}

	s := &S3Storage{
		bucket:        cfg.Bucket,
		prefix:        prefix,
		baseURL:       s3BaseURL(cfg),
		uploadTimeout: cfg.UploadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s.client = client
	}

	return s, nil
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

func s3BaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return strings.TrimSuffix(base, "/") + "/"
}

// s3ErrorCodes maps S3 error codes to package sentinels. Typed errors such
// as *types.NoSuchKey report the same codes.
var s3ErrorCodes = map[string]error{
	"NoSuchKey":          ErrFileNotFound,
	"NotFound":           ErrFileNotFound,
	"NoSuchBucket":       ErrBucketNotFound,
	"AccessDenied":       ErrAccessDenied,
	"RequestTimeout":     ErrRequestTimeout,
	"SlowDown":           ErrServiceUnavailable,
	"ServiceUnavailable": ErrServiceUnavailable,
	"InvalidObjectState": ErrInvalidObjectState,
}

// classifyS3Error wraps err with the matching sentinel, keeping the cause.
func classifyS3Error(err error, op string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrOperationTimeout, op)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", ErrOperationCanceled, op)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := s3ErrorCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %s: %w", sentinel, op, err)
		}
		return fmt.Errorf("%s failed (code %s): %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// Put uploads data to path, replacing any existing object.
func (s *S3Storage) Put(ctx context.Context, path string, data []byte) (*File, error) {
	rel, key, err := s.objectKey(path)
	if err != nil {
		return nil, err
	}
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	f := describe(rel, data)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(f.Size),
		ContentType:   aws.String(f.MIMEType),
	})
	if err != nil {
		return nil, classifyS3Error(err, "upload "+key)
	}
	return f, nil
}

// Get downloads the object at path.
func (s *S3Storage) Get(ctx context.Context, path string) ([]byte, error) {
	_, key, err := s.objectKey(path)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "download "+key)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Delete removes the object at path. A missing object is ErrFileNotFound,
// as with LocalStorage.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	_, key, err := s.objectKey(path)
	if err != nil {
		return err
	}
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "check "+key)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "delete "+key)
	}
	return nil
}

// Exists reports whether the object at path can be read.
func (s *S3Storage) Exists(ctx context.Context, path string) bool {
	_, key, err := s.objectKey(path)
	if err != nil {
		return false
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// URL returns the public URL for path.
func (s *S3Storage) URL(path string) string {
	return s.baseURL + s.prefix + strings.TrimPrefix(path, "/")
}

// objectKey returns path without its leading slash and the full object key
// including the configured prefix. Traversal segments are rejected.
func (s *S3Storage) objectKey(path string) (rel, key string, err error) {
	rel = strings.TrimPrefix(path, "/")
	if rel == "" || strings.Contains(rel, "..") || strings.ContainsRune(rel, 0) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return rel, s.prefix + rel, nil
}
