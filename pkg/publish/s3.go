package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// ErrNoBucket is returned when publishing is requested without a bucket
var ErrNoBucket = errors.New("S3 bucket not configured")

// S3Config holds connection settings for an S3 compatible object store
type S3Config struct {
	Endpoint   string // Empty uses the AWS endpoint for Region
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Prefix     string // Key prefix, e.g. "renders"
	PublicRead bool   // Upload with the public-read ACL
}

// Enabled reports whether enough settings are present to publish
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// ObjectPutter is the subset of the S3 API used for publishing
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads rendered images to a bucket
type S3Publisher struct {
	client ObjectPutter
	config S3Config
	logger core.Logger
}

// NewS3Publisher creates a session from static credentials and returns a publisher
func NewS3Publisher(config S3Config, logger core.Logger) (*S3Publisher, error) {
	if !config.Enabled() {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3PublisherWithClient(s3.New(sess), config, logger), nil
}

// NewS3PublisherWithClient creates a publisher around an existing client
func NewS3PublisherWithClient(client ObjectPutter, config S3Config, logger core.Logger) *S3Publisher {
	return &S3Publisher{
		client: client,
		config: config,
		logger: logger,
	}
}

// ObjectKey returns the bucket key for a file name under the configured prefix
func (p *S3Publisher) ObjectKey(name string) string {
	return path.Join(p.config.Prefix, name)
}

// Publish uploads data under key and returns the bucket key that was written
func (p *S3Publisher) Publish(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.ObjectKey(name)
	size := int64(len(data))
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	if p.config.PublicRead {
		input.ACL = aws.String(s3.ObjectCannedACLPublicRead)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if p.logger != nil {
		p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, p.config.Bucket, size)
	}
	return key, nil
}

// PublishFile uploads a rendered image file, deriving the content type from its extension
func (p *S3Publisher) PublishFile(ctx context.Context, filename string) (string, error) {
	format, err := loaders.FormatFromPath(filename)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return p.Publish(ctx, filepath.Base(filename), data, format.ContentType())
}
