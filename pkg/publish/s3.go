package publish

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-bounce-raytracer/pkg/config"
	"github.com/df07/go-bounce-raytracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// Uploader stores rendered images in an S3 bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger

	// contentType maps a file extension such as ".png" to a MIME type,
	// returning "" when the extension is unknown.
	contentType func(ext string) string
}

// NewUploader creates an uploader for the configured bucket. Static
// credentials are used when an access key is given; otherwise the default
// AWS credential chain applies.
func NewUploader(cfg config.S3Config, logger core.Logger) (*Uploader, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("while creating S3 session: %w", err)
	}
	return NewUploaderWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewUploaderWithClient creates an uploader around an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, bucket, prefix string, logger core.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,

		contentType: mime.TypeByExtension,
	}
}

// Key returns the object key a file name is stored under
func (u *Uploader) Key(name string) string {
	return path.Join(u.prefix, filepath.Base(name))
}

// ContentType returns the MIME type recorded for name. Unknown extensions
// are stored as application/octet-stream.
func (u *Uploader) ContentType(name string) string {
	if contentType := u.contentType(filepath.Ext(name)); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// Upload stores data under the key for name. The content type is derived
// from the file extension.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	contentType := u.ContentType(name)

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("while uploading %s to bucket %s: %w", key, u.bucket, err)
	}

	u.logger.Printf("Uploaded s3://%s/%s (%d bytes)\n", u.bucket, key, size)
	return key, nil
}
