package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// Archive keeps a copy of every exported file.
type Archive interface {
	Store(ctx context.Context, file *render.File) error
}

// NewArchive builds the archive named in the configuration, or nil when
// archiving is off.
func NewArchive(ctx context.Context, conf *config.Config) (Archive, error) {
	switch conf.Archive.Backend {
	case "local":
		return NewLocalArchive(conf.Archive.Dir), nil
	case "s3":
		return NewS3Archive(ctx, conf.Archive)
	default:
		return nil, nil
	}
}

// LocalArchive writes files into a directory.
type LocalArchive struct {
	dir string
}

func NewLocalArchive(dir string) *LocalArchive {
	return &LocalArchive{dir: dir}
}

func (l *LocalArchive) Store(_ context.Context, file *render.File) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	return os.WriteFile(filepath.Join(l.dir, filepath.Base(file.Name)), file.Data, 0o644)
}

// S3Client is the part of the S3 API the archive uses.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive uploads files to a bucket under a key prefix.
type S3Archive struct {
	client S3Client
	bucket string
	prefix string
}

func NewS3Archive(ctx context.Context, conf config.Archive) (*S3Archive, error) {
	if conf.Bucket == "" {
		return nil, fmt.Errorf("%w: archive bucket is empty", config.ErrInvalidConfig)
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}
	if conf.AccessKey != "" && conf.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		))
	}

	awsConf, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConf, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3ArchiveWithClient(client, conf.Bucket, conf.Prefix), nil
}

func NewS3ArchiveWithClient(client S3Client, bucket, prefix string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, prefix: strings.TrimPrefix(prefix, "/")}
}

func (s *S3Archive) Store(ctx context.Context, file *render.File) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + filepath.Base(file.Name)),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.MIME),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", file.Name, err)
	}
	return nil
}
