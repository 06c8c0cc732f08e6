package publish

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// s3API is the slice of the S3 client the target uses.
type s3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Target publishes to an AWS S3 bucket.
//
// Example usage:
//
//	client, err := publish.NewS3Client(ctx, cfg.Publish.Region)
//	if err != nil {
//	    return err
//	}
//	target := publish.NewS3Target(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
type S3Target struct {
	client s3API
	bucket string
	prefix string
}

// NewS3Target creates an S3 publish target. Keys are stored under the
// given prefix inside the bucket.
func NewS3Target(client s3API, bucket, prefix string) *S3Target {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Target{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads an object.
func (t *S3Target) Put(ctx context.Context, key string, body io.Reader, meta FileMeta) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(t.bucket),
		Key:           aws.String(t.prefix + key),
		Body:          body,
		ContentType:   aws.String(meta.ContentType),
		ContentLength: aws.Int64(meta.Size),
	}
	if meta.CacheControl != "" {
		input.CacheControl = aws.String(meta.CacheControl)
	}

	_, err := t.client.PutObject(ctx, input)
	return err
}

// List returns the site-relative keys under the target prefix.
func (t *S3Target) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(t.bucket),
	}
	if t.prefix != "" {
		input.Prefix = aws.String(t.prefix)
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(t.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			keys = append(keys, strings.TrimPrefix(*obj.Key, t.prefix))
		}
	}

	return keys, nil
}

// Delete removes an object.
func (t *S3Target) Delete(ctx context.Context, key string) error {
	_, err := t.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(t.prefix + key),
	})
	return err
}

// NewS3Client builds an S3 client from the default AWS credential
// chain (environment, shared config, instance role).
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}

	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return nil, errors.New("E402").
			WithDetail(err.Error()).
			WithSuggestion("Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY or configure a profile in ~/.aws/credentials").
			Wrap(err)
	}

	return s3.NewFromConfig(awsCfg), nil
}
