// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const defaultS3Region = "us-east-1"

// S3FileStorage uploads files to an S3 (or S3 compatible) bucket.
type S3FileStorage struct {
	client    *s3.S3
	uploader  *s3manager.Uploader
	bucket    string
	prefix    string
	publicURL string
	logger    *logger.Logger
}

// newS3FileStorage builds the backend from
// s3://[ACCESS_KEY:SECRET_KEY@]bucket/prefix?region=..&endpoint=..&public_url=..
//
// Credentials from cfg take precedence over the ones embedded in the URI.
// Without either, the default AWS credential chain is used.
func newS3FileStorage(u *url.URL, cfg config.Files, log *logger.Logger) (*S3FileStorage, error) {
	bucket := u.Host
	if bucket == "" {
		return nil, fmt.Errorf("%w: empty bucket in %q", ErrUnsupportedLocation, u.Redacted())
	}

	query := u.Query()
	region := query.Get("region")
	if region == "" {
		region = defaultS3Region
	}

	awsCfg := aws.Config{
		Region: aws.String(region),
	}
	if endpoint := query.Get("endpoint"); endpoint != "" {
		awsCfg.Endpoint = aws.String(endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
	if accessKey == "" && u.User != nil {
		accessKey = u.User.Username()
		secretKey, _ = u.User.Password()
	}
	if accessKey != "" && secretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(&awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	log.Debug().Str("bucket", bucket).Str("region", region).Msg("created s3 file storage")

	client := s3.New(sess)

	return &S3FileStorage{
		client:    client,
		uploader:  s3manager.NewUploaderWithClient(client),
		bucket:    bucket,
		prefix:    strings.Trim(u.Path, "/"),
		publicURL: query.Get("public_url"),
		logger:    log,
	}, nil
}

// Put uploads the file under <prefix>/<key>. The returned URL is built from
// public_url when configured, otherwise it is the object location reported
// by S3.
func (s *S3FileStorage) Put(ctx context.Context, key string, file models.UploadedFile) (string, error) {
	if key == "" {
		return "", ErrInvalidStorageKey
	}

	objectKey := path.Join(s.prefix, key)

	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	out, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: upload object to S3: %w", ErrStoringFile, err)
	}

	logger.FromContext(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", objectKey).
		Msg("stored file in S3")

	if s.publicURL != "" {
		return joinURL(s.publicURL, objectKey), nil
	}

	return out.Location, nil
}

// Delete removes <prefix>/<key> from the bucket. S3 reports success for
// keys that do not exist.
func (s *S3FileStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidStorageKey
	}

	objectKey := path.Join(s.prefix, key)

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("%w: delete object from S3: %w", ErrDeletingFile, err)
	}

	logger.FromContext(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", objectKey).
		Msg("deleted file from S3")

	return nil
}
