package filestore

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store reads uploaded files from an S3-compatible bucket. The storage key
// of a file is its numeric id.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ FileStore = (*S3Store)(nil)

func NewS3Store(client *s3.Client, bucket string) *S3Store {
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

func (s *S3Store) UploadURL(ctx context.Context, fileID int64, ttl time.Duration) (string, error) {
	presigned, err := s.presign.PresignPutObject(ctx,
		&s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(storageKey(fileID)),
		},
		s3.WithPresignExpires(ttl),
	)
	if err != nil {
		return "", fmt.Errorf("error presign upload url: %w", err)
	}
	return presigned.URL, nil
}

func (s *S3Store) Read(ctx context.Context, fileID int64) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey(fileID)),
	})
	if err != nil {
		return nil, fmt.Errorf("error get file object: %w", err)
	}
	return out.Body, nil
}

func storageKey(fileID int64) string {
	return strconv.FormatInt(fileID, 10)
}
