package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Store реализует BlobStore поверх AWS S3 (или совместимого сервиса
// при заданном endpoint).
type S3Store struct {
	client  *s3.S3
	bucket  string
	baseURL string
}

var _ BlobStore = (*S3Store)(nil)

// NewS3Store создаёт клиент S3. endpoint опционален и нужен только для
// S3-совместимых хранилищ; для них включается path-style адресация.
func NewS3Store(region, bucket, endpoint string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket name is required")
	}

	awsCfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		awsCfg.Endpoint = aws.String(endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}

	var baseURL string
	if endpoint != "" {
		baseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	} else {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Store{
		client:  s3.New(sess),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Put загружает объект в бакет.
func (s *S3Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload blob: %w", err)
	}
	return nil
}

// Delete удаляет объект из бакета. S3 не различает удаление
// отсутствующего ключа, поэтому повторный Delete безвреден.
func (s *S3Store) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// PublicURL возвращает публичный URL объекта. Сеть не трогает.
func (s *S3Store) PublicURL(path string) string {
	return s.baseURL + "/" + path
}

// PathFromURL восстанавливает ключ объекта из публичного URL.
func (s *S3Store) PathFromURL(url string) (string, bool) {
	path, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || path == "" {
		return "", false
	}
	return path, true
}
