package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter часть API S3, которой пользуется клиент
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры S3-совместимого хранилища
type Config struct {
	Endpoint      string // Пусто для AWS, иначе MinIO/R2 и т.п.
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// Client загружает медиафайлы в объектное хранилище
type Client struct {
	s3            ObjectPutter
	bucket        string
	publicBaseURL string
	log           Logger
}

// NewClient создает клиента поверх aws-sdk-go-v2
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.Bucket == "" || cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("%w: bucket and public base url are required", ErrInvalidConfig)
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return NewClientWithAPI(s3.New(opts), cfg.Bucket, cfg.PublicBaseURL, log), nil
}

// NewClientWithAPI создает клиента с готовой реализацией PutObject
func NewClientWithAPI(api ObjectPutter, bucket, publicBaseURL string, log Logger) *Client {
	return &Client{
		s3:            api,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           log,
	}
}

// Put загружает объект и возвращает его публичный URL
func (c *Client) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: key=%s: %v", ErrUpload, key, err)
	}

	url := c.publicBaseURL + "/" + key
	c.log.Info("Media uploaded key=%s size=%d", key, len(body))
	return url, nil
}
