package mediastore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPut_ReturnsPublicURL(t *testing.T) {
	api := &fakeS3{}
	c := NewClientWithAPI(api, "studio-media", "https://cdn.example.com/", logger.Nop())

	url, err := c.Put(context.Background(), "gallery/abc.webp", "image/webp", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/gallery/abc.webp", url)
	assert.Equal(t, "studio-media", aws.ToString(api.input.Bucket))
	assert.Equal(t, "gallery/abc.webp", aws.ToString(api.input.Key))
	assert.Equal(t, "image/webp", aws.ToString(api.input.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(api.input.ContentLength))
	assert.Equal(t, []byte("data"), api.body)
}

func TestPut_WrapsUploadError(t *testing.T) {
	c := NewClientWithAPI(&fakeS3{err: errors.New("access denied")}, "b", "https://cdn", logger.Nop())

	_, err := c.Put(context.Background(), "k", "image/png", nil)
	assert.ErrorIs(t, err, ErrUpload)
}

func TestNewClient_RequiresBucketAndURL(t *testing.T) {
	_, err := NewClient(Config{Bucket: "b"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	c, err := NewClient(Config{
		Endpoint:      "http://localhost:9000",
		Bucket:        "b",
		PublicBaseURL: "http://localhost:9000/b",
		AccessKey:     "key",
		SecretKey:     "secret",
	}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, c)
}
