package s3infra

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/game-admin-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestStore_UploadVirtualHostedURL(t *testing.T) {
	p := &fakePutter{}
	store := NewStore(p, &config.Config{S3BucketName: "assets", AWSRegion: "eu-west-1"})

	u, err := store.Upload(context.Background(), "items/7/sword.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://assets.s3.eu-west-1.amazonaws.com/items/7/sword.png", u)
	assert.Equal(t, "assets", aws.ToString(p.in.Bucket))
	assert.Equal(t, "image/png", aws.ToString(p.in.ContentType))
	assert.Equal(t, "png", p.body)
}

func TestStore_UploadLocalEndpointURL(t *testing.T) {
	store := NewStore(&fakePutter{}, &config.Config{S3BucketName: "assets", AWSEndpointURL: "http://localhost:4566/"})

	u, err := store.Upload(context.Background(), "items/7/my sword.png", strings.NewReader(""), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566/assets/items/7/my%20sword.png", u)
}

func TestStore_UploadError(t *testing.T) {
	store := NewStore(&fakePutter{err: errors.New("denied")}, &config.Config{S3BucketName: "assets"})

	_, err := store.Upload(context.Background(), "k", strings.NewReader(""), "image/png")
	assert.ErrorContains(t, err, "denied")
}
