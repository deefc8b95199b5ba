package storage_test

import (
	"context"
	"errors"
	"testing"

	"naval-tables/core/storage"
	"naval-tables/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	cfg := storage.Config{Bucket: "assets", Region: "eu-west-1"}

	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("PutObject", mock.Anything, "assets", "tables/naval.html", "<tr/>",
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/html" }),
		).Return(minio.UploadInfo{}, nil)

		key, err := storage.NewPublisher(client, cfg).Publish(context.Background(), "out/naval.html", "text/html", []byte("<tr/>"))
		require.NoError(t, err)
		assert.Equal(t, "tables/naval.html", key)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		client.AssertExpectations(t)
	})

	t.Run("CreatesBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "assets", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		client.On("PutObject", mock.Anything, "assets", "tables/naval.json", "[]", mock.Anything).Return(minio.UploadInfo{}, nil)

		_, err := storage.NewPublisher(client, cfg).Publish(context.Background(), "naval.json", "application/json", []byte("[]"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("CustomPrefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("PutObject", mock.Anything, "assets", "wiki/naval.txt", "{|", mock.Anything).Return(minio.UploadInfo{}, nil)

		c := cfg
		c.Prefix = "wiki/"
		key, err := storage.NewPublisher(client, c).Publish(context.Background(), "naval.txt", "text/plain", []byte("{|"))
		require.NoError(t, err)
		assert.Equal(t, "wiki/naval.txt", key)
	})

	t.Run("UploadFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("PutObject", mock.Anything, "assets", mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

		_, err := storage.NewPublisher(client, cfg).Publish(context.Background(), "naval.csv", "text/csv", []byte("a"))
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, errors.New("offline"))

		_, err := storage.NewPublisher(client, cfg).Publish(context.Background(), "naval.csv", "text/csv", []byte("a"))
		assert.ErrorContains(t, err, "offline")
	})
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, "30s", storage.Config{}.Timeout().String())
	assert.Equal(t, "5s", storage.Config{TimeoutSeconds: 5}.Timeout().String())
}
