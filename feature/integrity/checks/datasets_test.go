package checks

import (
	"context"
	"errors"
	"testing"

	"grimoire/core/storage/mocks"
	"grimoire/feature/words/sources"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errNoSuchKey = minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}

func TestCheckDatasets(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "grimoire").Return(false, nil)

		missing, err := CheckDatasets(context.Background(), mockClient, "grimoire")
		require.NoError(t, err)
		assert.Equal(t, sources.DatasetObjects, missing)
	})

	t.Run("Some Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "grimoire").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "grimoire", sources.ObjectCEFR, mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)
		mockClient.On("StatObject", mock.Anything, "grimoire", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{Size: 10}, nil)

		missing, err := CheckDatasets(context.Background(), mockClient, "grimoire")
		require.NoError(t, err)
		assert.Equal(t, []string{sources.ObjectCEFR}, missing)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "grimoire").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "grimoire", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("access denied"))

		_, err := CheckDatasets(context.Background(), mockClient, "grimoire")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFixDatasets(t *testing.T) {
	t.Run("Creates Bucket And Uploads", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "grimoire").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "grimoire", mock.Anything).Return(nil)

		builtin, err := sources.Builtin(sources.ObjectFrequency)
		require.NoError(t, err)
		mockClient.On("PutObject", mock.Anything, "grimoire", sources.ObjectFrequency, mock.Anything, int64(len(builtin)),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/plain; charset=utf-8" })).
			Return(minio.UploadInfo{}, nil)
		mockClient.On("PutObject", mock.Anything, "grimoire", sources.ObjectRelations, mock.Anything, mock.Anything,
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
			Return(minio.UploadInfo{}, nil)

		err = FixDatasets(context.Background(), mockClient, "grimoire", zap.NewNop(),
			[]string{sources.ObjectFrequency, sources.ObjectRelations})
		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Upload Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "grimoire").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "grimoire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota exceeded"))

		err := FixDatasets(context.Background(), mockClient, "grimoire", zap.NewNop(), []string{sources.ObjectWords})
		assert.ErrorContains(t, err, "quota exceeded")
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}
