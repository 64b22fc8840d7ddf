package checks

import (
	"context"
	"fmt"

	"grimoire/core/storage"
	"grimoire/feature/words/sources"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckDatasets returns the dataset objects missing from the bucket.
// A missing bucket reports every dataset as missing.
func CheckDatasets(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return append([]string{}, sources.DatasetObjects...), nil
	}

	missing := []string{}
	for _, object := range sources.DatasetObjects {
		_, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
		switch {
		case err == nil:
		case storage.IsNotFound(err):
			missing = append(missing, object)
		default:
			return nil, fmt.Errorf("failed to stat %s: %w", object, err)
		}
	}
	return missing, nil
}

// FixDatasets uploads the built-in copy of every missing dataset,
// creating the bucket first when needed.
func FixDatasets(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	created, err := storage.EnsureBucket(ctx, client, bucket)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	for _, object := range missing {
		data, err := sources.Builtin(object)
		if err != nil {
			return fmt.Errorf("no built-in copy of %s: %w", object, err)
		}
		if err := storage.WriteObject(ctx, client, bucket, object, data); err != nil {
			logger.Error("Failed to upload dataset", zap.String("object", object), zap.Error(err))
			return err
		}
		logger.Info("Uploaded missing dataset", zap.String("object", object), zap.Int("bytes", len(data)))
	}
	return nil
}
