package integrity

import (
	"context"

	"grimoire/core/storage"
	"grimoire/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckDatasets returns the dataset objects missing from the bucket.
func (s *Service) CheckDatasets(ctx context.Context) ([]string, error) {
	return checks.CheckDatasets(ctx, s.client, s.bucket)
}

// FixDatasets uploads the built-in copy of the missing datasets.
func (s *Service) FixDatasets(ctx context.Context, missing []string) error {
	return checks.FixDatasets(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the database schema with the word models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
