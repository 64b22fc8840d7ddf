package health

import (
	"context"
	"time"

	"grimoire/core/cache"

	"gorm.io/gorm"
)

// Dependency states.
const (
	StatusHealthy     = "healthy"
	StatusUnhealthy   = "unhealthy"
	StatusUnavailable = "unavailable"
)

// Report is the health of the service and its dependencies.
type Report struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Healthy reports whether every dependency responded.
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Service pings the database and the cache.
type Service struct {
	db      *gorm.DB
	store   cache.Store
	timeout time.Duration
}

// NewService creates a new health service. A nil db or store is reported unavailable.
func NewService(db *gorm.DB, store cache.Store) *Service {
	return &Service{db: db, store: store, timeout: 2 * time.Second}
}

// Check pings every dependency.
func (s *Service) Check(ctx context.Context) *Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := &Report{
		Status: StatusHealthy,
		Dependencies: map[string]string{
			"database": s.pingDatabase(ctx),
			"cache":    s.pingCache(ctx),
		},
		Timestamp: time.Now().UTC(),
	}
	for _, state := range report.Dependencies {
		if state != StatusHealthy {
			report.Status = StatusUnhealthy
		}
	}
	return report
}

func (s *Service) pingDatabase(ctx context.Context) string {
	if s.db == nil {
		return StatusUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return StatusUnhealthy
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StatusUnhealthy
	}
	return StatusHealthy
}

func (s *Service) pingCache(ctx context.Context) string {
	if s.store == nil {
		return StatusUnavailable
	}
	if err := s.store.Ping(ctx); err != nil {
		return StatusUnhealthy
	}
	return StatusHealthy
}
