package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/storage"
)

// ErrInvalidBatch wraps every batch validation failure.
var ErrInvalidBatch = errors.New("invalid record batch")

const defaultMaxBatchSize = 500

type Service struct {
	store            storage.RecordStore
	maxBodySizeBytes int
	maxBatchSize     int
	now              func() time.Time
}

func NewService(repo storage.RecordStore, maxBodySizeMB, maxBatchSize int) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		maxBatchSize:     maxBatchSize,
		now:              time.Now,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/records", s.IngestHandler)
}

// Ingest fills ingestion-owned defaults, validates the batch and stores it.
// Returns the number of records that were new.
func (s *Service) Ingest(ctx context.Context, batch *v1.RecordBatch) (int, error) {
	now := s.now()
	for i := range batch.Records {
		batch.Records[i].ApplyDefaults(now)
	}

	if err := batch.Validate(s.maxBatchSize); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	inserted, err := s.store.SaveBatch(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("save batch: %w", err)
	}
	return inserted, nil
}
