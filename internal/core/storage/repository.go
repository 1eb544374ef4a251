package storage

import (
	"context"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
)

// RecordStore persists scraped records and serves them back to the analytics pipeline.
type RecordStore interface {
	// ListRecords returns every stored record, newest first, with PageURL
	// filled from the page the record was scraped from.
	ListRecords(ctx context.Context) ([]*v1.RawRecord, error)

	// SaveBatch stores a batch in one transaction. Records whose id already
	// exists are skipped; the returned count covers new rows only.
	SaveBatch(ctx context.Context, batch *v1.RecordBatch) (int, error)

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error

	Close() error
}
