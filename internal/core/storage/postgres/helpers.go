package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecordRow scans one queryListRecords row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanRecordRow(row scanner) (*v1.RawRecord, error) {
	var rec v1.RawRecord

	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Price,
		&rec.Rating,
		&rec.Availability,
		&rec.Category,
		&rec.Store,
		&rec.SourceURL,
		&rec.CreatedAt,
		&rec.PageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan record row: %w", err)
	}

	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

// nullablePageID maps "no page" to SQL NULL.
func nullablePageID(pageID string) sql.NullString {
	return sql.NullString{String: pageID, Valid: pageID != ""}
}
