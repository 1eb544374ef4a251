// Package sqlite stores scraped records in a local SQLite file using the pure
// Go modernc driver. It is the zero-dependency choice for single-node setups.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register sqlite driver

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/storage"
)

// timeLayout is fixed width so created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const connectPingTimeout = 5 * time.Second

// Applied through the DSN so every pooled connection gets them.
var pragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

var _ storage.RecordStore = (*Adapter)(nil)

// Adapter implements storage.RecordStore for SQLite.
type Adapter struct {
	db *sql.DB

	newID func() string
	now   func() time.Time
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("sqlite", buildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Each :memory: connection is a separate database.
	if strings.Contains(path, ":memory:") {
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("[SQLite] Database opened", "path", path, "max_open_conns", maxOpenConns)
	return db, nil
}

func buildDSN(path string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// NewAdapter wraps an open database. The records schema must already exist;
// run migrations before calling it. The adapter takes ownership of db.
func NewAdapter(db *sql.DB) (*Adapter, error) {
	var count int
	if err := db.QueryRow(queryRecordsTableExists).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("schema validation failed - did you run migrations?: records table does not exist")
	}

	slog.Info("[SQLite] Adapter initialized")

	return &Adapter{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}, nil
}

// ListRecords returns every record, newest first, with the page URL joined in.
func (a *Adapter) ListRecords(ctx context.Context) ([]*v1.RawRecord, error) {
	rows, err := a.db.QueryContext(ctx, queryListRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*v1.RawRecord
	for rows.Next() {
		var (
			rec       v1.RawRecord
			createdAt string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Price,
			&rec.Rating,
			&rec.Availability,
			&rec.Category,
			&rec.Store,
			&rec.SourceURL,
			&createdAt,
			&rec.PageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		rec.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("record %q has invalid created_at %q: %w", rec.ID, createdAt, err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// SaveBatch stores the batch's page (when it has a source URL) and its records
// in one transaction. Records with an existing id are skipped.
func (a *Adapter) SaveBatch(ctx context.Context, batch *v1.RecordBatch) (int, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var pageID sql.NullString
	if batch.SourceURL != "" {
		pageID = sql.NullString{String: a.newID(), Valid: true}
		if _, err := tx.ExecContext(ctx, queryInsertPage, pageID.String, batch.SourceURL, formatTime(a.now())); err != nil {
			return 0, fmt.Errorf("failed to insert page: %w", err)
		}
	}

	insertStmt, err := tx.PrepareContext(ctx, queryInsertRecord)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insertRecord statement: %w", err)
	}
	defer insertStmt.Close()

	inserted := 0
	for i := range batch.Records {
		rec := &batch.Records[i]
		result, err := insertStmt.ExecContext(ctx,
			rec.ID,
			pageID,
			rec.Title,
			rec.Price,
			rec.Rating,
			rec.Availability,
			rec.Category,
			rec.Store,
			rec.SourceURL,
			formatTime(rec.CreatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert record %q: %w", rec.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}

	slog.Debug("[SQLite] Saved record batch",
		"page_id", pageID.String,
		"records", len(batch.Records),
		"inserted", inserted)
	return inserted, nil
}

// Ping checks database connectivity.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// DB returns the underlying *sql.DB.
func (a *Adapter) DB() *sql.DB {
	return a.db
}

// Close closes the database.
func (a *Adapter) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("[SQLite] Adapter closed gracefully")
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
