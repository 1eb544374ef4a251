package v1

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRawRecord_ApplyDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	t.Run("fills missing id and created_at", func(t *testing.T) {
		rec := RawRecord{Title: "Chair"}
		rec.ApplyDefaults(now)

		require.NotEmpty(t, rec.ID)
		require.Equal(t, now.UTC(), rec.CreatedAt)
		require.Equal(t, time.UTC, rec.CreatedAt.Location())
	})

	t.Run("keeps client values", func(t *testing.T) {
		created := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
		rec := RawRecord{ID: "rec-1", Title: "Chair", CreatedAt: created}
		rec.ApplyDefaults(now)

		require.Equal(t, "rec-1", rec.ID)
		require.Equal(t, created, rec.CreatedAt)
	})

	t.Run("blank id is replaced", func(t *testing.T) {
		rec := RawRecord{ID: "   ", Title: "Chair"}
		rec.ApplyDefaults(now)
		require.NotEqual(t, "   ", rec.ID)
	})
}

func TestRawRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  RawRecord
		wantErr string
	}{
		{
			name:   "valid record with garbage price",
			record: RawRecord{ID: "r1", Title: "Sofa", Price: "call us"},
		},
		{
			name:    "missing id",
			record:  RawRecord{Title: "Sofa"},
			wantErr: "id is required",
		},
		{
			name:    "missing title",
			record:  RawRecord{ID: "r1", Title: "  "},
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			record:  RawRecord{ID: "r1", Title: strings.Repeat("a", maxTitleLength+1)},
			wantErr: "title exceeds",
		},
		{
			name:    "price too long",
			record:  RawRecord{ID: "r1", Title: "Sofa", Price: strings.Repeat("9", maxFieldLength+1)},
			wantErr: "price exceeds",
		},
		{
			name:    "source url too long",
			record:  RawRecord{ID: "r1", Title: "Sofa", SourceURL: strings.Repeat("u", maxURLLength+1)},
			wantErr: "source_url exceeds",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.record.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestRecordBatch_Validate(t *testing.T) {
	valid := RawRecord{ID: "r1", Title: "Lamp"}

	tests := []struct {
		name    string
		batch   RecordBatch
		max     int
		wantErr string
	}{
		{
			name:  "single record",
			batch: RecordBatch{SourceURL: "https://www.westwing.es/muebles/", Records: []RawRecord{valid}},
			max:   10,
		},
		{
			name:    "empty batch",
			batch:   RecordBatch{},
			max:     10,
			wantErr: "records must not be empty",
		},
		{
			name:    "over limit",
			batch:   RecordBatch{Records: []RawRecord{valid, {ID: "r2", Title: "Desk"}}},
			max:     1,
			wantErr: "limit is 1",
		},
		{
			name:  "zero limit means unlimited",
			batch: RecordBatch{Records: []RawRecord{valid, {ID: "r2", Title: "Desk"}}},
			max:   0,
		},
		{
			name:    "invalid record reports index",
			batch:   RecordBatch{Records: []RawRecord{valid, {ID: "r2"}}},
			max:     10,
			wantErr: "records[1]: title is required",
		},
		{
			name:    "duplicate ids",
			batch:   RecordBatch{Records: []RawRecord{valid, valid}},
			max:     10,
			wantErr: "duplicate id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.batch.Validate(tc.max)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
