package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxTitleLength = 1024
	maxFieldLength = 256
	maxURLLength   = 2048
)

// RawRecord is one scraped listing exactly as the ingestion side persisted it.
// Every field is free text; nothing here is trusted to be well-formed. The
// analytics pipeline treats a RawRecord as immutable input.
type RawRecord struct {
	// ID is the stable identifier of the record. Assigned by ingestion when the
	// client does not provide one.
	ID string `json:"id"`

	Title        string `json:"title"`
	Price        string `json:"price"`
	Rating       string `json:"rating"`
	Availability string `json:"availability"`
	Category     string `json:"category"`

	// Store is the scraper's own store label. Several scrapers never set it,
	// so Category is usually the stronger signal.
	Store string `json:"store,omitempty"`

	// SourceURL is the product URL, when the scraper captured one.
	SourceURL string `json:"source_url,omitempty"`

	// PageURL is the URL of the listing page this record was scraped from.
	// Filled by the store from the joined page row; never accepted from clients.
	PageURL string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// ApplyDefaults fills the fields ingestion owns: a fresh ID and the creation
// timestamp when the client omitted them.
func (r *RawRecord) ApplyDefaults(now time.Time) {
	if strings.TrimSpace(r.ID) == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now.UTC()
	}
}

// Validate checks the ingestion contract. Malformed price/rating text is not an
// error here; the normalizer degrades it to zero.
func (r *RawRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(r.Title) > maxTitleLength {
		return fmt.Errorf("title exceeds %d bytes", maxTitleLength)
	}

	for name, value := range map[string]string{
		"price":        r.Price,
		"rating":       r.Rating,
		"availability": r.Availability,
		"category":     r.Category,
		"store":        r.Store,
	} {
		if len(value) > maxFieldLength {
			return fmt.Errorf("%s exceeds %d bytes", name, maxFieldLength)
		}
	}

	if len(r.SourceURL) > maxURLLength {
		return fmt.Errorf("source_url exceeds %d bytes", maxURLLength)
	}

	return nil
}

// RecordBatch is the ingestion unit: every record scraped from one page.
type RecordBatch struct {
	// SourceURL is the listing page the batch was scraped from. Optional.
	SourceURL string      `json:"source_url"`
	Records   []RawRecord `json:"records"`
}

// Validate checks the batch envelope and every record in it.
func (b *RecordBatch) Validate(maxRecords int) error {
	if len(b.Records) == 0 {
		return fmt.Errorf("records must not be empty")
	}
	if maxRecords > 0 && len(b.Records) > maxRecords {
		return fmt.Errorf("batch has %d records, limit is %d", len(b.Records), maxRecords)
	}
	if len(b.SourceURL) > maxURLLength {
		return fmt.Errorf("source_url exceeds %d bytes", maxURLLength)
	}

	seen := make(map[string]struct{}, len(b.Records))
	for i := range b.Records {
		if err := b.Records[i].Validate(); err != nil {
			return fmt.Errorf("records[%d]: %w", i, err)
		}
		if _, dup := seen[b.Records[i].ID]; dup {
			return fmt.Errorf("records[%d]: duplicate id %q in batch", i, b.Records[i].ID)
		}
		seen[b.Records[i].ID] = struct{}{}
	}
	return nil
}
