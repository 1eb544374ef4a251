package normalize

import (
	"log/slog"
	"strings"
	"time"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/product"
)

const dateLayout = "2006-01-02"

// Normalizer turns raw scraped records into canonical products. It never fails:
// unparseable fields degrade to their zero value or placeholder.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer returns a Normalizer that dates undated records with the
// current wall clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerWithClock is NewNormalizer with an injected clock.
func NewNormalizerWithClock(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize maps one raw record to a Product. pageURL is the listing page the
// record came from and is only used when neither the category nor the store
// field names a known store.
func (n *Normalizer) Normalize(rec v1.RawRecord, pageURL string) product.Product {
	category := strings.TrimSpace(rec.Category)
	if category == "" {
		category = product.DefaultCategory
	}
	name := strings.TrimSpace(rec.Title)
	if name == "" {
		name = product.DefaultName
	}

	return product.Product{
		ID:           rec.ID,
		Store:        resolveStore(rec, pageURL),
		Category:     category,
		Name:         name,
		Price:        ParsePrice(rec.Price),
		Rating:       ParseRating(rec.Rating),
		Availability: ParseAvailability(rec.Availability),
		Date:         n.recordDate(rec),
	}
}

// NormalizeAll normalizes records in order, using each record's joined PageURL.
// Nil entries are skipped.
func (n *Normalizer) NormalizeAll(records []*v1.RawRecord) []product.Product {
	out := make([]product.Product, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		out = append(out, n.Normalize(*rec, rec.PageURL))
	}
	return out
}

func (n *Normalizer) recordDate(rec v1.RawRecord) string {
	if !rec.CreatedAt.IsZero() {
		return rec.CreatedAt.UTC().Format(dateLayout)
	}
	slog.Debug("[Normalize] Record has no creation time, dating it today", "record_id", rec.ID)
	return n.now().UTC().Format(dateLayout)
}

// resolveStore applies the precedence category alias, store field alias, page
// URL domain, with UnknownStore as the floor.
func resolveStore(rec v1.RawRecord, pageURL string) string {
	if store := StoreFromCategory(rec.Category); store != "" {
		return store
	}
	if store := lookupAlias(rec.Store); store != "" {
		return store
	}

	if strings.TrimSpace(pageURL) == "" {
		pageURL = rec.SourceURL
	}
	return NormalizeStoreName(DeriveStoreName(pageURL))
}
