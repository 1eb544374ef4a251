package product

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholders used when a record carries no category or title.
const (
	DefaultCategory = "Uncategorized"
	DefaultName     = "Untitled"
)

// Product is the canonical, fully typed listing used by every analytics view.
// Zero in Price or Rating means "absent", never a real zero.
type Product struct {
	ID           string  `json:"id" yaml:"id"`
	Store        string  `json:"store" yaml:"store"`
	Category     string  `json:"category" yaml:"category"`
	Name         string  `json:"name" yaml:"name"`
	Price        float64 `json:"price" yaml:"price"`
	Rating       float64 `json:"rating" yaml:"rating"`
	Availability int     `json:"availability" yaml:"availability"`
	Date         string  `json:"date" yaml:"date"` // YYYY-MM-DD
}

// IdentityKey identifies a listing for deduplication. Two products with equal
// keys are the same listing scraped twice.
type IdentityKey struct {
	Store      string
	Name       string
	PriceCents int64
	Category   string
}

// Key returns the identity key of p. Name and category compare case-insensitively
// after trimming; price compares at cent precision.
func (p Product) Key() IdentityKey {
	return IdentityKey{
		Store:      p.Store,
		Name:       strings.ToLower(strings.TrimSpace(p.Name)),
		PriceCents: priceCents(p.Price),
		Category:   strings.ToLower(strings.TrimSpace(p.Category)),
	}
}

// Month returns the YYYY-MM prefix of the product date, or the whole date when
// it is shorter than that.
func (p Product) Month() string {
	if len(p.Date) < 7 {
		return p.Date
	}
	return p.Date[:7]
}

func priceCents(price float64) int64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return decimal.NewFromFloat(price).Round(2).Shift(2).IntPart()
}
