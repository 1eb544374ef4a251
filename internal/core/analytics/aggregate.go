package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/storepulse/storepulse/internal/core/product"
)

// Aggregate computes the KPI row, the price ranking and every chart projection
// for products. Input is expected to be deduplicated already; it is not mutated.
// Empty input yields zero KPIs and empty, non-nil chart slices.
func Aggregate(products []product.Product) Result {
	return Result{
		KPIs:        ComputeKPIs(products),
		TopProducts: TopProducts(products, TopProductsLimit),
		Charts:      BuildCharts(products),
	}
}

// ComputeKPIs returns the summary row. Average price counts unpriced products as
// zero while average rating skips unrated ones.
func ComputeKPIs(products []product.Product) KPIs {
	stores := make(map[string]struct{})
	var price, rating mean
	availability := 0

	for _, p := range products {
		stores[p.Store] = struct{}{}
		price.add(p.Price)
		availability += p.Availability
		if p.Rating > 0 {
			rating.add(p.Rating)
		}
	}

	return KPIs{
		Total:             len(products),
		StoreCount:        len(stores),
		AveragePrice:      price.value(),
		TotalAvailability: availability,
		AverageRating:     rating.value(),
	}
}

// TopProducts returns up to limit priced products, most expensive first. Equal
// prices keep their input order. A non-positive limit returns every priced product.
func TopProducts(products []product.Product, limit int) []product.Product {
	ranked := priced(products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price > ranked[j].Price
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// mean accumulates in decimal so long sums of prices do not drift.
type mean struct {
	sum   decimal.Decimal
	count int64
}

func (m *mean) add(v float64) {
	m.sum = m.sum.Add(decimal.NewFromFloat(v))
	m.count++
}

func (m *mean) value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum.Div(decimal.NewFromInt(m.count)).InexactFloat64()
}

func meanPrice(products []product.Product) float64 {
	var m mean
	for _, p := range products {
		m.add(p.Price)
	}
	return m.value()
}

func priced(products []product.Product) []product.Product {
	return filter(products, func(p product.Product) bool { return p.Price > 0 })
}

func filter(products []product.Product, keep func(product.Product) bool) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
