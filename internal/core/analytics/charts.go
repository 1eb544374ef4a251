package analytics

import (
	"sort"

	"github.com/storepulse/storepulse/internal/core/normalize"
	"github.com/storepulse/storepulse/internal/core/product"
)

// BuildCharts computes every chart projection for products.
//
// Store-keyed charts prefer products from a known store and fall back to the
// whole set when none qualify, so a snapshot of unresolved stores still draws.
func BuildCharts(products []product.Product) Charts {
	storeProducts := preferNonEmpty(filter(products, knownStore), products)
	pricedProducts := priced(products)

	byStore := groupBy(storeProducts, storeLabel)
	byCategory := groupBy(products, categoryLabel)
	categories := countSeries(byCategory)

	return Charts{
		MonthlyTrend:    monthlyTrend(preferNonEmpty(pricedProducts, products)),
		Inventory:       countSeries(byStore),
		CategoryShare:   categories,
		AvgPriceByStore: avgPriceByStore(pricedProducts, storeProducts),
		CategoryCounts:  cloneSeries(categories),
		PriceRating:     priceRating(byStore),
	}
}

func monthlyTrend(products []product.Product) Series {
	groups := groupBy(products, func(p product.Product) string { return p.Month() })
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].label < groups[j].label })

	s := emptySeries()
	for _, g := range groups {
		s.Labels = append(s.Labels, g.label)
		s.Values = append(s.Values, meanPrice(g.items))
	}
	return s
}

// avgPriceByStore groups priced known-store products, then priced products,
// then the store-preferred set, whichever is first non-empty. Each group
// averages its priced members, or all members when none are priced.
func avgPriceByStore(pricedProducts, storeProducts []product.Product) Series {
	source := preferNonEmpty(filter(pricedProducts, knownStore), pricedProducts)
	source = preferNonEmpty(source, storeProducts)

	s := emptySeries()
	for _, g := range groupBy(source, storeLabel) {
		members := preferNonEmpty(priced(g.items), g.items)
		s.Labels = append(s.Labels, g.label)
		s.Values = append(s.Values, meanPrice(members))
	}
	return s
}

func priceRating(byStore []group) []ScatterSeries {
	out := make([]ScatterSeries, 0, len(byStore))
	for _, g := range byStore {
		series := ScatterSeries{
			Store:   g.label,
			Prices:  []float64{},
			Ratings: []float64{},
			Names:   []string{},
		}
		for _, p := range g.items {
			if p.Price <= 0 || p.Rating <= 0 {
				continue
			}
			series.Prices = append(series.Prices, p.Price)
			series.Ratings = append(series.Ratings, p.Rating)
			series.Names = append(series.Names, p.Name)
		}
		if len(series.Prices) == 0 {
			continue
		}
		out = append(out, series)
	}
	return out
}

func countSeries(groups []group) Series {
	s := emptySeries()
	for _, g := range groups {
		s.Labels = append(s.Labels, g.label)
		s.Values = append(s.Values, float64(len(g.items)))
	}
	return s
}

func cloneSeries(s Series) Series {
	return Series{
		Labels: append([]string{}, s.Labels...),
		Values: append([]float64{}, s.Values...),
	}
}

// group is one bucket of groupBy, labelled by its key.
type group struct {
	label string
	items []product.Product
}

// groupBy buckets products by key. Buckets appear in first-seen order.
func groupBy(products []product.Product, key func(product.Product) string) []group {
	index := make(map[string]int)
	var groups []group

	for _, p := range products {
		k := key(p)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{label: k})
		}
		groups[i].items = append(groups[i].items, p)
	}
	return groups
}

func preferNonEmpty(preferred, fallback []product.Product) []product.Product {
	if len(preferred) > 0 {
		return preferred
	}
	return fallback
}

func knownStore(p product.Product) bool {
	return normalize.IsKnownStore(p.Store)
}

func storeLabel(p product.Product) string {
	if p.Store == "" {
		return normalize.UnknownStore
	}
	return p.Store
}

func categoryLabel(p product.Product) string {
	if p.Category == "" {
		return product.DefaultCategory
	}
	return p.Category
}
