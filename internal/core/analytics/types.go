package analytics

import "github.com/storepulse/storepulse/internal/core/product"

// TopProductsLimit caps the price ranking shown on the dashboard.
const TopProductsLimit = 6

// KPIs is the dashboard summary row.
type KPIs struct {
	Total             int     `json:"total"`
	StoreCount        int     `json:"storeCount"`
	AveragePrice      float64 `json:"averagePrice"`
	TotalAvailability int     `json:"totalAvailability"`
	AverageRating     float64 `json:"averageRating"` // over rated products only
}

// Series is one labelled chart dataset. Labels and Values are parallel.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ScatterSeries holds one store's price/rating points. The three slices are parallel.
type ScatterSeries struct {
	Store   string    `json:"store"`
	Prices  []float64 `json:"prices"`
	Ratings []float64 `json:"ratings"`
	Names   []string  `json:"names"`
}

// Charts groups every chart projection rendered by the dashboard pages.
type Charts struct {
	MonthlyTrend    Series          `json:"monthlyTrend"`
	Inventory       Series          `json:"inventory"`
	CategoryShare   Series          `json:"categoryShare"`
	AvgPriceByStore Series          `json:"avgPriceByStore"`
	CategoryCounts  Series          `json:"categoryCounts"`
	PriceRating     []ScatterSeries `json:"priceRating"`
}

// Result is everything derived from one product snapshot. It is recomputed per
// request and never persisted.
type Result struct {
	KPIs        KPIs              `json:"kpis"`
	TopProducts []product.Product `json:"topProducts"`
	Charts      Charts            `json:"charts"`
}

func emptySeries() Series {
	return Series{Labels: []string{}, Values: []float64{}}
}
