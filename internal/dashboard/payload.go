package dashboard

import (
	"github.com/storepulse/storepulse/internal/core/analytics"
	"github.com/storepulse/storepulse/internal/core/product"
)

// Payload is the data behind the main dashboard page and GET /v1/dashboard.
type Payload struct {
	Products    []product.Product `json:"products"`
	Insights    []string          `json:"insights"`
	KPIs        analytics.KPIs    `json:"kpis"`
	TopProducts []product.Product `json:"topProducts"`
	Charts      analytics.Charts  `json:"charts"`
	Source      string            `json:"source"`
}

// ChartsPayload is the data behind the chart pages and GET /v1/charts.
type ChartsPayload struct {
	Products []product.Product `json:"products"`
	Charts   analytics.Charts  `json:"charts"`
	Source   string            `json:"source"`
}

func newPayload(snap Snapshot) Payload {
	products := snap.Products
	if products == nil {
		products = []product.Product{}
	}

	res := analytics.Aggregate(products)
	return Payload{
		Products:    products,
		Insights:    append([]string(nil), Insights...),
		KPIs:        res.KPIs,
		TopProducts: res.TopProducts,
		Charts:      res.Charts,
		Source:      snap.Source,
	}
}

// EmptyPayload is the best-effort page content when no data could be loaded.
func EmptyPayload() Payload {
	return newPayload(Snapshot{Source: SourceEmpty})
}

// EmptyChartsPayload is EmptyPayload for the chart pages.
func EmptyChartsPayload() ChartsPayload {
	return ChartsPayload{
		Products: []product.Product{},
		Charts:   analytics.BuildCharts(nil),
		Source:   SourceEmpty,
	}
}
