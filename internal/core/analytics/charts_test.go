package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse/internal/core/product"
)

func TestBuildCharts_MonthlyTrend(t *testing.T) {
	products := []product.Product{
		{Store: "Amazon", Price: 30, Date: "2026-02-10"},
		{Store: "Amazon", Price: 0, Date: "2025-12-01"},
		{Store: "Coolmod", Price: 10, Date: "2026-01-05"},
		{Store: "Coolmod", Price: 20, Date: "2026-02-28"},
	}

	trend := BuildCharts(products).MonthlyTrend

	require.Equal(t, []string{"2026-01", "2026-02"}, trend.Labels)
	require.InDeltaSlice(t, []float64{10, 25}, trend.Values, 1e-9)
}

func TestBuildCharts_MonthlyTrendUnpricedFallsBackToAll(t *testing.T) {
	products := []product.Product{
		{Date: "2026-02-10"},
		{Date: "2026-01-10"},
	}

	trend := BuildCharts(products).MonthlyTrend

	require.Equal(t, []string{"2026-01", "2026-02"}, trend.Labels)
	require.Equal(t, []float64{0, 0}, trend.Values)
}

func TestBuildCharts_InventoryPrefersKnownStores(t *testing.T) {
	products := []product.Product{
		{Store: "Unknown", Category: "Misc"},
		{Store: "Westwing", Category: "Sofas"},
		{Store: "Amazon", Category: "bestseller"},
		{Store: "Westwing", Category: "Lamps"},
	}

	inv := BuildCharts(products).Inventory
	require.Equal(t, []string{"Westwing", "Amazon"}, inv.Labels)
	require.Equal(t, []float64{2, 1}, inv.Values)
}

func TestBuildCharts_InventoryFallsBackWhenNoKnownStore(t *testing.T) {
	products := []product.Product{
		{Store: "Unknown"},
		{Store: "Unknown"},
	}

	inv := BuildCharts(products).Inventory
	require.Equal(t, []string{"Unknown"}, inv.Labels)
	require.Equal(t, []float64{2}, inv.Values)
}

func TestBuildCharts_CategoryShare(t *testing.T) {
	products := []product.Product{
		{Store: "Unknown", Category: "Shoes"},
		{Store: "Ulanka", Category: "Boots"},
		{Store: "Ulanka", Category: "Shoes"},
	}

	charts := BuildCharts(products)
	require.Equal(t, []string{"Shoes", "Boots"}, charts.CategoryShare.Labels)
	require.Equal(t, []float64{2, 1}, charts.CategoryShare.Values)
	require.Equal(t, charts.CategoryShare, charts.CategoryCounts)

	charts.CategoryCounts.Labels[0] = "changed"
	require.Equal(t, "Shoes", charts.CategoryShare.Labels[0])
}

func TestBuildCharts_AvgPriceByStore(t *testing.T) {
	products := []product.Product{
		{Store: "Amazon", Price: 10},
		{Store: "Amazon", Price: 0},
		{Store: "Amazon", Price: 30},
		{Store: "Coolmod", Price: 0},
		{Store: "Unknown", Price: 100},
	}

	avg := BuildCharts(products).AvgPriceByStore

	// Coolmod has no priced member and Unknown is not a known store.
	require.Equal(t, []string{"Amazon"}, avg.Labels)
	require.InDeltaSlice(t, []float64{20}, avg.Values, 1e-9)
}

func TestBuildCharts_AvgPriceByStorePricedUnknownOnly(t *testing.T) {
	products := []product.Product{
		{Store: "Coolmod", Price: 0},
		{Store: "Unknown", Price: 40},
		{Store: "Unknown", Price: 60},
	}

	avg := BuildCharts(products).AvgPriceByStore
	require.Equal(t, []string{"Unknown"}, avg.Labels)
	require.InDeltaSlice(t, []float64{50}, avg.Values, 1e-9)
}

func TestBuildCharts_AvgPriceByStoreNothingPriced(t *testing.T) {
	products := []product.Product{
		{Store: "Coolmod"},
		{Store: "Unknown"},
	}

	avg := BuildCharts(products).AvgPriceByStore
	require.Equal(t, []string{"Coolmod"}, avg.Labels)
	require.Equal(t, []float64{0}, avg.Values)
}

func TestBuildCharts_PriceRatingDropsEmptySeries(t *testing.T) {
	products := []product.Product{
		{Store: "Amazon", Name: "Echo", Price: 50, Rating: 4.5},
		{Store: "Amazon", Name: "Unrated", Price: 20},
		{Store: "Coolmod", Name: "Free", Rating: 5},
		{Store: "Amazon", Name: "Kindle", Price: 99.99, Rating: 4.8},
		{Store: "Unknown", Name: "Elsewhere", Price: 10, Rating: 3},
	}

	scatter := BuildCharts(products).PriceRating

	require.Len(t, scatter, 1)
	require.Equal(t, ScatterSeries{
		Store:   "Amazon",
		Prices:  []float64{50, 99.99},
		Ratings: []float64{4.5, 4.8},
		Names:   []string{"Echo", "Kindle"},
	}, scatter[0])
}

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	products := []product.Product{
		{ID: "1", Store: "Ulanka"},
		{ID: "2", Store: "Amazon"},
		{ID: "3", Store: "Ulanka"},
	}

	groups := groupBy(products, storeLabel)
	require.Len(t, groups, 2)
	require.Equal(t, "Ulanka", groups[0].label)
	require.Equal(t, []string{"1", "3"}, ids(groups[0].items))
	require.Equal(t, "Amazon", groups[1].label)
}
