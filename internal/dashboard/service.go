package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/analytics"
	"github.com/storepulse/storepulse/internal/core/normalize"
	"github.com/storepulse/storepulse/internal/core/product"
)

var (
	// ErrDataUnavailable means the record store could not be read.
	ErrDataUnavailable = errors.New("record data unavailable")

	// ErrNoData means neither live records nor the sample catalog produced products.
	ErrNoData = errors.New("no product data available")
)

// Data sources reported in payloads.
const (
	SourceLive   = "live"
	SourceSample = "sample"
	SourceEmpty  = "empty"
)

const defaultReadTimeout = 10 * time.Second

// Insights are the static hints shown next to the dashboard KPIs.
var Insights = []string{
	"Category shares updated after the latest scrape.",
	"Price trends highlight seasonal demand shifts.",
	"Ratings are calculated only for items with real scores.",
	"Store mix shows how assortment varies by channel.",
	"Use charts to compare price positioning across stores.",
}

// RecordLister is the read side of storage.RecordStore.
type RecordLister interface {
	ListRecords(ctx context.Context) ([]*v1.RawRecord, error)
}

// SampleSource supplies the fallback catalog.
type SampleSource interface {
	Products() ([]product.Product, error)
}

// Snapshot is one loaded, deduplicated product set and where it came from.
type Snapshot struct {
	Products []product.Product
	Source   string
}

// Service runs the load, normalize, dedupe and aggregate pipeline per request.
type Service struct {
	records     RecordLister
	samples     SampleSource
	normalizer  *normalize.Normalizer
	readTimeout time.Duration

	readGroup singleflight.Group // collapses concurrent store reads
}

func NewService(records RecordLister, samples SampleSource, normalizer *normalize.Normalizer) *Service {
	if records == nil {
		panic("dashboard: record lister must not be nil")
	}
	if samples == nil {
		panic("dashboard: sample source must not be nil")
	}
	if normalizer == nil {
		normalizer = normalize.NewNormalizer()
	}
	return &Service{
		records:     records,
		samples:     samples,
		normalizer:  normalizer,
		readTimeout: defaultReadTimeout,
	}
}

// Load returns the current product set. Live records are normalized and
// deduplicated; when that yields nothing, or the store cannot be read, the
// sample catalog is returned as-is. Fails with ErrNoData only when the sample
// catalog fails too.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	records, err := s.listRecords(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		slog.Error("[Dashboard] Failed to read records, using sample catalog", "error", err)
		return s.fallback(err)
	}

	products := product.Dedupe(s.normalizer.NormalizeAll(records))
	if len(products) == 0 {
		slog.Info("[Dashboard] No live products, using sample catalog", "records", len(records))
		return s.fallback(nil)
	}

	slog.Debug("[Dashboard] Loaded live products",
		"records", len(records),
		"products", len(products))
	return Snapshot{Products: products, Source: SourceLive}, nil
}

// Dashboard builds the full dashboard payload.
func (s *Service) Dashboard(ctx context.Context) (Payload, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return Payload{}, err
	}
	return newPayload(snap), nil
}

// Charts builds the chart-page payload.
func (s *Service) Charts(ctx context.Context) (ChartsPayload, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return ChartsPayload{}, err
	}
	return ChartsPayload{
		Products: snap.Products,
		Charts:   analytics.BuildCharts(snap.Products),
		Source:   snap.Source,
	}, nil
}

// listRecords shares one in-flight store read between concurrent callers. The
// read is detached from the caller's cancellation so one aborted request does
// not fail the others waiting on it; readTimeout bounds it instead.
func (s *Service) listRecords(ctx context.Context) ([]*v1.RawRecord, error) {
	ch := s.readGroup.DoChan("records", func() (interface{}, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.readTimeout)
		defer cancel()
		return s.records.ListRecords(readCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		records, _ := res.Val.([]*v1.RawRecord)
		return records, nil
	}
}

func (s *Service) fallback(cause error) (Snapshot, error) {
	products, err := s.samples.Products()
	if err != nil {
		slog.Error("[Dashboard] Sample catalog unavailable", "error", err)
		return Snapshot{}, fmt.Errorf("%w: %w", ErrNoData, errors.Join(cause, err))
	}
	return Snapshot{Products: products, Source: SourceSample}, nil
}
