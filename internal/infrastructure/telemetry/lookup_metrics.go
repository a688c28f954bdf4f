package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// LookupMetrics counts data lookups performed by the application services.
// A nil *LookupMetrics is valid and records nothing.
type LookupMetrics struct {
	lookups *Counter
	results *Histogram
}

// NewLookupMetrics registers the lookup instruments on meter.
func NewLookupMetrics(meter metric.Meter) (*LookupMetrics, error) {
	lookups, err := NewCounter(meter, "invoice_api.lookups", "Number of data lookups", "{lookup}")
	if err != nil {
		return nil, err
	}
	results, err := NewHistogram(meter, HistogramOpts{
		Name:        "invoice_api.lookup.results",
		Description: "Number of records returned per lookup",
		Unit:        "{record}",
		Boundaries:  []float64{0, 1, 2, 5, 10},
	})
	if err != nil {
		return nil, err
	}
	return &LookupMetrics{lookups: lookups, results: results}, nil
}

// Record counts one lookup of resource via operation and the number of records it produced.
func (m *LookupMetrics) Record(ctx context.Context, resource, operation, outcome string, records int) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		AttrResource.String(resource),
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	}
	m.lookups.Inc(ctx, attrs...)
	m.results.Record(ctx, float64(records), attrs[:2]...)
}
