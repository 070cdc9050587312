package memo

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// recorder counts engine events. The otel-backed implementation is installed
// via WithMeterProvider; the default discards everything.
type recorder interface {
	cellHit()
	cellMiss()
	scopeEntered()
	evicted(slots, scopes int)
}

type noopRecorder struct{}

func (noopRecorder) cellHit()         {}
func (noopRecorder) cellMiss()        {}
func (noopRecorder) scopeEntered()    {}
func (noopRecorder) evicted(int, int) {}

type otelRecorder struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	scopes    metric.Int64Counter
	evictions metric.Int64Counter
}

func newOtelRecorder(mp metric.MeterProvider) recorder {
	meter := mp.Meter("github.com/rememo-dev/rememo/memo")

	hits, err := meter.Int64Counter(
		"rememo.cell.hits",
		metric.WithDescription("Cache cell lookups answered from storage"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return noopRecorder{}
	}
	misses, err := meter.Int64Counter(
		"rememo.cell.misses",
		metric.WithDescription("Cache cell lookups that ran their factory"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return noopRecorder{}
	}
	scopes, err := meter.Int64Counter(
		"rememo.scope.entries",
		metric.WithDescription("Named scope entries"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return noopRecorder{}
	}
	evictions, err := meter.Int64Counter(
		"rememo.gc.evictions",
		metric.WithDescription("Slots and scopes deleted by the post-run sweep"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return noopRecorder{}
	}

	return &otelRecorder{hits: hits, misses: misses, scopes: scopes, evictions: evictions}
}

func (r *otelRecorder) cellHit()      { r.hits.Add(context.Background(), 1) }
func (r *otelRecorder) cellMiss()     { r.misses.Add(context.Background(), 1) }
func (r *otelRecorder) scopeEntered() { r.scopes.Add(context.Background(), 1) }

func (r *otelRecorder) evicted(slots, scopes int) {
	r.evictions.Add(context.Background(), int64(slots+scopes))
}
