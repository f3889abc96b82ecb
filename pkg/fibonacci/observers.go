// This file contains the Observer implementations for domain construction
// and lookup events.
package fibonacci

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Observer receives notifications about domain activity: table
// materialization and rejected lookups. Observers must be safe for
// concurrent use; notifications may arrive from any goroutine that touches
// a domain first.
type Observer interface {
	// TableBuilt is invoked once per fixed-width domain, when its table is
	// materialized.
	TableBuilt(domain string, length int, elapsed time.Duration)

	// LookupOutOfRange is invoked when a lookup is rejected because the
	// index has no representable value in the domain.
	LookupOutOfRange(domain string, index int64)
}

var (
	observersMu sync.RWMutex
	observers   []Observer
)

// RegisterObserver attaches an observer to all domains in the package.
// Registration is process-wide and cannot be undone; it is intended to be
// called during program initialization, before domains are first used.
func RegisterObserver(o Observer) {
	if o == nil {
		return
	}
	observersMu.Lock()
	defer observersMu.Unlock()
	observers = append(observers, o)
}

func notifyTableBuilt(domain string, length int, elapsed time.Duration) {
	observersMu.RLock()
	defer observersMu.RUnlock()
	for _, o := range observers {
		o.TableBuilt(domain, length, elapsed)
	}
}

func notifyLookupOutOfRange(domain string, index int64) {
	observersMu.RLock()
	defer observersMu.RUnlock()
	for _, o := range observers {
		o.LookupOutOfRange(domain, index)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs domain events using zerolog. Table builds are logged
// at info level (they happen at most once per domain), rejected lookups at
// debug level to keep hot paths quiet.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer that logs to the given logger.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// TableBuilt implements Observer.
func (o *LoggingObserver) TableBuilt(domain string, length int, elapsed time.Duration) {
	o.logger.Info().
		Str("domain", domain).
		Int("length", length).
		Dur("elapsed", elapsed).
		Msg("fibonacci table built")
}

// LookupOutOfRange implements Observer.
func (o *LoggingObserver) LookupOutOfRange(domain string, index int64) {
	o.logger.Debug().
		Str("domain", domain).
		Int64("index", index).
		Msg("fibonacci lookup out of range")
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer
// ─────────────────────────────────────────────────────────────────────────────

var (
	tablesBuiltTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fibseq_tables_built_total",
		Help: "Number of Fibonacci tables materialized, by domain.",
	}, []string{"domain"})

	tableLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fibseq_table_length",
		Help: "Number of representable Fibonacci terms, by domain.",
	}, []string{"domain"})

	lookupsOutOfRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fibseq_lookups_out_of_range_total",
		Help: "Number of lookups rejected as unrepresentable, by domain.",
	}, []string{"domain"})
)

// MetricsObserver exports domain events as Prometheus metrics through the
// default registry.
type MetricsObserver struct{}

// NewMetricsObserver creates an observer backed by the package-level
// Prometheus collectors.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// TableBuilt implements Observer.
func (o *MetricsObserver) TableBuilt(domain string, length int, elapsed time.Duration) {
	tablesBuiltTotal.WithLabelValues(domain).Inc()
	tableLength.WithLabelValues(domain).Set(float64(length))
}

// LookupOutOfRange implements Observer.
func (o *MetricsObserver) LookupOutOfRange(domain string, index int64) {
	lookupsOutOfRangeTotal.WithLabelValues(domain).Inc()
}
