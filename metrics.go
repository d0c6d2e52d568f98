package svmlight

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load operation.
	// rows and nnz describe the parsed dataset (zero on failure),
	// duration is the total time taken, err is nil if successful.
	RecordLoad(rows, nnz int, duration time.Duration, err error)

	// RecordDump is called after each dump operation.
	RecordDump(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDump(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadRows       atomic.Int64
	LoadNNZ        atomic.Int64
	LoadTotalNanos atomic.Int64
	DumpCount      atomic.Int64
	DumpErrors     atomic.Int64
	DumpRows       atomic.Int64
	DumpTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows, nnz int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRows.Add(int64(rows))
	b.LoadNNZ.Add(int64(nnz))
}

// RecordDump implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDump(rows int, duration time.Duration, err error) {
	b.DumpCount.Add(1)
	b.DumpTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DumpErrors.Add(1)
		return
	}
	b.DumpRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadRows:     b.LoadRows.Load(),
		LoadNNZ:      b.LoadNNZ.Load(),
		LoadAvgNanos: avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		DumpCount:    b.DumpCount.Load(),
		DumpErrors:   b.DumpErrors.Load(),
		DumpRows:     b.DumpRows.Load(),
		DumpAvgNanos: avg(b.DumpTotalNanos.Load(), b.DumpCount.Load()),
	}
}

func avg(totalNanos, count int64) int64 {
	if count == 0 {
		return 0
	}
	return totalNanos / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	LoadRows     int64
	LoadNNZ      int64
	LoadAvgNanos int64
	DumpCount    int64
	DumpErrors   int64
	DumpRows     int64
	DumpAvgNanos int64
}
