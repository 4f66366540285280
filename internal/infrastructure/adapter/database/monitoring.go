package database

import (
	"context"
	"sync/atomic"
	"time"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// slowQueryThreshold is the duration above which a query is logged as slow
const slowQueryThreshold = 100 * time.Millisecond

// QueryMetrics holds metrics about a single database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsStats holds running totals across all measured operations
type MetricsStats struct {
	TotalQueries int64
	SlowQueries  int64
	FailedOps    int64
}

// MetricsCollector measures database operations and keeps running
// totals. Slow operations are logged as they happen.
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	totalQueries atomic.Int64
	slowQueries  atomic.Int64
	failedOps    atomic.Int64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MeasureQuery measures the execution time of a database operation
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Now().Sub(start),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	c.totalQueries.Add(1)
	if metrics.Failed {
		c.failedOps.Add(1)
	}
	if metrics.Duration > slowQueryThreshold {
		c.slowQueries.Add(1)
		c.logger.Warn("Slow database operation", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}

// Stats returns a snapshot of the running totals
func (c *MetricsCollector) Stats() MetricsStats {
	return MetricsStats{
		TotalQueries: c.totalQueries.Load(),
		SlowQueries:  c.slowQueries.Load(),
		FailedOps:    c.failedOps.Load(),
	}
}
