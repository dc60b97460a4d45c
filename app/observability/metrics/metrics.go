package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	SignupTotal            metric.Int64Counter
	SigninTotal            metric.Int64Counter
	GuardRejectionsTotal   metric.Int64Counter
	BookmarkOpsTotal       metric.Int64Counter
	DbQueryDurationSeconds metric.Float64Histogram
	DbQueryErrorsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
// Instruments created before the provider is installed are delegated to it afterwards.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("go-bookmark-api")
		var err error
		m := &AppMetrics{}

		m.SignupTotal, err = meter.Int64Counter(
			"auth_signup_total",
			metric.WithDescription("Total number of signup attempts by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_signup_total: %v", err)
		}

		m.SigninTotal, err = meter.Int64Counter(
			"auth_signin_total",
			metric.WithDescription("Total number of signin attempts by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_signin_total: %v", err)
		}

		m.GuardRejectionsTotal, err = meter.Int64Counter(
			"auth_guard_rejections_total",
			metric.WithDescription("Requests rejected by the authorization guard by reason"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_guard_rejections_total: %v", err)
		}

		m.BookmarkOpsTotal, err = meter.Int64Counter(
			"bookmark_operations_total",
			metric.WithDescription("Total number of bookmark writes by operation"),
			metric.WithUnit("{operation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create bookmark_operations_total: %v", err)
		}

		m.DbQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the application instruments, creating them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

// RecordDBQuery observes the duration of one query and counts it as an error when err is set.
func RecordDBQuery(ctx context.Context, operation, table string, start time.Time, err error) {
	m := Get()
	attrs := metric.WithAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", table),
	)
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

// CountOutcome increments counter with an outcome attribute.
func CountOutcome(ctx context.Context, counter metric.Int64Counter, key, value string) {
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String(key, value)))
}
