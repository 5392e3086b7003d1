// Package dbmetrics wraps *sql.DB so every query is measured without the
// repositories knowing about Prometheus.
package dbmetrics

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/schnittwerk/SW-SchedulingService/pkg/metrics"
)

// DB is a metrics-recording wrapper around *sql.DB.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	dbName  string
}

// Wrap wraps db with query metrics.
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string) *DB {
	return &DB{db: db, metrics: m, dbName: dbName}
}

// WrapWithDefault wraps db and starts a goroutine publishing connection-pool
// gauges every 15 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, dbName)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

// ExecContext runs an exec query and records its duration.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// QueryContext runs a row-set query and records its duration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext runs a single-row query and records its duration.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// BeginTx opens a transaction on the wrapped pool.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	op := queryOperation(query)
	d.metrics.DBQueriesTotal.WithLabelValues(op, strconv.FormatBool(err == nil)).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(d.dbName).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues(d.dbName).Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues(d.dbName).Set(float64(stats.InUse))
		}
	}
}

// queryOperation extracts the leading SQL verb for the metric label.
func queryOperation(query string) string {
	fields := strings.Fields(strings.TrimSpace(query))
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

// measuredTx records metrics for queries executed on a transaction.
type measuredTx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, nil)
	return row
}

func (t *measuredTx) Commit() error {
	return t.tx.Commit()
}

func (t *measuredTx) Rollback() error {
	return t.tx.Rollback()
}
