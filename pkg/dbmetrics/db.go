// Package dbmetrics оборачивает *sql.DB для сбора метрик запросов и состояния пула соединений
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const (
	statusOK    = "ok"
	statusError = "error"

	// DefaultPoolStatsInterval период сбора статистики пула
	DefaultPoolStatsInterval = 15 * time.Second
)

// QueryObserver принимает длительность выполненных запросов
type QueryObserver interface {
	ObserveQuery(operation, status string, duration time.Duration)
}

// PoolObserver принимает статистику пула соединений
type PoolObserver interface {
	SetPoolStats(stats sql.DBStats)
}

// Collector объединяет оба наблюдателя (реализуется metrics.Metrics)
type Collector interface {
	QueryObserver
	PoolObserver
}

// DB обертка над *sql.DB
// observer может быть nil - тогда обертка ничего не измеряет
type DB struct {
	db       *sql.DB
	observer QueryObserver
}

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, observer QueryObserver) *DB {
	return &DB{db: db, observer: observer}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// с интервалом DefaultPoolStatsInterval до закрытия stop
func WrapWithDefault(db *sql.DB, collector Collector, stop <-chan struct{}) *DB {
	go collectPoolStats(db, collector, DefaultPoolStatsInterval, stop)
	return Wrap(db, collector)
}

func collectPoolStats(db *sql.DB, observer PoolObserver, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	observer.SetPoolStats(db.Stats())
	for {
		select {
		case <-ticker.C:
			observer.SetPoolStats(db.Stats())
		case <-stop:
			return
		}
	}
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	observe(d.observer, query, start, err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	observe(d.observer, query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
// Ошибка сканирования здесь недоступна, поэтому статус всегда ok
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	observe(d.observer, query, start, nil)
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, observer: d.observer}, nil
}

// Tx обертка над *sql.Tx
type Tx struct {
	tx       *sql.Tx
	observer QueryObserver
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	observe(t.observer, query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	observe(t.observer, query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	observe(t.observer, query, start, nil)
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func observe(observer QueryObserver, query string, start time.Time, err error) {
	if observer == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusError
	}
	observer.ObserveQuery(operationOf(query), status, time.Since(start))
}

// operationOf возвращает первое слово запроса в нижнем регистре (select, insert, ...)
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
