package middleware

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPObserver принимает метрики HTTP запросов (реализуется metrics.Metrics)
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}
