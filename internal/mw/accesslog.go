package mw

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// AccessLogger writes one JSON line per request through chi's RequestLogger.
// It only observes; request handling never depends on it.
type AccessLogger struct {
	logger *slog.Logger
}

func NewAccessLogger(w io.Writer) *AccessLogger {
	return &AccessLogger{logger: slog.New(slog.NewJSONHandler(w, nil))}
}

// OpenAccessLog opens path for appending, creating it and its directory.
func OpenAccessLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	return f, nil
}

func (l *AccessLogger) Handler() func(http.Handler) http.Handler {
	return middleware.RequestLogger(l)
}

func (l *AccessLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	if r.URL.Path == "/favicon.ico" {
		return skipEntry{}
	}
	return &accessEntry{
		logger: l.logger,
		method: r.Method,
		url:    r.RequestURI,
		remote: r.RemoteAddr,
	}
}

type accessEntry struct {
	logger *slog.Logger
	method string
	url    string
	remote string
}

func (e *accessEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	e.logger.Info("request",
		"method", e.method,
		"url", e.url,
		"status", status,
		"bytes", bytes,
		"latency_ms", float64(elapsed.Microseconds())/1000,
		"remote", e.remote,
	)
}

func (e *accessEntry) Panic(v interface{}, _ []byte) {
	e.logger.Error("panic", "method", e.method, "url", e.url, "panic", fmt.Sprint(v))
}

type skipEntry struct{}

func (skipEntry) Write(int, int, http.Header, time.Duration, interface{}) {}

func (skipEntry) Panic(interface{}, []byte) {}
