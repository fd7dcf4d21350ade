package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"pizzeria/internal/service"
	"pizzeria/internal/web"
)

// appHandler is a handler whose failures are turned into a response by handle.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle maps every failure of fn onto one of the two static error pages.
// Error details are logged and never sent to the client.
func handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("handler panic", "method", r.Method, "path", r.URL.Path, "panic", rec)
				ServerError(w, r)
			}
		}()

		err := fn(w, r)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrOrderNotFound):
			slog.Info("order not found", "method", r.Method, "path", r.URL.Path)
			NotFound(w, r)
		default:
			slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
			ServerError(w, r)
		}
	}
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	writePage(w, http.StatusNotFound, web.NotFoundPage)
}

func ServerError(w http.ResponseWriter, _ *http.Request) {
	writePage(w, http.StatusInternalServerError, web.ErrorPage)
}

func writePage(w http.ResponseWriter, status int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page)
}
