package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pizzeria/internal/config"
	"pizzeria/internal/database"
	"pizzeria/internal/handler"
	"pizzeria/internal/mw"
	"pizzeria/internal/service"
	"pizzeria/internal/storage"
	"pizzeria/internal/web"
)

const collectionName = "orders"

func main() {
	cfg := config.New()

	// Storage
	var store storage.Store
	if cfg.DatabaseURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := database.NewDB(ctx, cfg.DatabaseURI)
		if err != nil {
			cancel()
			slog.Error("failed to connect to DB", "error", err)
			os.Exit(1)
		}
		defer database.CloseDB(db)

		err = database.InitSchema(ctx, db, collectionName)
		cancel()
		if err != nil {
			slog.Error("failed to init DB schema", "error", err)
			os.Exit(1)
		}
		store = storage.NewPostgresStore(db, collectionName)
		slog.Info("using postgres storage", "collection", collectionName)
	} else {
		store = storage.NewFileStore(cfg.DataFile)
		slog.Info("using file storage", "path", cfg.DataFile)
	}

	// Services
	orderSvc := service.NewOrderService(store)

	views, err := web.NewRenderer()
	if err != nil {
		slog.Error("failed to load views", "error", err)
		os.Exit(1)
	}

	var public fs.FS = web.PublicFS()
	if cfg.PublicDir != "" {
		public = os.DirFS(cfg.PublicDir)
	}

	accessLog, err := mw.OpenAccessLog(cfg.AccessLog)
	if err != nil {
		slog.Error("failed to open access log", "error", err)
		os.Exit(1)
	}
	defer accessLog.Close()

	// Router
	r := chi.NewRouter()

	r.Use(mw.NewAccessLogger(accessLog).Handler())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.MethodOverride)

	handler.Register(r, orderSvc, views, public)

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress, "orders", "http://"+cfg.RunAddress+"/orders")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
