// Package main starts the HTTP server behind the node-graph image editor.
// It wires the operation registry into the API handlers and serves JSON
// responses for the browser client.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/rasterflow/core/cmd/api/middleware"
	"github.com/rasterflow/core/internal/catalog"
	"github.com/rasterflow/core/internal/config"
	"github.com/rasterflow/core/internal/handlers"
	"github.com/rasterflow/core/internal/raster"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()
	registry := catalog.NewRegistry(raster.NewFetcher(cfg.FetchTimeout))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/catalog", handlers.CatalogHandler(registry))
	mux.HandleFunc("/run", handlers.RunHandler(registry, cfg.MaxBodyBytes))

	slog.Info("🚀 server starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, middleware.Cors(mux)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
