// Package handlers implements the HTTP endpoints of the graph runner API:
// liveness, the operation catalog, and graph execution.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rasterflow/core/internal/catalog"
	"github.com/rasterflow/core/internal/parser"
	"github.com/rasterflow/core/internal/runner"
)

// RunHandler executes graph documents posted by the editor. The body is
// capped at maxBody bytes and the request context is carried into every
// node, so remote fetches stop when the client goes away.
func RunHandler(reg *catalog.Registry, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		graph, err := parser.ParseGraph(body, reg)
		if err != nil {
			http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
			return
		}

		report, err := runner.Run(r.Context(), reg, graph)
		if err != nil {
			http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
			return
		}

		slog.Debug("graph run finished",
			"nodes", report.Stats.TotalNodes,
			"succeeded", report.Stats.Succeeded,
			"failed", report.Stats.Failed)

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(report); err != nil {
			slog.Error("encoding run report", "error", err)
		}
	}
}
