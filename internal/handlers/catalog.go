// Package handlers implements the HTTP endpoints of the graph runner API:
// liveness, the operation catalog, and graph execution.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rasterflow/core/internal/catalog"
)

// CatalogResponse carries the operation contract the editor builds its node
// palette from.
type CatalogResponse struct {
	Operations []catalog.OpSpec `json:"operations"`
}

func CatalogHandler(reg *catalog.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(CatalogResponse{Operations: reg.Specs()}); err != nil {
			slog.Error("encoding catalog", "error", err)
		}
	}
}
