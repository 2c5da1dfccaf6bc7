// Package main renders graph documents offline: it runs the same parser and
// runner as the API server and writes each preview node to a PNG file.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rasterflow/core/internal/catalog"
	"github.com/rasterflow/core/internal/models"
	"github.com/rasterflow/core/internal/parser"
	"github.com/rasterflow/core/internal/raster"
	"github.com/rasterflow/core/internal/runner"
)

func main() {
	graphPath := flag.String("graph", "", "path to a graph document (JSON)")
	outDir := flag.String("out", ".", "directory for rendered PNG files")
	timeout := flag.Duration("timeout", 15*time.Second, "remote fetch timeout")
	flag.Parse()

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "usage: render -graph document.json [-out dir]")
		os.Exit(2)
	}

	if err := render(*graphPath, *outDir, *timeout, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func render(graphPath, outDir string, timeout time.Duration, stdout io.Writer) error {
	data, err := os.ReadFile(graphPath)
	if err != nil {
		return err
	}

	registry := catalog.NewRegistry(raster.NewFetcher(timeout))

	doc, err := parser.ParseGraph(data, registry)
	if err != nil {
		return err
	}

	report, err := runner.Run(context.Background(), registry, doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, output := range report.Outputs {
		png, err := decodeDataURI(output.Image.Data)
		if err != nil {
			return fmt.Errorf("decode preview %s: %w", output.NodeID, err)
		}
		name := filepath.Join(outDir, output.NodeID+".png")
		if err := os.WriteFile(name, png, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", name, output.Image.Width, output.Image.Height)
	}

	for _, id := range sortedIDs(report.Statuses) {
		result := report.Statuses[id]
		if result.Error != "" {
			fmt.Fprintf(stdout, "%s: %s (%s)\n", id, result.Status, result.Error)
		} else {
			fmt.Fprintf(stdout, "%s: %s\n", id, result.Status)
		}
	}

	if report.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d nodes failed", report.Stats.Failed, report.Stats.TotalNodes)
	}

	return nil
}

const dataURIPrefix = "data:image/png;base64,"

func decodeDataURI(uri string) ([]byte, error) {
	raw, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("unexpected preview encoding")
	}
	return base64.StdEncoding.DecodeString(raw)
}

func sortedIDs(statuses map[string]models.NodeResult) []string {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
