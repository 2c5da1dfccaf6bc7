// Package main renders graph documents offline: it runs the same parser and
// runner as the API server and writes each preview node to a PNG file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRenderWritesPreviews(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": "canvas", "op": "create_canvas", "params": {"width": 16, "height": 12, "background_color": "#336699"}},
			{"id": "out", "op": "preview", "inputs": {"image": "canvas"}}
		]
	}`

	outDir := t.TempDir()
	var stdout bytes.Buffer

	err := render(writeGraph(t, doc), outDir, time.Second, &stdout)

	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(outDir, "out.png"))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	clone := imaging.Clone(img)
	assert.Equal(t, uint8(0x33), clone.NRGBAAt(8, 6).R)
	assert.Equal(t, uint8(0x66), clone.NRGBAAt(8, 6).G)
	assert.Equal(t, uint8(0x99), clone.NRGBAAt(8, 6).B)

	assert.Contains(t, stdout.String(), "canvas: succeeded")
	assert.Contains(t, stdout.String(), "out: succeeded")
	assert.Contains(t, stdout.String(), "wrote")
}

func TestRenderReportsNodeFailures(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": "good", "op": "create_canvas", "params": {"width": 8, "height": 8, "background_color": "#FF0000"}},
			{"id": "good-out", "op": "preview", "inputs": {"image": "good"}},
			{"id": "bad", "op": "create_canvas", "params": {"width": 8, "height": 8, "background_color": "nope"}}
		]
	}`

	outDir := t.TempDir()
	var stdout bytes.Buffer

	err := render(writeGraph(t, doc), outDir, time.Second, &stdout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 nodes failed")

	// Previews that did succeed are still written.
	_, statErr := os.Stat(filepath.Join(outDir, "good-out.png"))
	assert.NoError(t, statErr)

	assert.Contains(t, stdout.String(), "bad: failed")
}

func TestRenderRejectsBadInput(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := render(filepath.Join(t.TempDir(), "absent.json"), t.TempDir(), time.Second, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		err := render(writeGraph(t, `{"nodes": [`), t.TempDir(), time.Second, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal")
	})

	t.Run("structural problems are rejected before running", func(t *testing.T) {
		doc := `{"nodes": [{"id": "p", "op": "preview", "inputs": {"image": "ghost"}}]}`
		err := render(writeGraph(t, doc), t.TempDir(), time.Second, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown node")
	})
}

func TestDecodeDataURI(t *testing.T) {
	raw, err := decodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)

	_, err = decodeDataURI("data:image/jpeg;base64,aGVsbG8=")
	assert.Error(t, err)
}
