// Package models defines the wire documents exchanged with the graph editor.
// It covers the node-graph definition and the run report returned to the UI.
package models

// Graph is the editor's node-graph document. Edges are implied by each node's
// input references rather than declared separately.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// Node is one operation instance: a catalog key plus literal parameters and
// references to upstream nodes, keyed by input port name.
type Node struct {
	ID     string            `json:"id"`
	Op     string            `json:"op"`
	Params map[string]any    `json:"params,omitempty"`
	Inputs map[string]string `json:"inputs,omitempty"`
}
