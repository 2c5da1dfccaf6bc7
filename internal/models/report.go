// Package models defines the wire documents exchanged with the graph editor.
// It covers the node-graph definition and the run report returned to the UI.
package models

import "github.com/rasterflow/core/internal/raster"

// NodeStatus tracks a node through one run of the graph.
type NodeStatus string

const (
	StatusPending   NodeStatus = "pending"
	StatusRunning   NodeStatus = "running"
	StatusSucceeded NodeStatus = "succeeded"
	StatusFailed    NodeStatus = "failed"
)

// NodeResult is the terminal state of one node after a run.
type NodeResult struct {
	Status NodeStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Output is a rendered preview attributed to the node that produced it.
type Output struct {
	NodeID string         `json:"node_id"`
	Image  raster.Preview `json:"image"`
}

// RunReport is the full result document for one run: per-node statuses plus
// every preview the graph produced, in execution order.
type RunReport struct {
	Statuses map[string]NodeResult `json:"statuses"`
	Outputs  []Output              `json:"outputs"`
	Stats    *RunStats             `json:"stats,omitempty"`
}

type RunStats struct {
	TotalNodes int `json:"total_nodes"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
}
