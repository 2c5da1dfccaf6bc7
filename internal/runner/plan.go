// Package runner orders the nodes of a graph document by their references
// and executes them, collecting per-node statuses and rendered previews.
package runner

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/rasterflow/core/internal/models"
)

// Ordering errors, classified with errors.Is by callers.
var (
	// ErrCycle is returned when the document's input references loop.
	ErrCycle = errors.New("runner: graph has a cycle")

	// ErrUnknownInput is returned when an input references a node that is
	// not in the document.
	ErrUnknownInput = errors.New("runner: input references unknown node")
)

// Plan is an executable ordering of a graph document. Every node appears
// after the nodes it references; independent nodes keep their document order.
type Plan struct {
	order []string
	nodes map[string]models.Node
}

// NewPlan derives the edges implied by the nodes' input references and
// topologically sorts them. Cycles and references to missing nodes are
// rejected here, before anything runs.
func NewPlan(doc *models.Graph) (*Plan, error) {
	dag := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	nodes := make(map[string]models.Node, len(doc.Nodes))
	position := make(map[string]int, len(doc.Nodes))

	for i, node := range doc.Nodes {
		if err := dag.AddVertex(node.ID); err != nil {
			return nil, fmt.Errorf("invalid graph: add node %q: %w", node.ID, err)
		}
		nodes[node.ID] = node
		position[node.ID] = i
	}

	for _, node := range doc.Nodes {
		for _, source := range node.Inputs {
			err := dag.AddEdge(source, node.ID)
			switch {
			case err == nil:
			case errors.Is(err, graph.ErrEdgeAlreadyExists):
				// Two ports of one node may consume the same source.
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return nil, fmt.Errorf("%w through node %q", ErrCycle, node.ID)
			case errors.Is(err, graph.ErrVertexNotFound):
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownInput, source, node.ID)
			default:
				return nil, fmt.Errorf("invalid graph: edge %q -> %q: %w", source, node.ID, err)
			}
		}
	}

	order, err := graph.StableTopologicalSort(dag, func(a, b string) bool {
		return position[a] < position[b]
	})
	if err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}

	return &Plan{order: order, nodes: nodes}, nil
}
