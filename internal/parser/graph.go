// Package parser decodes graph documents sent by the node editor and checks
// them for structural problems before any operation is executed.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/rasterflow/core/internal/catalog"
	"github.com/rasterflow/core/internal/models"
)

// ParseGraph unmarshals a graph document and validates its structure against
// the operation registry: every node must name a known operation, literal
// parameters must have the right JSON shape, and image ports must reference
// existing nodes that produce images. Parameter values themselves (color
// strings, dimension ranges) are checked when the node runs, so one bad value
// fails only its own node.
func ParseGraph(data []byte, reg *catalog.Registry) (*models.Graph, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty graph document")
	}

	var graph models.Graph
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph: %w", err)
	}

	if err := validateGraph(&graph, reg); err != nil {
		return nil, err
	}

	return &graph, nil
}

func validateGraph(graph *models.Graph, reg *catalog.Registry) error {
	byID := make(map[string]models.Node, len(graph.Nodes))

	for _, node := range graph.Nodes {
		if node.ID == "" {
			return fmt.Errorf("invalid graph: node with empty id")
		}
		if _, dup := byID[node.ID]; dup {
			return fmt.Errorf("invalid graph: duplicate node id %q", node.ID)
		}
		byID[node.ID] = node
	}

	for _, node := range graph.Nodes {
		if err := validateNode(node, byID, reg); err != nil {
			return err
		}
	}

	return nil
}

func validateNode(node models.Node, byID map[string]models.Node, reg *catalog.Registry) error {
	spec, ok := reg.Lookup(node.Op)
	if !ok {
		return fmt.Errorf("invalid graph: node %q: %w %q", node.ID, catalog.ErrUnknownOperation, node.Op)
	}

	for name, value := range node.Params {
		param, ok := spec.Param(name)
		if !ok {
			return fmt.Errorf("invalid graph: node %q has unknown parameter %q for %s", node.ID, name, spec.Kind)
		}
		if err := catalog.CheckLiteral(param, value); err != nil {
			return fmt.Errorf("invalid graph: node %q: %w", node.ID, err)
		}
	}

	for port, source := range node.Inputs {
		param, ok := spec.Param(port)
		if !ok {
			return fmt.Errorf("invalid graph: node %q has unknown input port %q for %s", node.ID, port, spec.Kind)
		}
		if param.Type != catalog.TypeImage {
			return fmt.Errorf("invalid graph: node %q wires parameter %q, which is not an image port", node.ID, port)
		}
		upstream, ok := byID[source]
		if !ok {
			return fmt.Errorf("invalid graph: node %q input %q references unknown node %q", node.ID, port, source)
		}
		if upSpec, ok := reg.Lookup(upstream.Op); ok && upSpec.Result != catalog.ResultImage {
			return fmt.Errorf("invalid graph: node %q input %q references %q, which does not produce an image", node.ID, port, source)
		}
	}

	return missingArguments(node, spec)
}

func missingArguments(node models.Node, spec catalog.OpSpec) error {
	for _, param := range spec.Params {
		if param.Type == catalog.TypeImage {
			if _, ok := node.Inputs[param.Name]; !ok {
				return fmt.Errorf("invalid graph: node %q is missing input %q", node.ID, param.Name)
			}
			continue
		}
		if _, ok := node.Params[param.Name]; !ok {
			return fmt.Errorf("invalid graph: node %q is missing parameter %q", node.ID, param.Name)
		}
	}

	return nil
}
