// Package runner orders the nodes of a graph document by their references
// and executes them, collecting per-node statuses and rendered previews.
package runner

import (
	"context"
	"fmt"

	"github.com/rasterflow/core/internal/catalog"
	"github.com/rasterflow/core/internal/models"
)

// Run executes a graph document against the operation registry and reports
// the outcome of every node. Ordering problems fail the whole run; a node
// that fails while executing only poisons the nodes downstream of it.
func Run(ctx context.Context, reg *catalog.Registry, doc *models.Graph) (*models.RunReport, error) {
	plan, err := NewPlan(doc)
	if err != nil {
		return nil, err
	}
	return plan.Execute(ctx, reg), nil
}

// Execute runs the planned nodes in order. Preview results are collected as
// outputs in execution order.
func (p *Plan) Execute(ctx context.Context, reg *catalog.Registry) *models.RunReport {
	statuses := make(map[string]models.NodeResult, len(p.order))
	results := make(map[string]catalog.Value, len(p.order))
	outputs := make([]models.Output, 0)

	for _, id := range p.order {
		statuses[id] = models.NodeResult{Status: models.StatusPending}
	}

	for _, id := range p.order {
		if err := ctx.Err(); err != nil {
			statuses[id] = models.NodeResult{Status: models.StatusFailed, Error: err.Error()}
			continue
		}

		statuses[id] = models.NodeResult{Status: models.StatusRunning}

		value, err := p.invoke(ctx, reg, p.nodes[id], results, statuses)
		if err != nil {
			statuses[id] = models.NodeResult{Status: models.StatusFailed, Error: err.Error()}
			continue
		}

		statuses[id] = models.NodeResult{Status: models.StatusSucceeded}
		results[id] = value

		if value.Preview != nil {
			outputs = append(outputs, models.Output{NodeID: id, Image: *value.Preview})
		}
	}

	stats := &models.RunStats{TotalNodes: len(p.order)}
	for _, result := range statuses {
		switch result.Status {
		case models.StatusSucceeded:
			stats.Succeeded++
		case models.StatusFailed:
			stats.Failed++
		}
	}

	return &models.RunReport{Statuses: statuses, Outputs: outputs, Stats: stats}
}

// invoke assembles the arguments for one node and applies its operation.
// Image ports resolve against upstream results, everything else against the
// node's literal parameters.
func (p *Plan) invoke(ctx context.Context, reg *catalog.Registry, node models.Node, results map[string]catalog.Value, statuses map[string]models.NodeResult) (catalog.Value, error) {
	spec, ok := reg.Lookup(node.Op)
	if !ok {
		return catalog.Value{}, fmt.Errorf("%w %q", catalog.ErrUnknownOperation, node.Op)
	}

	args := make(catalog.Args, len(spec.Params))

	for _, param := range spec.Params {
		if param.Type == catalog.TypeImage {
			source := node.Inputs[param.Name]
			if statuses[source].Status == models.StatusFailed {
				return catalog.Value{}, fmt.Errorf("upstream node %s failed", source)
			}
			value, ok := results[source]
			if !ok || value.Image == nil {
				return catalog.Value{}, fmt.Errorf("input %q has no image", param.Name)
			}
			args[param.Name] = value.Image
			continue
		}

		raw, ok := node.Params[param.Name]
		if !ok {
			return catalog.Value{}, fmt.Errorf("missing parameter %q", param.Name)
		}

		resolved, err := catalog.ResolveLiteral(param, raw)
		if err != nil {
			return catalog.Value{}, err
		}
		args[param.Name] = resolved
	}

	return spec.Apply(ctx, args)
}
