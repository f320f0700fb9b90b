package app

import (
	"context"
	"strings"

	"bundle-layout/internal/core"
	"bundle-layout/internal/policies"
)

func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	naming, err := policies.NewNamingPolicy(req.DotReplacement)
	if err != nil {
		return PlanResult{}, err
	}
	entries, err := s.loadEntries(ctx, req.SourceRequest)
	if err != nil {
		return PlanResult{}, err
	}
	root, summary, err := resolveTree(ctx, entries)
	if err != nil {
		return PlanResult{}, err
	}
	plan, err := core.NewPlanner(naming).Plan(ctx, root)
	if err != nil {
		return PlanResult{}, err
	}
	if outputPath := strings.TrimSpace(req.OutputPath); outputPath != "" {
		if err := s.Report.WritePlan(outputPath, plan, req.Format); err != nil {
			return PlanResult{}, err
		}
	}
	return PlanResult{Entries: len(entries), Summary: summary, Plan: plan}, nil
}
