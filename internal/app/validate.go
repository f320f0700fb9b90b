package app

import (
	"context"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	entries, err := s.loadEntries(ctx, req.SourceRequest)
	if err != nil {
		return ValidateResult{}, err
	}
	_, summary, err := resolveTree(ctx, entries)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Entries: len(entries), Summary: summary}, nil
}
