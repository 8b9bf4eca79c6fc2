package api

import (
	"context"
)

func updateCandidate(ctx context.Context, input candidateJSON) (*entryJSON, error) {

	index, err := getIndex(ctx)
	if err != nil {
		return nil, err
	}

	c, err := input.toCandidate()
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	err = s.Update(index, c)
	if err != nil {
		return nil, err
	}

	entry, err := s.Get(index)
	if err != nil {
		return nil, err
	}

	return newEntryJSON(entry), nil
}
