package api

import (
	"context"
)

func removeCandidate(ctx context.Context) (*entryJSON, error) {

	index, err := getIndex(ctx)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	err = s.Remove(index)
	if err != nil {
		return nil, err
	}

	entry, err := s.Get(index)
	if err != nil {
		return nil, err
	}

	return newEntryJSON(entry), nil
}
