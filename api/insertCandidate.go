package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func insertCandidate(ctx context.Context, w http.ResponseWriter, input candidateJSON) (*entryJSON, error) {

	c, err := input.toCandidate()
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	index, err := s.Add(c)
	if err != nil {
		return nil, err
	}

	entry, err := s.Get(index)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)
	return newEntryJSON(entry), nil
}
