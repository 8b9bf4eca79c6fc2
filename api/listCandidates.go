package api

import (
	"context"
)

type listCandidatesOutput struct {
	Items []*entryJSON `json:"items"`
	Count int          `json:"count"`
}

func listCandidates(ctx context.Context) (*listCandidatesOutput, error) {

	entries, err := GetServicer(ctx).View()
	if err != nil {
		return nil, err
	}

	result := &listCandidatesOutput{
		Items: make([]*entryJSON, 0, len(entries)),
		Count: len(entries),
	}
	for _, entry := range entries {
		result.Items = append(result.Items, newEntryJSON(entry))
	}

	return result, nil
}
