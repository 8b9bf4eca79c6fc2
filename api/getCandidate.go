package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fulldump/box"
)

var ErrInvalidIndex = errors.New("invalid index")

func getIndex(ctx context.Context) (int, error) {
	value := box.GetUrlParameter(ctx, "index")
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidIndex, value)
	}
	return index, nil
}

// getCandidate also returns removed slots, flagged as such.
func getCandidate(ctx context.Context) (*entryJSON, error) {

	index, err := getIndex(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := GetServicer(ctx).Get(index)
	if err != nil {
		return nil, err
	}

	return newEntryJSON(entry), nil
}
