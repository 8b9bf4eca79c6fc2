package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"
)

const maxCollectionBody = 64 * 1024

type collectionInput struct {
	Filename string `json:"filename"`
}

type collectionOutput struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// readCollectionInput accepts an empty body, meaning the default data file.
func readCollectionInput(r *http.Request) (*collectionInput, error) {

	input := &collectionInput{}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCollectionBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return input, nil
	}

	err = json.Unmarshal(body, input)
	if err != nil {
		return nil, err
	}

	return input, nil
}

func loadCollection(ctx context.Context) (*collectionOutput, error) {

	input, err := readCollectionInput(box.GetRequest(ctx))
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	filename, err := s.Load(input.Filename)
	if err != nil {
		return nil, fmt.Errorf("loading file '%s': %w", filename, err)
	}

	return &collectionOutput{
		Filename: filename,
		Size:     s.Size(),
	}, nil
}

func saveCollection(ctx context.Context) (*collectionOutput, error) {

	input, err := readCollectionInput(box.GetRequest(ctx))
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	filename, err := s.Save(input.Filename)
	if err != nil {
		return nil, fmt.Errorf("saving file '%s': %w", filename, err)
	}

	return &collectionOutput{
		Filename: filename,
		Size:     s.Size(),
	}, nil
}

func cleanCollection(ctx context.Context) (*collectionOutput, error) {

	s := GetServicer(ctx)
	s.Clean()

	return &collectionOutput{
		Size: s.Size(),
	}, nil
}
