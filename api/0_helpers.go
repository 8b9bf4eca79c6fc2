package api

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.MarshalWrite(w, map[string]PrettyError{"error": p})
}

// describeError maps an error to its http status and a human description.
func describeError(ctx context.Context, err error) (int, string) {

	if errors.Is(err, box.ErrResourceNotFound) {
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	}

	if errors.Is(err, box.ErrMethodNotAllowed) {
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	if errors.Is(err, collector.ErrIndexOutOfRange) {
		return http.StatusNotFound, "Candidate not found"
	}

	if errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound, "File not found"
	}

	if errors.Is(err, candidate.ErrInvalid) {
		return http.StatusBadRequest, "Invalid candidate"
	}

	if errors.Is(err, ErrInvalidIndex) {
		return http.StatusBadRequest, "Index must be an integer"
	}

	var syntaxError *stdjson.SyntaxError
	var typeError *stdjson.UnmarshalTypeError
	var syntacticError *jsontext.SyntacticError
	var semanticError *json.SemanticError
	if errors.As(err, &syntaxError) ||
		errors.As(err, &typeError) ||
		errors.As(err, &syntacticError) ||
		errors.As(err, &semanticError) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Malformed JSON"
	}

	var loadError *collector.LoadError
	if errors.As(err, &loadError) {
		return http.StatusInternalServerError, "Corrupted data file"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}
