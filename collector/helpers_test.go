package collector_test

import (
	"errors"

	"github.com/fulldump/candidatedb/codec"
)

// rawRecord writes the candidate layout without any validation
type rawRecord struct {
	name  string
	age   uint32
	extra bool
}

func (r rawRecord) Write(w *codec.Writer) error {
	codec.WriteString(w, r.name)
	codec.WriteString(w, "Petrovich")
	codec.WriteNumber(w, r.age)
	codec.WriteNumber(w, uint32(1))
	codec.WriteString(w, "EDRO")
	codec.WriteNumber(w, uint32(1))
	if r.extra {
		codec.WriteNumber(w, uint8(0))
	}
	return w.Err()
}

var errBrokenRecord = errors.New("broken record")

type failingRecord struct{}

func (failingRecord) Write(w *codec.Writer) error {
	return errBrokenRecord
}
