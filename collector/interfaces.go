package collector

import "github.com/fulldump/candidatedb/codec"

// Record is anything that can be stored in a Collector. Write must encode the
// fields in the same order its Factory reads them back.
type Record interface {
	Write(w *codec.Writer) error
}

// Factory builds one Record from the stream, mirroring Record.Write.
type Factory func(r *codec.Reader) (Record, error)
