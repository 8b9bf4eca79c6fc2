package service

import (
	"errors"

	"github.com/fulldump/candidatedb/candidate"
)

var ErrUnexpectedRecord = errors.New("record is not a candidate")

// Entry is one slot of the collection as seen from the outside.
type Entry struct {
	Index     int
	Removed   bool
	Candidate *candidate.Candidate
}

type Servicer interface {
	Load(filename string) (string, error)
	Save(filename string) (string, error)
	Clean()
	Add(c *candidate.Candidate) (int, error)
	Remove(index int) error
	Update(index int, c *candidate.Candidate) error
	Get(index int) (*Entry, error)
	View() ([]*Entry, error)
	Size() int
}
