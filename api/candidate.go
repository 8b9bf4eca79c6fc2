package api

import (
	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/service"
)

type candidateJSON struct {
	Name     string             `json:"name"`
	Surname  string             `json:"surname"`
	Age      uint32             `json:"age"`
	Income   uint32             `json:"income"`
	Fraction candidate.Fraction `json:"fraction"`
	Voices   uint32             `json:"voices"`
}

func (c *candidateJSON) toCandidate() (*candidate.Candidate, error) {
	return candidate.New(c.Name, c.Surname, c.Age, c.Income, c.Fraction, c.Voices)
}

type entryJSON struct {
	Index     int            `json:"index"`
	Removed   bool           `json:"removed"`
	Candidate *candidateJSON `json:"candidate"`
}

func newEntryJSON(e *service.Entry) *entryJSON {
	c := e.Candidate
	return &entryJSON{
		Index:   e.Index,
		Removed: e.Removed,
		Candidate: &candidateJSON{
			Name:     c.Name(),
			Surname:  c.Surname(),
			Age:      c.Age(),
			Income:   c.Income(),
			Fraction: c.Fraction(),
			Voices:   c.Voices(),
		},
	}
}
