package service

import (
	"fmt"
	"sync"

	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/collector"
)

// Service owns one collector and serializes every access to it, so the HTTP
// surface can share it between requests.
type Service struct {
	mutex     sync.Mutex
	collector *collector.Collector
	dataFile  string
}

func NewService(c *collector.Collector, dataFile string) *Service {
	return &Service{
		collector: c,
		dataFile:  dataFile,
	}
}

func (s *Service) filename(filename string) string {
	if filename == "" {
		return s.dataFile
	}
	return filename
}

// Load returns the file name actually used.
func (s *Service) Load(filename string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	filename = s.filename(filename)
	return filename, s.collector.Load(filename)
}

// Save returns the file name actually used.
func (s *Service) Save(filename string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	filename = s.filename(filename)
	return filename, s.collector.Save(filename)
}

func (s *Service) Clean() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.collector.Clean()
}

func (s *Service) Add(c *candidate.Candidate) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collector.Add(c)
}

func (s *Service) Remove(index int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collector.Remove(index)
}

func (s *Service) Update(index int, c *candidate.Candidate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collector.Update(index, c)
}

func (s *Service) Get(index int) (*Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.collector.Get(index)
	if err != nil {
		return nil, err
	}
	removed, err := s.collector.IsRemoved(index)
	if err != nil {
		return nil, err
	}

	return newEntry(index, record, removed)
}

// View lists live slots only, in index order.
func (s *Service) View() ([]*Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := []*Entry{}
	var err error
	s.collector.Traverse(func(i int, record collector.Record, removed bool) bool {
		if removed {
			return true
		}
		var entry *Entry
		entry, err = newEntry(i, record, removed)
		if err != nil {
			return false
		}
		result = append(result, entry)
		return true
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collector.Size()
}

func newEntry(i int, record collector.Record, removed bool) (*Entry, error) {
	c, ok := record.(*candidate.Candidate)
	if !ok {
		return nil, fmt.Errorf("slot %d: %w", i, ErrUnexpectedRecord)
	}
	return &Entry{
		Index:     i,
		Removed:   removed,
		Candidate: c,
	}, nil
}
