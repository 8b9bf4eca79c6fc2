package collector

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

type slot struct {
	record  Record
	removed bool
}

// Collector keeps an ordered list of records addressed by position. Removing
// a record only marks its slot, so indexes never shift.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	factory Factory
	slots   []slot
	logger  *slog.Logger
}

type Option func(c *Collector)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(factory Factory, options ...Option) *Collector {
	c := &Collector{
		factory: factory,
		slots:   []slot{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Size counts slots, removed ones included.
func (c *Collector) Size() int {
	return len(c.slots)
}

// Live counts slots that are not removed.
func (c *Collector) Live() int {
	n := 0
	for _, s := range c.slots {
		if !s.removed {
			n++
		}
	}
	return n
}

func (c *Collector) checkIndex(i int) error {
	if i < 0 || i >= len(c.slots) {
		return outOfRange(i, len(c.slots))
	}
	return nil
}

// Get returns the record at i, even if it has been removed.
func (c *Collector) Get(i int) (Record, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	return c.slots[i].record, nil
}

func (c *Collector) IsRemoved(i int) (bool, error) {
	if err := c.checkIndex(i); err != nil {
		return false, err
	}
	return c.slots[i].removed, nil
}

// Add appends a live slot and returns its index.
func (c *Collector) Add(record Record) (int, error) {
	if record == nil {
		return 0, ErrNilRecord
	}
	c.slots = append(c.slots, slot{record: record})
	return len(c.slots) - 1, nil
}

// Remove marks slot i as removed. Removing twice is fine.
func (c *Collector) Remove(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.slots[i].removed = true
	return nil
}

// Update replaces the record at i and keeps its removed flag.
func (c *Collector) Update(i int, record Record) error {
	if record == nil {
		return ErrNilRecord
	}
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.slots[i].record = record
	return nil
}

func (c *Collector) Clean() {
	c.slots = []slot{}
}

// Traverse visits every slot in index order until f returns false.
func (c *Collector) Traverse(f func(i int, record Record, removed bool) bool) {
	for i, s := range c.slots {
		if !f(i, s.record, s.removed) {
			return
		}
	}
}

// Load replaces the whole collection with the content of filename. On any
// error the current content is kept.
func (c *Collector) Load(filename string) error {

	t0 := time.Now()

	f, err := os.Open(filename)
	if err != nil {
		c.logger.Error("load collection", "file", filename, "error", err)
		return fmt.Errorf("open file for read: %w", err)
	}
	defer f.Close()

	slots, err := readSlots(filename, f, c.factory)
	if err != nil {
		c.logger.Error("load collection", "file", filename, "error", err)
		return err
	}

	c.slots = slots
	c.logger.Info("collection loaded",
		"file", filename,
		"slots", len(c.slots),
		"live", c.Live(),
		"elapsed", time.Since(t0),
	)

	return nil
}

// Save writes the whole collection to filename. Data goes to a temporary
// sibling file first and is renamed over filename only once it is synced, so
// a failed save never leaves a half written file behind.
func (c *Collector) Save(filename string) (err error) {

	t0 := time.Now()
	tmp := filename + ".tmp-" + uuid.NewString()

	defer func() {
		if err != nil {
			c.logger.Error("save collection", "file", filename, "error", err)
		}
	}()

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("open file for write: %w", err)
	}

	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
		if err != nil {
			os.Remove(tmp)
		}
	}()

	buffer := bufio.NewWriter(f)
	err = writeSlots(buffer, c.slots)
	if err != nil {
		return err
	}
	err = buffer.Flush()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	err = f.Sync()
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	closed = true
	err = f.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	err = os.Rename(tmp, filename)
	if err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	c.logger.Info("collection saved",
		"file", filename,
		"slots", len(c.slots),
		"elapsed", time.Since(t0),
	)

	return nil
}
