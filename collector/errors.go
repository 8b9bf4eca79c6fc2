package collector

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNilRecord       = errors.New("nil record")
	ErrBadMagic        = errors.New("not a collection file")
	ErrBadVersion      = errors.New("unsupported collection file version")
	ErrBadFrame        = errors.New("malformed frame")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrTrailingBytes   = errors.New("record did not consume its frame")
)

// LoadError tells which part of a file could not be loaded. Slot is -1 when
// the header is the problem.
type LoadError struct {
	Path string
	Slot int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("load '%s': header: %s", e.Path, e.Err.Error())
	}
	return fmt.Sprintf("load '%s': slot %d: %s", e.Path, e.Slot, e.Err.Error())
}

func (e *LoadError) Unwrap() error { return e.Err }

func outOfRange(i, size int) error {
	return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, size)
}
