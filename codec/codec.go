// Package codec is the byte-level vocabulary used by records to persist
// themselves: length-prefixed strings and fixed-width numbers.
//
// Numbers are written in host byte order. Files are meant to be read back on
// the machine that wrote them, this is not a wire protocol.
package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrStringTooLong = errors.New("string too long")

// Number is any fixed-width value WriteNumber and ReadNumber can handle.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

var byteOrder = binary.NativeEndian

// Writer remembers the first error and ignores every write after it.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error found while writing, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}

// Reader remembers the first error and ignores every read after it.
type Reader struct {
	r   *bufio.Reader
	err error
}

func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Err returns the first error found while reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// AtEOF reports whether the underlying stream has no more bytes. It must only
// be called between records.
func (r *Reader) AtEOF() bool {
	if r.err != nil {
		return false
	}
	_, err := r.r.Peek(1)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err != nil {
		r.err = err
	}
	return false
}

func (r *Reader) read(p []byte) {
	if r.err != nil {
		return
	}
	_, err := io.ReadFull(r.r, p)
	if errors.Is(err, io.EOF) {
		// Ran out of data in the middle of a value
		err = io.ErrUnexpectedEOF
	}
	r.err = err
}

// WriteRaw writes p as is, without a length prefix.
func (w *Writer) WriteRaw(p []byte) {
	w.write(p)
}

// ReadRaw fills p completely or fails.
func (r *Reader) ReadRaw(p []byte) {
	r.read(p)
}

// Fail stores err as the reader error unless one is already stored.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func WriteString(w *Writer, s string) {
	WriteNumber(w, uint32(len(s)))
	w.write([]byte(s))
}

func ReadString(r *Reader, maxLen int) string {
	n := ReadNumber[uint32](r)
	if r.err != nil {
		return ""
	}
	if int64(n) > int64(maxLen) {
		r.Fail(fmt.Errorf("%w: declared %d bytes, max %d", ErrStringTooLong, n, maxLen))
		return ""
	}
	buf := make([]byte, n)
	r.read(buf)
	if r.err != nil {
		return ""
	}
	return string(buf)
}

func WriteNumber[T Number](w *Writer, n T) {
	if w.err != nil {
		return
	}
	buf := make([]byte, binary.Size(n))
	_, err := binary.Encode(buf, byteOrder, n)
	if err != nil {
		w.err = err
		return
	}
	w.write(buf)
}

func ReadNumber[T Number](r *Reader) T {
	var n T
	if r.err != nil {
		return n
	}
	buf := make([]byte, binary.Size(n))
	r.read(buf)
	if r.err != nil {
		return n
	}
	_, err := binary.Decode(buf, byteOrder, &n)
	if err != nil {
		r.err = err
	}
	return n
}
