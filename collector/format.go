package collector

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/fulldump/candidatedb/codec"
)

// File layout:
//
//	header: magic(4) version(2)
//	frame:  flags(1) length(4) crc32c(4) payload(length)
//
// One frame per slot, in index order. The payload is whatever Record.Write
// produced.
const (
	Magic   = "CCOL"
	Version = uint16(1)

	flagRemoved = uint8(1 << 0)
	knownFlags  = flagRemoved

	// MaxFrameSize bounds the allocation done for a single payload
	MaxFrameSize = 16 * 1024 * 1024
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

func writeHeader(w *codec.Writer) {
	w.WriteRaw([]byte(Magic))
	codec.WriteNumber(w, Version)
}

func readHeader(r *codec.Reader) error {
	magic := make([]byte, len(Magic))
	r.ReadRaw(magic)
	version := codec.ReadNumber[uint16](r)
	if err := r.Err(); err != nil {
		return err
	}
	if string(magic) != Magic {
		return fmt.Errorf("%w: got %q", ErrBadMagic, magic)
	}
	if version != Version {
		return fmt.Errorf("%w: got %d", ErrBadVersion, version)
	}
	return nil
}

func writeSlots(dst io.Writer, slots []slot) error {

	w := codec.NewWriter(dst)
	writeHeader(w)

	payload := &bytes.Buffer{}
	for i, s := range slots {
		payload.Reset()
		pw := codec.NewWriter(payload)
		err := s.record.Write(pw)
		if err == nil {
			err = pw.Err()
		}
		if err != nil {
			return fmt.Errorf("encode slot %d: %w", i, err)
		}
		if payload.Len() > MaxFrameSize {
			return fmt.Errorf("encode slot %d: %w: %d bytes", i, ErrBadFrame, payload.Len())
		}

		flags := uint8(0)
		if s.removed {
			flags |= flagRemoved
		}
		codec.WriteNumber(w, flags)
		codec.WriteNumber(w, uint32(payload.Len()))
		codec.WriteNumber(w, crc32.Checksum(payload.Bytes(), crcTable))
		w.WriteRaw(payload.Bytes())
		if err := w.Err(); err != nil {
			return fmt.Errorf("write slot %d: %w", i, err)
		}
	}

	return w.Err()
}

// readSlots decodes a whole file. Nothing is returned unless every frame was
// decoded.
func readSlots(path string, src io.Reader, factory Factory) ([]slot, error) {

	r := codec.NewReader(src)
	if r.AtEOF() {
		// An empty file is an empty collection
		return []slot{}, nil
	}
	err := readHeader(r)
	if err != nil {
		return nil, &LoadError{Path: path, Slot: -1, Err: err}
	}

	slots := []slot{}
	for !r.AtEOF() {
		s, err := readSlot(r, factory)
		if err != nil {
			return nil, &LoadError{Path: path, Slot: len(slots), Err: err}
		}
		slots = append(slots, s)
	}
	if err := r.Err(); err != nil {
		return nil, &LoadError{Path: path, Slot: len(slots), Err: err}
	}

	return slots, nil
}

func readSlot(r *codec.Reader, factory Factory) (slot, error) {

	flags := codec.ReadNumber[uint8](r)
	length := codec.ReadNumber[uint32](r)
	checksum := codec.ReadNumber[uint32](r)
	if err := r.Err(); err != nil {
		return slot{}, err
	}
	if flags&^knownFlags != 0 {
		return slot{}, fmt.Errorf("%w: unknown flags %08b", ErrBadFrame, flags)
	}
	if length > MaxFrameSize {
		return slot{}, fmt.Errorf("%w: length %d", ErrBadFrame, length)
	}

	payload := make([]byte, length)
	r.ReadRaw(payload)
	if err := r.Err(); err != nil {
		return slot{}, err
	}
	if actual := crc32.Checksum(payload, crcTable); actual != checksum {
		return slot{}, fmt.Errorf("%w: expected %08x, got %08x", ErrChecksum, checksum, actual)
	}

	pr := codec.NewReader(bytes.NewReader(payload))
	record, err := factory(pr)
	if err == nil {
		err = pr.Err()
	}
	if err != nil {
		return slot{}, fmt.Errorf("decode record: %w", err)
	}
	if record == nil {
		return slot{}, ErrNilRecord
	}
	if !pr.AtEOF() {
		return slot{}, ErrTrailingBytes
	}

	return slot{
		record:  record,
		removed: flags&flagRemoved != 0,
	}, nil
}
