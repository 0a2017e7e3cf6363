/*
NAME
  bytereader.go

DESCRIPTION
  bytereader.go provides seekable and non-seekable byte-oriented readers over
  an in-memory buffer, with endian-typed fixed-width reads used by container
  and codec header parsing throughout this module.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ioutil provides the bitstream primitives shared by every decoder in
// this module: byte readers with seek/peek, MSB/LSB bit readers, and a
// variable-length codebook engine built from {code, bits, symbol} triples.
package ioutil

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortData is returned whenever a read requests more bytes than remain
// in the underlying buffer.
var ErrShortData = errors.New("ioutil: short data")

// ByteOrder selects how multi-byte reads assemble their bytes.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ByteReader wraps a byte slice and a read cursor. MemReader is a non-seekable
// variant (cursor may not move past the buffer end, and Seek is unsupported);
// FileReader additionally supports arbitrary seeks, mirroring the
// memory-reader/file-reader split used for packet payloads versus whole
// container files.
type ByteReader struct {
	buf      []byte
	pos      int
	seekable bool
}

// NewMemReader returns a ByteReader over buf that does not support Seek.
func NewMemReader(buf []byte) *ByteReader {
	return &ByteReader{buf: buf}
}

// NewFileReader returns a ByteReader over buf that supports arbitrary Seek.
func NewFileReader(buf []byte) *ByteReader {
	return &ByteReader{buf: buf, seekable: true}
}

// Left returns the number of unread bytes remaining.
func (r *ByteReader) Left() int { return len(r.buf) - r.pos }

// Tell returns the current byte offset of the cursor.
func (r *ByteReader) Tell() int { return r.pos }

// Seek moves the cursor to an absolute byte offset. It fails for
// non-seekable readers or offsets outside [0, len(buf)].
func (r *ByteReader) Seek(pos int) error {
	if !r.seekable {
		return errors.New("ioutil: reader is not seekable")
	}
	if pos < 0 || pos > len(r.buf) {
		return errors.Wrapf(ErrShortData, "seek to %d out of range [0,%d]", pos, len(r.buf))
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *ByteReader) Skip(n int) error {
	if n < 0 || r.Left() < n {
		return ErrShortData
	}
	r.pos += n
	return nil
}

// ReadBytes reads exactly n bytes and advances the cursor.
func (r *ByteReader) ReadBytes(n int) ([]byte, error) {
	if r.Left() < n {
		return nil, ErrShortData
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// PeekBytes behaves like ReadBytes but does not advance the cursor.
func (r *ByteReader) PeekBytes(n int) ([]byte, error) {
	if r.Left() < n {
		return nil, ErrShortData
	}
	return r.buf[r.pos : r.pos+n], nil
}

func (r *ByteReader) readN(n int, order ByteOrder) (uint64, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	if order == BigEndian {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
	} else {
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
	}
	return v, nil
}

// ReadU8 reads a single byte.
func (r *ByteReader) ReadU8() (uint8, error) {
	v, err := r.readN(1, BigEndian)
	return uint8(v), err
}

// ReadU16 reads a 2-byte unsigned integer in the given order.
func (r *ByteReader) ReadU16(order ByteOrder) (uint16, error) {
	v, err := r.readN(2, order)
	return uint16(v), err
}

// ReadU24 reads a 3-byte unsigned integer in the given order.
func (r *ByteReader) ReadU24(order ByteOrder) (uint32, error) {
	v, err := r.readN(3, order)
	return uint32(v), err
}

// ReadU32 reads a 4-byte unsigned integer in the given order.
func (r *ByteReader) ReadU32(order ByteOrder) (uint32, error) {
	v, err := r.readN(4, order)
	return uint32(v), err
}

// ReadU64 reads an 8-byte unsigned integer in the given order.
func (r *ByteReader) ReadU64(order ByteOrder) (uint64, error) {
	return r.readN(8, order)
}

// PeekU32 behaves like ReadU32 without advancing the cursor.
func (r *ByteReader) PeekU32(order ByteOrder) (uint32, error) {
	save := r.pos
	v, err := r.ReadU32(order)
	r.pos = save
	return v, err
}

// stdOrder adapts our ByteOrder to encoding/binary, used where a []byte
// slice (rather than the reader's cursor) needs decoding in place.
func stdOrder(o ByteOrder) binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
