/*
NAME
  bitreader.go

DESCRIPTION
  bitreader.go provides an MSB-first or LSB-first bit reader over an
  in-memory buffer, used by every codec in this module to parse bitstream
  headers and block data.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ioutil

import "github.com/pkg/errors"

// ErrBitstreamEnd is returned whenever a bit read or peek would consume more
// bits than remain in the source.
var ErrBitstreamEnd = errors.New("ioutil: bitstream end")

// BitMode selects bit packing order within a byte, and byte-to-word assembly
// order for multi-byte reads.
type BitMode int

const (
	MSB BitMode = iota
	LSB
)

// BitReader reads individual bits or short runs of bits from a byte slice,
// tracking total bits consumed so that Tell/Seek/Left operate in bit units.
//
// This intentionally mirrors codec/h264/h264dec/bits.BitReader's ReadBits/
// PeekBits shift-and-mask approach, generalised to also support LSB-first
// bitstreams (VMD, Bink Audio, Indeo 2 all pack LSB-first) and absolute seek.
type BitReader struct {
	src  []byte
	mode BitMode
	pos  int // total bits consumed from src, from the stream's logical start
}

// NewBitReader returns a BitReader over src in the given mode.
func NewBitReader(src []byte, mode BitMode) *BitReader {
	return &BitReader{src: src, mode: mode}
}

// Left returns the number of unread bits remaining.
func (b *BitReader) Left() int { return len(b.src)*8 - b.pos }

// Tell returns the total number of bits consumed so far.
func (b *BitReader) Tell() int { return b.pos }

// Seek moves the cursor to an absolute bit position.
func (b *BitReader) Seek(bitPos int) error {
	if bitPos < 0 || bitPos > len(b.src)*8 {
		return ErrBitstreamEnd
	}
	b.pos = bitPos
	return nil
}

// Skip advances the cursor by n bits without returning a value.
func (b *BitReader) Skip(n int) error {
	if n < 0 || b.Left() < n {
		return ErrBitstreamEnd
	}
	b.pos += n
	return nil
}

// bitAt returns the value of the i'th bit of the stream counting from the
// logical start, honouring the reader's mode for intra-byte order.
func (b *BitReader) bitAt(i int) uint64 {
	byteIdx := i / 8
	off := i % 8
	byt := b.src[byteIdx]
	if b.mode == MSB {
		return uint64((byt >> uint(7-off)) & 1)
	}
	return uint64((byt >> uint(off)) & 1)
}

// peekFrom returns the n-bit value starting at absolute bit position from,
// without mutating the reader.
func (b *BitReader) peekFrom(from, n int) (uint64, error) {
	if n < 0 || n > 32 {
		return 0, errors.Errorf("ioutil: bit read width %d out of range", n)
	}
	if n == 0 {
		return 0, nil
	}
	if from < 0 || from+n > len(b.src)*8 {
		return 0, ErrBitstreamEnd
	}
	var v uint64
	if b.mode == MSB {
		for i := 0; i < n; i++ {
			v = v<<1 | b.bitAt(from+i)
		}
	} else {
		for i := 0; i < n; i++ {
			v |= b.bitAt(from+i) << uint(i)
		}
	}
	return v, nil
}

// Peek returns the next n bits (1..32) without advancing the cursor.
func (b *BitReader) Peek(n int) (uint64, error) {
	return b.peekFrom(b.pos, n)
}

// Read returns the next n bits (1..32) as an unsigned value and advances.
func (b *BitReader) Read(n int) (uint64, error) {
	v, err := b.peekFrom(b.pos, n)
	if err != nil {
		return 0, err
	}
	b.pos += n
	return v, nil
}

// ReadS returns the next n bits sign-extended to a 64-bit signed value.
func (b *BitReader) ReadS(n int) (int64, error) {
	v, err := b.Read(n)
	if err != nil {
		return 0, err
	}
	if n == 0 || n >= 64 {
		return int64(v), nil
	}
	sign := uint64(1) << uint(n-1)
	if v&sign != 0 {
		v |= ^uint64(0) << uint(n)
	}
	return int64(v), nil
}

// ReadBool reads a single bit and reports whether it is non-zero.
func (b *BitReader) ReadBool() (bool, error) {
	v, err := b.Read(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Align advances the cursor to the next byte boundary. It is a no-op if
// already aligned.
func (b *BitReader) Align() {
	if off := b.pos % 8; off != 0 {
		b.pos += 8 - off
	}
}
