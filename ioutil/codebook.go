/*
NAME
  codebook.go

DESCRIPTION
  codebook.go builds a multi-level lookup table from a list of {code, bits,
  symbol} triples and decodes one symbol at a time from a BitReader. Codes
  longer than the lookup width escape into a recursively-built secondary
  table, so construction cost and decode cost both stay bounded regardless
  of how long the longest code is.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ioutil

import "github.com/pkg/errors"

// ErrInvalidCode is returned when a bit sequence does not match any code in
// the codebook.
var ErrInvalidCode = errors.New("ioutil: invalid code")

// maxLUTBits caps the width of any single level of the lookup table. Codes
// longer than this escape into a secondary sub-table built from the
// remaining bits.
const maxLUTBits = 10

const tableFillValue = 0x7fffffff

// CodebookEntry describes one symbol's code in a codebook being built. Zero
// Bits entries are skipped, letting callers pass a dense, index-addressed
// slice (as the VLC tables in codec/h263 and codec/indeo2 do) where some
// indices are unused.
type CodebookEntry struct {
	Code uint32
	Bits uint8
	Sym  int32
}

// Codebook is an opaque, immutable, freely shareable decode table built by
// NewCodebook. Once built it has no mutable state, so the same *Codebook may
// be used concurrently by multiple BitReaders / goroutines.
type Codebook struct {
	table   []uint32
	syms    []int32
	lutBits uint8
	mode    BitMode
}

// codeBucket collects the remainder bits of every code sharing a top-level
// bucket key, for recursive secondary-table construction.
type codeBucket struct {
	maxLen uint8
	offset int
	codes  []CodebookEntry
}

// NewCodebook constructs a Codebook from entries (zero-Bits entries are
// skipped) using the given bit mode. It returns an error on degenerate
// input (no codes at all).
func NewCodebook(entries []CodebookEntry, mode BitMode) (*Codebook, error) {
	var maxBits uint8
	nnz := 0
	buckets := map[uint32]*codeBucket{}

	for _, e := range entries {
		if e.Bits == 0 {
			continue
		}
		nnz++
		if e.Bits > maxBits {
			maxBits = e.Bits
		}
	}
	if maxBits == 0 {
		return nil, errors.New("ioutil: codebook has no codes")
	}

	lutBits := maxBits
	if lutBits > maxLUTBits {
		lutBits = maxLUTBits
	}

	cb := &Codebook{
		table:   make([]uint32, 1<<lutBits),
		syms:    make([]int32, 0, nnz),
		lutBits: lutBits,
		mode:    mode,
	}
	for i := range cb.table {
		cb.table[i] = tableFillValue
	}

	symIdx := uint32(0)
	for _, e := range entries {
		if e.Bits == 0 {
			continue
		}
		if e.Bits <= maxLUTBits {
			fillLUT(cb.table, mode, 0, e.Code, e.Bits, lutBits, symIdx, false)
		} else {
			key := extractLUTPart(e.Code, e.Bits, maxLUTBits, mode)
			rem := extractEscPart(e.Code, e.Bits, maxLUTBits, mode)
			b, ok := buckets[key]
			if !ok {
				b = &codeBucket{}
				buckets[key] = b
			}
			b.codes = append(b.codes, CodebookEntry{Code: rem, Bits: e.Bits - maxLUTBits, Sym: int32(symIdx)})
			if e.Bits-maxLUTBits > b.maxLen {
				b.maxLen = e.Bits - maxLUTBits
			}
		}
		cb.syms = append(cb.syms, e.Sym)
		symIdx++
	}

	for key, b := range buckets {
		sub := b.maxLen
		if sub > maxLUTBits {
			sub = maxLUTBits
		}
		off, err := resizeTable(&cb.table, sub)
		if err != nil {
			return nil, err
		}
		fillLUT(cb.table, mode, 0, key, sub, maxLUTBits, uint32(off), true)
		b.offset = off
	}
	for _, b := range buckets {
		if err := buildEscLUT(&cb.table, mode, b); err != nil {
			return nil, err
		}
	}

	return cb, nil
}

func fillLUT(table []uint32, mode BitMode, off int, code uint32, bits, lutBits uint8, symIdx uint32, esc bool) {
	if esc {
		idx := int(code) + off
		table[idx] = symIdx<<8 | 0x80 | uint32(bits)
		return
	}
	switch mode {
	case MSB:
		fillLen := lutBits - bits
		fillSize := uint32(1) << fillLen
		fillCode := code << fillLen
		val := symIdx<<8 | uint32(bits)
		for j := uint32(0); j < fillSize; j++ {
			table[int(fillCode+j)+off] = val
		}
	case LSB:
		fillLen := lutBits - bits
		fillSize := uint32(1) << fillLen
		step := lutBits - fillLen
		val := symIdx<<8 | uint32(bits)
		for j := uint32(0); j < fillSize; j++ {
			table[int(code+(j<<step))+off] = val
		}
	}
}

func resizeTable(table *[]uint32, bits uint8) (int, error) {
	addSize := 1 << bits
	off := len(*table)
	for i := 0; i < addSize; i++ {
		*table = append(*table, tableFillValue)
	}
	return off, nil
}

func extractLUTPart(code uint32, bits, lutBits uint8, mode BitMode) uint32 {
	if mode == MSB {
		return code >> (bits - lutBits)
	}
	return code & ((1 << lutBits) - 1)
}

func extractEscPart(code uint32, bits, lutBits uint8, mode BitMode) uint32 {
	if mode == MSB {
		return code & ((1 << (bits - lutBits)) - 1)
	}
	return code >> lutBits
}

func buildEscLUT(table *[]uint32, mode BitMode, bucket *codeBucket) error {
	sub := map[uint32]*codeBucket{}
	maxLen := bucket.maxLen
	if maxLen > maxLUTBits {
		maxLen = maxLUTBits
	}

	for _, c := range bucket.codes {
		if c.Bits <= maxLUTBits {
			fillLUT(*table, mode, bucket.offset, c.Code, c.Bits, maxLen, uint32(c.Sym), false)
			continue
		}
		key := extractLUTPart(c.Code, c.Bits, maxLUTBits, mode)
		rem := extractEscPart(c.Code, c.Bits, maxLUTBits, mode)
		b, ok := sub[key]
		if !ok {
			b = &codeBucket{}
			sub[key] = b
		}
		b.codes = append(b.codes, CodebookEntry{Code: rem, Bits: c.Bits - maxLUTBits, Sym: c.Sym})
		if c.Bits-maxLUTBits > b.maxLen {
			b.maxLen = c.Bits - maxLUTBits
		}
	}

	curOff := bucket.offset
	for key, sb := range sub {
		subMax := sb.maxLen
		if subMax > maxLUTBits {
			subMax = maxLUTBits
		}
		off, err := resizeTable(table, subMax)
		if err != nil {
			return err
		}
		fillLUT(*table, mode, curOff, key, subMax, maxLUTBits, uint32(off), true)
		sb.offset = off
	}
	for _, sb := range sub {
		if err := buildEscLUT(table, mode, sb); err != nil {
			return err
		}
	}
	return nil
}

// ReadCodebook decodes one symbol from br using cb, advancing br by however
// many bits the matched code consumed.
func ReadCodebook(br *BitReader, cb *Codebook) (int32, error) {
	idx := 0
	lutBits := cb.lutBits
	for {
		n := int(lutBits)
		if left := br.Left(); n > left {
			n = left
		}
		peek, err := br.Peek(n)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidCode, err.Error())
		}
		if cb.mode == MSB {
			peek <<= uint(int(lutBits) - n)
		}
		lutIdx := int(peek) + idx
		entry := cb.table[lutIdx]
		if entry == tableFillValue {
			return 0, ErrInvalidCode
		}
		bits := uint8(entry & 0x7f)
		esc := entry&0x80 != 0
		next := int(entry >> 8)
		if int(bits) > br.Left() {
			return 0, ErrInvalidCode
		}
		if esc {
			if int(lutBits) > br.Left() {
				return 0, ErrInvalidCode
			}
			_ = br.Skip(int(lutBits))
			idx = next
			lutBits = bits
			continue
		}
		_ = br.Skip(int(bits))
		return cb.syms[next], nil
	}
}
