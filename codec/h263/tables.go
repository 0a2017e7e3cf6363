/*
NAME
  tables.go

DESCRIPTION
  tables.go holds the fixed VLC tables, quantiser and source-format tables
  the H.263/RV20 bitstream is built from: MCBPC for I and P macroblocks,
  CBPY, MVD, the TCOEF run/level/last table with its escape code, and the
  standard source-format size table.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package h263 implements the H.263/RV20 decoder core: picture/GOB/
// macroblock/block parsing, AC/DC intra prediction, motion vector
// prediction and compensation, the IDCT, and I/P reconstruction. PB-frame
// pictures are parsed and rejected; B pictures are not decoded.
package h263

import "github.com/ausocean/nihav/ioutil"

// mcbpcEntry is one row of an MCBPC VLC table: decodes to a (macroblock
// type, coded-block-pattern-for-chroma) pair, with mbt -1 marking the
// stuffing/escape code, meaning "read another code".
type mcbpcEntry struct {
	code uint32
	bits uint8
	mbt  int8 // macroblock type, or -1 for the stuffing/escape code
	cbpc uint8
}

// mcbpcIntra mirrors the standard Table 7 (I-pictures) MCBPC codes.
var mcbpcIntra = []mcbpcEntry{
	{0b1, 1, 3, 0},
	{0b001, 3, 3, 1},
	{0b010, 3, 3, 2},
	{0b011, 3, 3, 3},
	{0b0001, 4, 4, 0},
	{0b000001, 6, 4, 1},
	{0b000010, 6, 4, 2},
	{0b000011, 6, 4, 3},
	{0b000000001, 9, -1, 0}, // stuffing escape
}

// mcbpcInter mirrors Table 8 (P-pictures) MCBPC codes; mbt values follow
// the standard's macroblock-type enumeration 0..4; the stuffing row (mbt -1)
// repeats the read per spec.md §4.5.
var mcbpcInter = []mcbpcEntry{
	{0b1, 1, 0, 0},
	{0b011, 3, 1, 0},
	{0b010, 3, 2, 0},
	{0b0011, 4, 3, 0},
	{0b0010, 4, 4, 0},
	{0b00011, 5, 0, 1},
	{0b000010, 6, 0, 2},
	{0b000011, 6, 0, 3},
	{0b000101, 6, 1, 1},
	{0b000100, 6, 2, 1},
	{0b0000101, 7, 1, 2},
	{0b0000100, 7, 2, 2},
	{0b00000111, 8, 1, 3},
	{0b00000110, 8, 2, 3},
	{0b00000101, 8, 3, 1},
	{0b00000100, 8, 4, 1},
	{0b0000101111, 10, -1, 0}, // stuffing escape
}

// cbpyEntry maps a CBPY VLC code to the 4-bit luma coded-block pattern.
type cbpyEntry struct {
	code uint32
	bits uint8
	cbpy uint8
}

var cbpyTab = []cbpyEntry{
	{0b0011, 4, 0b1010}, {0b0101, 4, 0b1001}, {0b0110, 4, 0b1000}, {0b0111, 4, 0b0111},
	{0b1001, 4, 0b0110}, {0b1010, 4, 0b0101}, {0b1011, 4, 0b0100}, {0b1100, 4, 0b0011},
	{0b1101, 4, 0b0010}, {0b1110, 4, 0b0001}, {0b1111, 4, 0b0000}, {0b0100, 4, 0b1011},
	{0b0010, 4, 0b1100}, {0b1000, 4, 0b1101}, {0b0001, 4, 0b1110}, {0b000011, 6, 0b1111},
}

// mvdEntry is one MVD (motion vector differential magnitude) VLC row.
type mvdEntry struct {
	code uint32
	bits uint8
	val  int8
}

var mvdTab = []mvdEntry{
	{0b1, 1, 0},
	{0b010, 3, 1}, {0b011, 3, -1},
	{0b0010, 4, 2}, {0b0011, 4, -2},
	{0b00011, 5, 3}, {0b00010, 5, -3},
	{0b000011, 6, 4}, {0b000010, 6, -4},
	{0b0000101, 7, 5}, {0b0000100, 7, -5},
	{0b00000101, 8, 6}, {0b00000100, 8, -6},
	{0b00000011, 8, 7}, {0b00000010, 8, -7},
}

// tcoefEntry is one (last, run, level) row of the TCOEF VLC, matching the
// H.263 intra/inter run-length table.
type tcoefEntry struct {
	code  uint32
	bits  uint8
	last  bool
	run   uint8
	level uint8
}

// tcoefEsc marks "escape" — decode as {last(1), run(6), level(8 signed)}.
// A level of -128 (0x80) is taken as a plain level; no second-escape
// extension is read after it.
const tcoefEscBits = 7
const tcoefEscCode = 0b0000011

var tcoefTab = []tcoefEntry{
	{0b10, 2, true, 0, 1},
	{0b0111, 4, false, 0, 1}, {0b0110, 4, false, 1, 1}, {0b0101, 4, false, 0, 2},
	{0b00101, 5, false, 2, 1}, {0b00100, 5, false, 0, 3}, {0b0011, 4, true, 0, 2},
	{0b000101, 6, false, 3, 1}, {0b000100, 6, false, 1, 2}, {0b0000101, 7, false, 4, 1},
	{0b00000100, 8, false, 0, 4}, {0b0000100, 7, true, 1, 1},
}

// sourceFormat is one row of the PTYPE source-format size table (spec.md
// §4.5's "3-bit source format selector").
type sourceFormat struct {
	w, h int
}

var sourceFormats = [8]sourceFormat{
	{}, {128, 96}, {176, 144}, {352, 288}, {704, 576}, {1408, 1152}, {}, {},
}

// idct multipliers C1..C7 (spec.md §4.5).
var idctC = [8]int32{0, 64277, 60547, 54491, 46341, 36410, 25080, 12785}

// dquantDelta maps the 2-bit DQUANT index to its signed delta.
var dquantDelta = [4]int{-1, -2, 1, 2}

// zigzagScan, altHorizScan and altVertScan select AC coefficient scan order
// by AC-prediction mode, per spec.md §4.5.
var zigzagScan = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

var altHorizScan = [64]int{
	0, 8, 16, 24, 1, 9, 2, 10,
	17, 25, 32, 40, 48, 56, 57, 49,
	41, 33, 26, 18, 3, 11, 4, 12,
	19, 27, 34, 42, 50, 58, 35, 43,
	51, 59, 20, 28, 5, 13, 6, 14,
	21, 29, 36, 44, 52, 60, 37, 45,
	53, 61, 22, 30, 7, 15, 38, 46,
	54, 62, 23, 31, 39, 47, 55, 63,
}

var altVertScan = [64]int{
	0, 1, 2, 3, 8, 9, 16, 17,
	10, 11, 4, 5, 6, 7, 12, 13,
	18, 19, 24, 25, 32, 33, 40, 41,
	26, 27, 20, 21, 14, 15, 22, 23,
	28, 29, 34, 35, 42, 43, 48, 49,
	36, 37, 30, 31, 38, 39, 44, 45,
	50, 51, 56, 57, 52, 53, 58, 59,
	46, 47, 54, 55, 60, 61, 62, 63,
}

func buildCodebook(rows []mcbpcEntry) (*ioutil.Codebook, []mcbpcEntry) {
	entries := make([]ioutil.CodebookEntry, len(rows))
	for i, r := range rows {
		entries[i] = ioutil.CodebookEntry{Code: r.code, Bits: r.bits, Sym: int32(i)}
	}
	cb, err := ioutil.NewCodebook(entries, ioutil.MSB)
	if err != nil {
		panic(err) // table is a compile-time constant; a build failure is a programmer error.
	}
	return cb, rows
}

func buildCBPYCodebook() *ioutil.Codebook {
	entries := make([]ioutil.CodebookEntry, len(cbpyTab))
	for i, r := range cbpyTab {
		entries[i] = ioutil.CodebookEntry{Code: r.code, Bits: r.bits, Sym: int32(i)}
	}
	cb, err := ioutil.NewCodebook(entries, ioutil.MSB)
	if err != nil {
		panic(err)
	}
	return cb
}

func buildMVDCodebook() *ioutil.Codebook {
	entries := make([]ioutil.CodebookEntry, len(mvdTab))
	for i, r := range mvdTab {
		entries[i] = ioutil.CodebookEntry{Code: r.code, Bits: r.bits, Sym: int32(i)}
	}
	cb, err := ioutil.NewCodebook(entries, ioutil.MSB)
	if err != nil {
		panic(err)
	}
	return cb
}

func buildTCOEFCodebook() *ioutil.Codebook {
	entries := make([]ioutil.CodebookEntry, len(tcoefTab)+1)
	for i, r := range tcoefTab {
		entries[i] = ioutil.CodebookEntry{Code: r.code, Bits: r.bits, Sym: int32(i)}
	}
	entries[len(tcoefTab)] = ioutil.CodebookEntry{Code: tcoefEscCode, Bits: tcoefEscBits, Sym: int32(len(tcoefTab))}
	cb, err := ioutil.NewCodebook(entries, ioutil.MSB)
	if err != nil {
		panic(err)
	}
	return cb
}

var (
	mcbpcIntraCB, _ = buildCodebook(mcbpcIntra)
	mcbpcInterCB, _ = buildCodebook(mcbpcInter)
	cbpyCB          = buildCBPYCodebook()
	mvdCB           = buildMVDCodebook()
	tcoefCB         = buildTCOEFCodebook()
	tcoefEscSym     = int32(len(tcoefTab))
)
