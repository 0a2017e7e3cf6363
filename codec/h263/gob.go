/*
NAME
  gob.go

DESCRIPTION
  gob.go parses the group-of-blocks header that may precede a row of
  macroblocks: a 17-bit start code, group number, and (for the first GOB
  of subsequent slices) a frame-ID and quantiser override.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import "github.com/ausocean/nihav/ioutil"

// gobStartCode is the 17-bit GBSC (a 16-bit zero run plus a trailing 1),
// as distinct from the picture start code's 22 bits.
const gobStartCode = 0x1

// GOBHeader is the parsed result of one group-of-blocks header, or the
// zero value when no start code is present at the current position (the
// common case: most GOBs in a picture carry no header at all).
type GOBHeader struct {
	Present    bool
	GroupNum   int
	FrameID    int
	Quant      int
	HasQuant   bool
}

// peekGOBStartCode reports whether the next 17 bits form a GOB start code,
// without consuming them.
func peekGOBStartCode(br *ioutil.BitReader) bool {
	v, err := br.Peek(17)
	if err != nil {
		return false
	}
	return v == gobStartCode
}

// ParseGOBHeader consumes a GOB header if one is present at the cursor.
// Per the standard, a GOB header is entirely optional for any row except
// occasionally the very first; when no GOB start code is at the cursor it
// returns a zero GOBHeader without consuming any bits.
func ParseGOBHeader(br *ioutil.BitReader) (GOBHeader, error) {
	if !peekGOBStartCode(br) {
		return GOBHeader{}, nil
	}
	if _, err := br.Read(17); err != nil {
		return GOBHeader{}, err
	}
	grp, err := br.Read(5)
	if err != nil {
		return GOBHeader{}, err
	}
	hdr := GOBHeader{Present: true, GroupNum: int(grp)}
	if grp == 0 {
		return hdr, nil
	}
	gfid, err := br.Read(2)
	if err != nil {
		return GOBHeader{}, err
	}
	gq, err := br.Read(5)
	if err != nil {
		return GOBHeader{}, err
	}
	hdr.FrameID = int(gfid)
	hdr.Quant = int(gq)
	hdr.HasQuant = true
	return hdr, nil
}
