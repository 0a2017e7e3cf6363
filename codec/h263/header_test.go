/*
NAME
  header_test.go

DESCRIPTION
  header_test.go tests picture header parsing against a hand-assembled
  minimal baseline (non-PLUSPTYPE) I-picture header.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import (
	"testing"

	"github.com/ausocean/nihav/ioutil"
)

// bitField is one (value, width) pair used to assemble a test bitstream
// MSB-first, matching the picture header's own bit order.
type bitField struct {
	val  uint64
	bits int
}

func packBits(fields []bitField) []byte {
	var bitstr []byte
	for _, f := range fields {
		for i := f.bits - 1; i >= 0; i-- {
			bitstr = append(bitstr, byte((f.val>>uint(i))&1))
		}
	}
	for len(bitstr)%8 != 0 {
		bitstr = append(bitstr, 0)
	}
	out := make([]byte, len(bitstr)/8)
	for i, b := range bitstr {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

func TestParsePictureHeaderBaselineIFrame(t *testing.T) {
	buf := packBits([]bitField{
		{0x20, 22}, // PSC
		{0, 8},     // temporal reference
		{1, 1},     // marker
		{0, 1},     // split screen
		{0, 1},     // document camera
		{0, 1},     // freeze picture release
		{2, 3},     // source format: QCIF (176x144)
		{0, 1},     // picture coding type: I
		{0, 1}, {0, 1}, {0, 1}, {0, 1}, // umv, sac, ap, pb flags
		{10, 5}, // quantiser
		{0, 1},  // PEI: no extra information
	})

	br := ioutil.NewBitReader(buf, ioutil.MSB)
	hdr, err := ParsePictureHeader(br)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Type != PicI {
		t.Errorf("Type = %v; want PicI", hdr.Type)
	}
	if hdr.Width != 176 || hdr.Height != 144 {
		t.Errorf("dims = %dx%d; want 176x144", hdr.Width, hdr.Height)
	}
	if hdr.Quant != 10 {
		t.Errorf("Quant = %d; want 10", hdr.Quant)
	}
	if hdr.PBFrame {
		t.Error("PBFrame should be false for a baseline I-picture")
	}
}

func TestParsePictureHeaderRejectsBadStartCode(t *testing.T) {
	buf := packBits([]bitField{{0x1, 22}})
	br := ioutil.NewBitReader(buf, ioutil.MSB)
	if _, err := ParsePictureHeader(br); err == nil {
		t.Fatal("ParsePictureHeader() should reject a bad start code")
	}
}
