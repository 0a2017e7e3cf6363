/*
NAME
  decoder_test.go

DESCRIPTION
  decoder_test.go hand-traces a handful of VLC symbols through
  decodePlaneIntra, decodePlaneInter, and a full Decoder.Decode pass across
  all three planes of a single small intra frame.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package indeo2

import (
	"testing"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// TestDecodePlaneIntraFirstRow decodes an 8-wide, 1-tall intra plane from
// three symbols: an escape run of 4 (filling 0x80,0x80,0x80,0x80), then the
// literal pairs at table index 1 (0x84,0x84) and index 2 (0x7C,0x7C). The
// symbols are sym=130 (code 0x11, 5 bits), sym=1 (code 0x0, 3 bits), sym=2
// (code 0x4, 3 bits); packed LSB-first this is the two bytes {0x11, 0x04}.
func TestDecodePlaneIntraFirstRow(t *testing.T) {
	pool := frame.NewVideoBufferPool(format.YUV420Formaton, 8, 1, 1, 1)
	buf, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Release()

	br := ioutil.NewBitReader([]byte{0x11, 0x04}, ioutil.LSB)
	if err := decodePlaneIntra(br, buf, 0, 0); err != nil {
		t.Fatalf("decodePlaneIntra() error = %v", err)
	}

	want := []byte{0x80, 0x80, 0x80, 0x80, 0x84, 0x84, 0x7C, 0x7C}
	got := buf.Plane(0)
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Plane(0)[%d] = %#x; want %#x", i, got[i], v)
		}
	}
}

// TestDecodePlaneInterScalesDeltaByThreeQuarters seeds a 2-wide, 1-tall
// plane with 0x80,0x80 and applies the literal symbol sym=1 (table index 1,
// delta table 0: 0x84,0x84, i.e. deltas of +4): the inter path scales each
// delta by 3/4 before adding it, giving 0x80+3 = 0x83.
func TestDecodePlaneInterScalesDeltaByThreeQuarters(t *testing.T) {
	pool := frame.NewVideoBufferPool(format.YUV420Formaton, 2, 1, 1, 1)
	buf, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Release()
	copy(buf.Plane(0), []byte{0x80, 0x80})

	br := ioutil.NewBitReader([]byte{0x00}, ioutil.LSB)
	if err := decodePlaneInter(br, buf, 0, 0); err != nil {
		t.Fatalf("decodePlaneInter() error = %v", err)
	}

	want := []byte{0x83, 0x83}
	got := buf.Plane(0)
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Plane(0)[%d] = %#x; want %#x", i, got[i], v)
		}
	}
}

// buildIntraPacket assembles a full frame: a 48-byte header with the
// intra/table-selector bytes set, followed by 17 bits of VLC data (packed
// into 3 bytes) covering an 8x1 luma plane and two 2x1 chroma planes, all
// with delta table 0. See TestDecodeFullIntraFrame for the bit-level trace.
func buildIntraPacket() []byte {
	hdr := make([]byte, 48)
	hdr[18] = 1 // nonzero => intra, despite the name in the original codec
	hdr[34] = 0 // tabs: luma_tab=0, chroma_tab=0
	return append(hdr, 0x11, 0x04, 0x00)
}

func TestDecodeFullIntraFrame(t *testing.T) {
	pool := frame.NewVideoBufferPool(format.YUV410Formaton, 8, 1, 1, 2)
	support := &nihav.NADecoderSupport{Pool: pool}

	d := &Decoder{}
	if err := d.Init(support, frame.CodecInfo{
		Video: &frame.VideoInfo{Width: 8, Height: 1},
	}); err != nil {
		t.Fatal(err)
	}

	f, err := d.Decode(support, &frame.Packet{Data: buildIntraPacket()})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer f.Release()

	if !f.Keyframe || f.Type != frame.TypeI {
		t.Errorf("intra frame should report keyframe/I, got Keyframe=%v Type=%v", f.Keyframe, f.Type)
	}

	wantLuma := []byte{0x80, 0x80, 0x80, 0x80, 0x84, 0x84, 0x7C, 0x7C}
	gotLuma := f.Video.Plane(0)
	for i, v := range wantLuma {
		if gotLuma[i] != v {
			t.Errorf("Plane(0)[%d] = %#x; want %#x", i, gotLuma[i], v)
		}
	}

	wantChroma := []byte{0x84, 0x84}
	for _, planeno := range []int{1, 2} {
		got := f.Video.Plane(planeno)
		for i, v := range wantChroma {
			if got[i] != v {
				t.Errorf("Plane(%d)[%d] = %#x; want %#x", planeno, i, got[i], v)
			}
		}
	}
}

func TestDecodeInterWithoutReferenceFails(t *testing.T) {
	pool := frame.NewVideoBufferPool(format.YUV410Formaton, 8, 1, 1, 2)
	support := &nihav.NADecoderSupport{Pool: pool}

	d := &Decoder{}
	if err := d.Init(support, frame.CodecInfo{
		Video: &frame.VideoInfo{Width: 8, Height: 1},
	}); err != nil {
		t.Fatal(err)
	}

	pkt := make([]byte, 48)
	pkt[18] = 0 // zero => inter
	_, err := d.Decode(support, &frame.Packet{Data: pkt})
	if err != nihav.ErrMissingReference {
		t.Errorf("Decode() error = %v; want ErrMissingReference", err)
	}
}
