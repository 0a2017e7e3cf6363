/*
NAME
  audio_test.go

DESCRIPTION
  audio_test.go tests the 8-bit silence-block path and the 16-bit
  predictor seed/delta path.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vmd

import (
	"testing"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
)

func TestDecode8BitMonoSilenceBlock(t *testing.T) {
	d := &AudioDecoder{}
	support := &nihav.NADecoderSupport{}
	if err := d.Init(support, frame.CodecInfo{
		Audio: &frame.AudioInfo{
			SampleRate:  22050,
			Channels:    format.ChannelMap{format.ChanC},
			Soniton:     format.SNDU8,
			BlockLength: 4,
		},
	}); err != nil {
		t.Fatal(err)
	}

	// blk_type = 3 (silence): type byte + 9 skip bytes, no further payload.
	buf := []byte{3, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	f, err := d.Decode(support, &frame.Packet{Data: buf})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer f.Release()

	if f.Audio.NumSamples() != d.blkAlign {
		t.Errorf("NumSamples() = %d; want %d", f.Audio.NumSamples(), d.blkAlign)
	}
	for i, v := range f.Audio.Data() {
		if v != 0 {
			t.Errorf("Data()[%d] = %d; want 0", i, v)
		}
	}
}

func TestDecode16BitMonoPredictorBlock(t *testing.T) {
	d := &AudioDecoder{}
	support := &nihav.NADecoderSupport{}
	if err := d.Init(support, frame.CodecInfo{
		Audio: &frame.AudioInfo{
			SampleRate:  22050,
			Channels:    format.ChannelMap{format.ChanC},
			Soniton:     format.Soniton{Bits: 16, Signed: true},
			BlockLength: 2,
		},
	}); err != nil {
		t.Fatal(err)
	}
	if d.blkAlign != 2 || d.blkSize != 3 {
		t.Fatalf("Init() blkAlign=%d blkSize=%d; want 2,3", d.blkAlign, d.blkSize)
	}

	// blk_type = 1 (plain; mask=0, nblocks=1): type + 9 skip bytes, then
	// one block: seed sample 100 (LE u16), one delta byte 0x08 (positive,
	// step table index 8 -> 0x70 = 112) giving a second sample of 212.
	buf := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 100, 0, 0x08}
	f, err := d.Decode(support, &frame.Packet{Data: buf})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer f.Release()

	plane := f.Audio.Plane(0)
	s0 := int16(uint16(plane[0]) | uint16(plane[1])<<8)
	s1 := int16(uint16(plane[2]) | uint16(plane[3])<<8)
	if s0 != 100 {
		t.Errorf("sample 0 = %d; want 100", s0)
	}
	if s1 != 212 {
		t.Errorf("sample 1 = %d; want 212", s1)
	}
}
