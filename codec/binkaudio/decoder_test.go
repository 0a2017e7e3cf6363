/*
NAME
  decoder_test.go

DESCRIPTION
  decoder_test.go hand-verifies the overlap-add cross-fade, the quant
  table's log-spacing, and Decoder.Init's derived frame geometry.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package binkaudio

import (
	"math"
	"testing"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// TestOverlapLinearInterpolation exercises the testable property that two
// consecutive identical sub-frames yield a cross-fade whose first
// overlapLen samples linearly interpolate from the previous tail to the
// current head.
func TestOverlapLinearInterpolation(t *testing.T) {
	prevTail := []float64{0, 0, 0, 0}
	curHead := []float64{8, 8, 8, 8}
	dst := make([]float64, 4)

	overlap(prevTail, curHead, dst, 4, 1)

	want := []float64{0, 2, 4, 6}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v; want %v", i, dst[i], w)
		}
	}
}

// TestOverlapZeroLengthIsNoop covers the firstFrame case, where overlapLen
// is forced to 0 and no samples should be touched.
func TestOverlapZeroLengthIsNoop(t *testing.T) {
	dst := []float64{9, 9, 9}
	overlap([]float64{1, 2, 3}, []float64{4, 5, 6}, dst, 0, 1)
	for i, v := range dst {
		if v != 9 {
			t.Errorf("dst[%d] = %v; want untouched 9", i, v)
		}
	}
}

// TestOverlapStridedSource exercises the RDFT path's stride-2 read (one
// channel's samples live at every other index of the shared buffer).
func TestOverlapStridedSource(t *testing.T) {
	prevTail := []float64{0, 0}
	// b read with step=2 starting at offset 0 sees indices 0, 2.
	b := []float64{10, 99, 20, 99}
	dst := make([]float64, 2)
	overlap(prevTail, b, dst, 2, 2)
	// dst[i] = (prevTail[i]*(2-i) + b[i*2]*i) / 2: dst[0]=0, dst[1]=20*1/2=10.
	want := []float64{0, 10}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v; want %v", i, dst[i], w)
		}
	}
}

// TestQuantTableIsLogSpaced checks the fixed quantisation table is strictly
// increasing and starts at 1 (quantTable[0] = exp(0) = 1).
func TestQuantTableIsLogSpaced(t *testing.T) {
	if quantTable[0] != 1 {
		t.Fatalf("quantTable[0] = %v; want 1", quantTable[0])
	}
	for i := 1; i < len(quantTable); i++ {
		if quantTable[i] <= quantTable[i-1] {
			t.Fatalf("quantTable[%d] = %v; not greater than quantTable[%d] = %v", i, quantTable[i], i-1, quantTable[i-1])
		}
	}
}

// TestInitDeriveFrameGeometryDCT checks the DCT-variant frame length and
// duration derived for a 22050Hz mono stream: frameBits=10 (22050 falls in
// the [22050,44100) band), frameLen=1024, duration=1024-64=960.
func TestInitDeriveFrameGeometryDCT(t *testing.T) {
	d := &Decoder{UseDCT: true}
	info := frame.CodecInfo{
		Audio: &frame.AudioInfo{
			SampleRate: 22050,
			Channels:   format.ChannelMap{format.ChanC},
		},
	}
	if err := d.Init(&nihav.NADecoderSupport{}, info); err != nil {
		t.Fatal(err)
	}
	if d.frameLen != 1024 {
		t.Errorf("frameLen = %d; want 1024", d.frameLen)
	}
	if d.duration != 960 {
		t.Errorf("duration = %d; want 960", d.duration)
	}
	if d.single {
		t.Errorf("single = true; want false for DCT variant")
	}
}

// TestInitDeriveFrameGeometryRDFTStereo checks the RDFT-variant, non-B
// stream gets an extra frame bit and a halved duration when stereo
// ("single" mode): 22050Hz -> frameBits=10+1=11, frameLen=2048,
// duration=(2048-128)/2=960.
func TestInitDeriveFrameGeometryRDFTStereo(t *testing.T) {
	d := &Decoder{UseDCT: false}
	info := frame.CodecInfo{
		Audio: &frame.AudioInfo{
			SampleRate: 22050,
			Channels:   format.ChannelMap{format.ChanL, format.ChanR},
		},
	}
	if err := d.Init(&nihav.NADecoderSupport{}, info); err != nil {
		t.Fatal(err)
	}
	if d.frameLen != 2048 {
		t.Errorf("frameLen = %d; want 2048", d.frameLen)
	}
	if !d.single {
		t.Errorf("single = false; want true for RDFT stereo")
	}
	if d.duration != 960 {
		t.Errorf("duration = %d; want 960", d.duration)
	}
}

// TestReadBinkFloatAllZero verifies the custom float decode's exponent
// bias: an all-zero 29-bit field has exp=0, which biases to 0x7E (126),
// giving 0.5 rather than 0.0 (there is no denormal/zero special case).
func TestReadBinkFloatAllZero(t *testing.T) {
	data := []byte{0, 0, 0, 0}
	br := ioutil.NewBitReader(data, ioutil.LSB)
	v, err := readBinkFloat(br)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-0.5) > 1e-9 {
		t.Errorf("readBinkFloat() = %v; want 0.5", v)
	}
}

// TestReadBinkFloatUnitExponent packs exp=0x7F-0x7E=1 i.e. raw exp field
// 0x01 with zero mantissa and sign, which biases to 0x7F (127, IEEE-754's
// bias for exponent 0) giving back exactly 1.0.
func TestReadBinkFloatUnitExponent(t *testing.T) {
	// Bit layout, LSB-first: exp(5 bits)=1, mant(23 bits)=0, sign(1 bit)=0.
	// That is bit0=1, bits1..28=0: byte0 = 0b00000001 = 0x01.
	data := []byte{0x01, 0, 0, 0}
	br := ioutil.NewBitReader(data, ioutil.LSB)
	v, err := readBinkFloat(br)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-1.0) > 1e-9 {
		t.Errorf("readBinkFloat() = %v; want 1.0", v)
	}
}
