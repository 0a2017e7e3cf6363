/*
NAME
  formaton_test.go

DESCRIPTION
  formaton_test.go tests formaton plane-dimension derivation and soniton
  byte-size arithmetic, the properties spec.md §8 names directly.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestYUV420PlaneDims(t *testing.T) {
	f := YUV420Formaton
	w, h := 15, 9 // odd dimensions exercise the ceil() rounding.
	pw := f.PlaneWidth(1, w)
	ph := f.PlaneHeight(1, h)
	if pw != 8 || ph != 5 {
		t.Fatalf("plane 1 dims = %dx%d; want 8x5", pw, ph)
	}
	pw = f.PlaneWidth(2, w)
	ph = f.PlaneHeight(2, h)
	if pw != 8 || ph != 5 {
		t.Fatalf("plane 2 dims = %dx%d; want 8x5", pw, ph)
	}
}

func TestSonitonAudioBytesMonotoneAndUnpacked(t *testing.T) {
	s := Soniton{Bits: 16, Signed: true, Planar: true}
	if got := s.AudioBytes(1000); got != 2000 {
		t.Fatalf("AudioBytes(1000) = %d; want 2000", got)
	}
	prev := 0
	for n := 1; n <= 100; n++ {
		got := s.AudioBytes(n)
		if got < prev {
			t.Fatalf("AudioBytes not monotone at n=%d: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestChannelMapFromMask(t *testing.T) {
	// L, R, LFE set.
	mask := uint32(1<<0 | 1<<1 | 1<<3)
	m := ChannelMapFromMask(mask)
	want := ChannelMap{ChanL, ChanR, ChanLFE}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("ChannelMapFromMask() mismatch (-want +got):\n%s", diff)
	}
}
