/*
NAME
  shuffler_test.go

DESCRIPTION
  shuffler_test.go tests the last/golden reference store, including the
  property spec.md §8 names: after AddFrame then Clear, GetLast returns
  nil, and AddGolden is independent of AddFrame.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"testing"

	"github.com/ausocean/nihav/format"
)

func mustAlloc(t *testing.T) *VideoBuffer {
	t.Helper()
	vb, err := AllocVideoBuffer(format.YUV420Formaton, 16, 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	return vb
}

func TestShufflerClearDropsLast(t *testing.T) {
	s := &Shuffler{}
	f := mustAlloc(t)
	defer f.Release()

	s.AddFrame(f)
	s.Clear()
	if got := s.GetLast(); got != nil {
		t.Fatalf("GetLast() after Clear() = %v; want nil", got)
	}
}

func TestShufflerGoldenIndependentOfLast(t *testing.T) {
	s := &Shuffler{}
	last := mustAlloc(t)
	golden := mustAlloc(t)
	defer last.Release()
	defer golden.Release()

	s.AddGolden(golden)
	if got := s.GetLast(); got != nil {
		t.Fatalf("GetLast() before AddFrame = %v; want nil", got)
	}
	g := s.GetGolden()
	if g == nil {
		t.Fatal("GetGolden() = nil; want a handle")
	}
	g.Release()

	s.AddFrame(last)
	if s.GetGolden() == nil {
		t.Fatal("AddFrame must not clear golden")
	}
	s.Clear()
}

func TestVideoBufferRefCounting(t *testing.T) {
	vb := mustAlloc(t)
	if vb.RefCount() != 1 {
		t.Fatalf("RefCount() = %d; want 1", vb.RefCount())
	}
	r := vb.Ref()
	if vb.RefCount() != 2 {
		t.Fatalf("RefCount() after Ref() = %d; want 2", vb.RefCount())
	}
	r.Release()
	if vb.RefCount() != 1 {
		t.Fatalf("RefCount() after Release() = %d; want 1", vb.RefCount())
	}
	vb.Release()
}
