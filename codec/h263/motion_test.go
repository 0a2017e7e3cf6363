/*
NAME
  motion_test.go

DESCRIPTION
  motion_test.go tests MV median prediction, UMV wraparound, and the
  MVInfo neighbour grid.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import "testing"

func TestPredMVMedian(t *testing.T) {
	cases := []struct {
		a, b, c MV
		want    MV
	}{
		{MV{1, 1}, MV{2, 2}, MV{3, 3}, MV{2, 2}},
		{MV{5, -5}, MV{1, 1}, MV{3, 3}, MV{3, 1}},
		{MV{0, 0}, MV{0, 0}, MV{0, 0}, MV{0, 0}},
		{MV{-10, 10}, MV{10, -10}, MV{0, 0}, MV{0, 0}},
	}
	for _, c := range cases {
		got := predMV(c.a, c.b, c.c)
		if got != c.want {
			t.Errorf("predMV(%v,%v,%v) = %v; want %v", c.a, c.b, c.c, got, c.want)
		}
	}
}

func TestAddUMVOldWraparound(t *testing.T) {
	got := addUMV(MV{60, 0}, MV{10, 0}, MVModeOld)
	if got.X != 6 {
		t.Errorf("addUMV Old wraparound X = %d; want 6", got.X)
	}
	got = addUMV(MV{-60, 0}, MV{-10, 0}, MVModeOld)
	if got.X != -6 {
		t.Errorf("addUMV Old wraparound negative X = %d; want -6", got.X)
	}
}

func TestAddUMVLongWraparound(t *testing.T) {
	got := addUMV(MV{20, 0}, MV{15, 0}, MVModeLong)
	if got.X != -29 {
		t.Errorf("addUMV Long wraparound X = %d; want -29", got.X)
	}
	got = addUMV(MV{-20, 0}, MV{-15, 0}, MVModeLong)
	if got.X != 29 {
		t.Errorf("addUMV Long wraparound negative X = %d; want 29", got.X)
	}
}

func TestMVInfoPredictFirstMacroblock(t *testing.T) {
	m := NewMVInfo(4, MVModeOld)
	a, b, c := m.Predict(0, 0, true, true)
	if (a != MV{}) || (b != MV{}) || (c != MV{}) {
		t.Fatalf("Predict at (0,0) on an empty grid should yield zero neighbours, got a=%v b=%v c=%v", a, b, c)
	}
}

func TestMVInfoStoreAndPredictPropagates(t *testing.T) {
	m := NewMVInfo(4, MVModeOld)
	m.Store(0, 0, MV{4, 4}, false)
	a, _, _ := m.Predict(1, 0, true, false)
	if a != (MV{4, 4}) {
		t.Fatalf("Predict(1,0) left neighbour = %v; want {4 4}", a)
	}
}

func TestAvgChromaMVRoundsToNearest(t *testing.T) {
	mvs := [4]MV{{2, 0}, {2, 0}, {2, 0}, {2, 0}}
	got := avgChromaMV(mvs)
	if got != (MV{2, 0}) {
		t.Fatalf("avgChromaMV(all 2) = %v; want {2 0}", got)
	}

	mvs = [4]MV{{1, -1}, {1, -1}, {1, -1}, {2, -2}}
	// sumX=5 -> (5+2)/4=1; sumY=-5 -> -((5+2)/4)=-1.
	got = avgChromaMV(mvs)
	if got != (MV{1, -1}) {
		t.Fatalf("avgChromaMV(mixed) = %v; want {1 -1}", got)
	}
}

func TestRoundDiv4TiesAwayFromZero(t *testing.T) {
	if got := roundDiv4(2); got != 1 {
		t.Errorf("roundDiv4(2) = %d; want 1", got)
	}
	if got := roundDiv4(-2); got != -1 {
		t.Errorf("roundDiv4(-2) = %d; want -1", got)
	}
	if got := roundDiv4(0); got != 0 {
		t.Errorf("roundDiv4(0) = %d; want 0", got)
	}
}

func TestMcBlockFullPel(t *testing.T) {
	src := make([]byte, 16*16)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 8*8)
	mcBlock(dst, 8, src, 16, 16, 16, 0, 0, MV{0, 0})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst[y*8+x] != src[y*16+x] {
				t.Fatalf("mcBlock zero-MV copy mismatch at (%d,%d): got %d want %d", x, y, dst[y*8+x], src[y*16+x])
			}
		}
	}
}
