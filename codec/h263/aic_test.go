/*
NAME
  aic_test.go

DESCRIPTION
  aic_test.go checks PredCoeffs' DC prediction fallback, neighbour
  averaging, and Apply's Hor/Ver AC coefficient insertion.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import "testing"

func TestApplyDCDefaultsToFlatGreyAtPictureOrigin(t *testing.T) {
	p := NewPredCoeffs(2, 2)
	var coef [64]int32
	p.Apply(&coef, ACPredDC, 0, 0, 0)
	if coef[0] != 1024 {
		t.Fatalf("coef[0] = %d; want 1024 (no neighbours available)", coef[0])
	}
}

func TestApplyDCUsesLeftNeighbourOnly(t *testing.T) {
	p := NewPredCoeffs(2, 2)
	var leftCoef [64]int32
	leftCoef[0] = 512
	p.Save(0, 0, 1, &leftCoef) // block 1 of mb(0,0): block 0 of mb(1,0)'s left neighbour.

	var coef [64]int32
	p.Apply(&coef, ACPredDC, 1, 0, 0) // first row, so blkNo 0 has no top neighbour.
	want := int32(512)
	if coef[0] != want {
		t.Fatalf("coef[0] = %d; want %d", coef[0], want)
	}
}

func TestApplyDCAveragesWhenBothNeighboursExist(t *testing.T) {
	p := NewPredCoeffs(2, 2)
	// Neither neighbour has been saved; both read back as zero, so the
	// average is zero regardless of the DC's usual 1024 picture-origin
	// fallback (that fallback only applies when NO neighbour exists).
	var coef [64]int32
	p.Apply(&coef, ACPredDC, 1, 1, 2) // not first row/col: both neighbours exist.
	if coef[0] != 0 {
		t.Fatalf("coef[0] = %d; want 0", coef[0])
	}
}

func TestApplyHorAddsLeftColumn(t *testing.T) {
	p := NewPredCoeffs(2, 1)
	var leftCoef [64]int32
	left := [8]int32{0, 1, 2, 3, 4, 5, 6, 7}
	for i, v := range left {
		leftCoef[i*8] = v
	}
	p.Save(0, 0, 1, &leftCoef) // block 1 of mb(0,0) is block 0 of mb(1,0)'s left neighbour.

	var coef [64]int32
	p.Apply(&coef, ACPredHor, 1, 0, 0)
	for i := 1; i < 8; i++ {
		if coef[i*8] != left[i] {
			t.Errorf("coef[%d] = %d; want %d", i*8, coef[i*8], left[i])
		}
	}
	if coef[0] != 0 {
		t.Errorf("coef[0] = %d; want untouched by the residual's own DC (0)", coef[0])
	}
}

func TestApplyVerAddsTopRow(t *testing.T) {
	p := NewPredCoeffs(1, 2)
	var topCoef [64]int32
	top := [8]int32{0, 10, 20, 30, 40, 50, 60, 70}
	for i, v := range top {
		topCoef[i] = v
	}
	p.Save(0, 1, 0, &topCoef) // block 0 of mb(0,1) is block 2's top neighbour in the same MB.

	var coef [64]int32
	p.Apply(&coef, ACPredVer, 0, 1, 2)
	for i := 1; i < 8; i++ {
		if coef[i] != top[i] {
			t.Errorf("coef[%d] = %d; want %d", i, coef[i], top[i])
		}
	}
}

func TestApplyNoneLeavesCoefUntouched(t *testing.T) {
	p := NewPredCoeffs(1, 1)
	coef := [64]int32{5: 42}
	before := coef
	p.Apply(&coef, ACPredNone, 0, 0, 0)
	if coef != before {
		t.Fatalf("Apply(ACPredNone) modified coef: got %v, want %v", coef, before)
	}
}

func TestClipDCRoundsUpToEven(t *testing.T) {
	if got := clipDC(511); got != 512 {
		t.Errorf("clipDC(511) = %d; want 512", got)
	}
	if got := clipDC(-5); got != 0 {
		t.Errorf("clipDC(-5) = %d; want 0 (clamped)", got)
	}
	if got := clipDC(3000); got != 2046 {
		t.Errorf("clipDC(3000) = %d; want 2046 (clamped)", got)
	}
}

func TestClipACClampsToRange(t *testing.T) {
	if got := clipAC(-3000); got != -2048 {
		t.Errorf("clipAC(-3000) = %d; want -2048", got)
	}
	if got := clipAC(3000); got != 2047 {
		t.Errorf("clipAC(3000) = %d; want 2047", got)
	}
	if got := clipAC(5); got != 5 {
		t.Errorf("clipAC(5) = %d; want 5 (unchanged)", got)
	}
}
