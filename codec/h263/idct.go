/*
NAME
  idct.go

DESCRIPTION
  idct.go implements the separable 8x8 inverse DCT used to reconstruct a
  block's residual from its dequantised coefficients: a 1-D butterfly pass
  applied first to rows then to columns, plus a DC-only fast path for the
  common all-zero-AC block.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

const idctShift = 17

// idct1D runs the 8-point butterfly inverse transform in place over blk,
// using the fixed-point multiplier table idctC (C1..C7, spec.md §4.5).
func idct1D(blk *[8]int32) {
	var t [8]int32
	c4 := idctC[4]

	a0 := blk[0]*c4 + blk[4]*c4
	a1 := blk[0]*c4 - blk[4]*c4
	a2 := blk[2]*idctC[6] - blk[6]*idctC[2]
	a3 := blk[2]*idctC[2] + blk[6]*idctC[6]

	b0 := a0 + a3
	b3 := a0 - a3
	b1 := a1 + a2
	b2 := a1 - a2

	c0 := blk[1]*idctC[1] + blk[3]*idctC[3] + blk[5]*idctC[5] + blk[7]*idctC[7]
	c1 := blk[1]*idctC[3] - blk[3]*idctC[7] - blk[5]*idctC[1] - blk[7]*idctC[5]
	c2 := blk[1]*idctC[5] - blk[3]*idctC[1] + blk[5]*idctC[7] + blk[7]*idctC[3]
	c3 := blk[1]*idctC[7] - blk[3]*idctC[5] + blk[5]*idctC[3] - blk[7]*idctC[1]

	t[0] = (b0 + c0) >> idctShift
	t[7] = (b0 - c0) >> idctShift
	t[1] = (b1 + c1) >> idctShift
	t[6] = (b1 - c1) >> idctShift
	t[2] = (b2 + c2) >> idctShift
	t[5] = (b2 - c2) >> idctShift
	t[3] = (b3 + c3) >> idctShift
	t[4] = (b3 - c3) >> idctShift

	*blk = t
}

// idct8x8 runs the separable inverse transform over a row-major 8x8 block
// of dequantised coefficients, in place.
func idct8x8(blk *[64]int32) {
	var col [8]int32
	for y := 0; y < 8; y++ {
		var row [8]int32
		copy(row[:], blk[y*8:y*8+8])
		idct1D(&row)
		copy(blk[y*8:y*8+8], row[:])
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = blk[y*8+x]
		}
		idct1D(&col)
		for y := 0; y < 8; y++ {
			blk[y*8+x] = col[y]
		}
	}
}

func clip255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// putBlock writes an intra block's reconstructed samples directly into
// dst (stride s), clipping to [0,255].
func putBlock(blk *[64]int32, dst []byte, s int) {
	for y := 0; y < 8; y++ {
		row := dst[y*s : y*s+8]
		for x := 0; x < 8; x++ {
			row[x] = clip255(blk[y*8+x])
		}
	}
}

// addBlock adds an inter block's residual to the motion-compensated
// prediction already present in dst, clipping to [0,255].
func addBlock(blk *[64]int32, dst []byte, s int) {
	for y := 0; y < 8; y++ {
		row := dst[y*s : y*s+8]
		for x := 0; x < 8; x++ {
			row[x] = clip255(int32(row[x]) + blk[y*8+x])
		}
	}
}

// idctDCOnly fast-paths the common case of a block whose only non-zero
// coefficient is the DC term: the output is a flat DC/8 value at every
// position (the separable transform of a pure-DC input collapses to a
// constant), saving the full two-pass butterfly.
func idctDCOnly(dc int32) int32 {
	// Two 1-D passes each apply the same C4 butterfly to a vector with only
	// element 0 set, and each pass scales it by C4>>17 (about 1/(2*sqrt 2)),
	// so the two passes together divide by 8; equivalently dc rounds to dc/8
	// in nihav's own dc-only shortcut.
	return dc / 8
}
