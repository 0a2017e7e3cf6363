/*
NAME
  motion.go

DESCRIPTION
  motion.go implements motion vector prediction (the three-neighbour
  median rule) and motion compensation (half-pel bilinear interpolation)
  for P macroblocks.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

// MV is a motion vector in quarter-sample-chroma/half-sample-luma units
// (the standard's native MV unit).
type MV struct {
	X, Y int16
}

func (a MV) add(b MV) MV { return MV{a.X + b.X, a.Y + b.Y} }

func med3(a, b, c int16) int16 {
	if a < b {
		if b < c {
			return b
		}
		if a < c {
			return c
		}
		return a
	}
	if b < c {
		if a < c {
			return a
		}
		return c
	}
	return b
}

// predMV returns the component-wise median of three candidate MVs, the
// standard's MV prediction rule.
func predMV(a, b, c MV) MV {
	return MV{med3(a.X, b.X, c.X), med3(a.Y, b.Y, c.Y)}
}

// MVMode selects the wraparound rule applied after adding a differential
// to a predicted MV.
type MVMode int

const (
	MVModeOld MVMode = iota
	MVModeLong
	MVModeUMV
)

// addUMV adds diff to pred and applies mode's wraparound rule, keeping the
// result within the representable range for the bitstream's MV coding
// mode.
func addUMV(pred, diff MV, mode MVMode) MV {
	nv := pred.add(diff)
	switch mode {
	case MVModeOld:
		if nv.X >= 64 {
			nv.X -= 64
		} else if nv.X <= -64 {
			nv.X += 64
		}
		if nv.Y >= 64 {
			nv.Y -= 64
		} else if nv.Y <= -64 {
			nv.Y += 64
		}
	case MVModeLong, MVModeUMV:
		if nv.X > 31 {
			nv.X -= 64
		} else if nv.X < -32 {
			nv.X += 64
		}
		if nv.Y > 31 {
			nv.Y -= 64
		} else if nv.Y < -32 {
			nv.Y += 64
		}
	}
	return nv
}

// MVInfo holds the per-macroblock (or per-8x8-block, when 4MV is active)
// motion vector grid for the current and previous macroblock row, enough
// context to compute the three MV-prediction neighbours (A, B, C) for any
// block without keeping the whole picture's MVs resident.
type MVInfo struct {
	mbW      int
	mvMode   MVMode
	mv       [2][]MV // mv[0] is the row above, mv[1] is the current row; each mbW*2 wide (2 columns per MB)
	curRow   int
}

// NewMVInfo allocates an MVInfo for a picture mbW macroblocks wide.
func NewMVInfo(mbW int, mode MVMode) *MVInfo {
	m := &MVInfo{mbW: mbW, mvMode: mode}
	m.mv[0] = make([]MV, mbW*2)
	m.mv[1] = make([]MV, mbW*2)
	return m
}

// StartRow rotates the current row into the "above" slot and clears the
// new current row, called once per macroblock row.
func (m *MVInfo) StartRow() {
	m.mv[0], m.mv[1] = m.mv[1], m.mv[0]
	for i := range m.mv[1] {
		m.mv[1][i] = MV{}
	}
	m.curRow++
}

// SetZeroMV records a zero MV for all four sub-blocks of macroblock mbX
// (a skipped or intra macroblock contributes a zero neighbour to later
// predictions).
func (m *MVInfo) SetZeroMV(mbX int) {
	m.mv[1][mbX*2] = MV{}
	m.mv[1][mbX*2+1] = MV{}
}

// Predict computes the prediction neighbours for sub-block blkNo (0..3,
// raster order within the macroblock) of macroblock mbX, following the
// standard's A/B/C neighbour rule with edge fallbacks at the picture
// boundary and first macroblock row/column.
func (m *MVInfo) Predict(mbX, blkNo int, firstRow, firstMB bool) (a, b, c MV) {
	col := mbX * 2
	switch blkNo {
	case 0:
		if firstMB {
			a = MV{}
		} else {
			a = m.mv[1][col-1]
		}
		if firstRow {
			b = a
			c = a
		} else {
			b = m.mv[0][col]
			if mbX+1 < m.mbW {
				c = m.mv[0][col+2]
			} else {
				c = m.mv[0][col]
			}
		}
	case 1:
		a = m.mv[1][col]
		if firstRow {
			b = a
			c = a
		} else {
			b = m.mv[0][col+1]
			if mbX+1 < m.mbW {
				c = m.mv[0][col+2]
			} else {
				c = b
			}
		}
	case 2:
		if firstMB {
			a = MV{}
		} else {
			a = m.mv[1][col-1]
		}
		b = m.mv[1][col]
		c = b
	case 3:
		a = m.mv[1][col]
		b = m.mv[1][col+1]
		c = a
	}
	return a, b, c
}

// Store records the decoded MV for sub-block blkNo of macroblock mbX. When
// use4 is false (1MV macroblock) the same MV is stored for all four
// sub-block slots so later neighbour lookups see a uniform macroblock MV.
func (m *MVInfo) Store(mbX, blkNo int, mv MV, use4 bool) {
	col := mbX * 2
	if !use4 {
		m.mv[1][col] = mv
		m.mv[1][col+1] = mv
		return
	}
	switch blkNo {
	case 0, 2:
		m.mv[1][col] = mv
	case 1, 3:
		m.mv[1][col+1] = mv
	}
}

// avgChromaMV derives a 4MV macroblock's single chroma motion vector from
// its four luma block MVs, rounding each component's sum of four to the
// nearest quarter (ties away from zero), the standard's chroma-from-4MV
// averaging rule.
func avgChromaMV(mvs [4]MV) MV {
	sumX := int32(mvs[0].X) + int32(mvs[1].X) + int32(mvs[2].X) + int32(mvs[3].X)
	sumY := int32(mvs[0].Y) + int32(mvs[1].Y) + int32(mvs[2].Y) + int32(mvs[3].Y)
	return MV{roundDiv4(sumX), roundDiv4(sumY)}
}

func roundDiv4(sum int32) int16 {
	if sum >= 0 {
		return int16((sum + 2) / 4)
	}
	return int16(-((-sum + 2) / 4))
}

// mcBlock writes an 8x8 half-pel motion-compensated prediction from src
// (stride ss) at fractional offset (mv.X/2, mv.Y/2) into dst (stride ds),
// using bilinear interpolation across whichever of the horizontal/
// vertical half-pel positions are active.
func mcBlock(dst []byte, ds int, src []byte, ss, srcW, srcH, x0, y0 int, mv MV) {
	fx := mv.X & 1
	fy := mv.Y & 1
	sx := x0 + int(mv.X>>1)
	sy := y0 + int(mv.Y>>1)

	sample := func(xx, yy int) int {
		if xx < 0 {
			xx = 0
		}
		if xx >= srcW {
			xx = srcW - 1
		}
		if yy < 0 {
			yy = 0
		}
		if yy >= srcH {
			yy = srcH - 1
		}
		return int(src[yy*ss+xx])
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			xx, yy := sx+x, sy+y
			var v int
			switch {
			case fx == 0 && fy == 0:
				v = sample(xx, yy)
			case fx == 1 && fy == 0:
				v = (sample(xx, yy) + sample(xx+1, yy) + 1) / 2
			case fx == 0 && fy == 1:
				v = (sample(xx, yy) + sample(xx, yy+1) + 1) / 2
			default:
				v = (sample(xx, yy) + sample(xx+1, yy) + sample(xx, yy+1) + sample(xx+1, yy+1) + 2) / 4
			}
			dst[y*ds+x] = uint8(v)
		}
	}
}
