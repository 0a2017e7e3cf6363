/*
NAME
  aic.go

DESCRIPTION
  aic.go implements advanced intra coding: a whole-picture cache of each
  intra luma block's top row and left column of dequantised coefficients,
  used to predict a block's DC term (and, in Hor/Ver mode, its first AC
  row or column) from its already-decoded neighbours before the block's
  own coded residual is added.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

// ACPredMode selects which neighbour(s) an intra macroblock's AC
// coefficients are predicted from; it is signalled once per macroblock
// and applies to all four of its luma blocks.
type ACPredMode int

const (
	ACPredNone ACPredMode = iota
	ACPredDC
	ACPredHor
	ACPredVer
)

// PredCoeffs caches, for every luma block in the picture, the top row and
// left column of its dequantised coefficients (hor/ver), indexed by
// macroblock position and block number (0..3, raster order within the
// macroblock). Neighbour lookups read straight across macroblock and row
// boundaries, so the cache spans the whole picture rather than a single
// row.
type PredCoeffs struct {
	mbW, mbH int
	hor      [][8]int32
	ver      [][8]int32
}

// NewPredCoeffs allocates a cache for a picture mbW by mbH macroblocks.
func NewPredCoeffs(mbW, mbH int) *PredCoeffs {
	return &PredCoeffs{
		mbW: mbW,
		mbH: mbH,
		hor: make([][8]int32, mbW*mbH*4),
		ver: make([][8]int32, mbW*mbH*4),
	}
}

func (p *PredCoeffs) pos(mbX, mbY int) int { return mbY*p.mbW + mbX }

// clipDC and clipAC enforce the standard's representable range for a
// predicted DC or AC coefficient.
func clipDC(dc int32) int32 {
	switch {
	case dc < 0:
		return 0
	case dc > 2046:
		return 2046
	default:
		return (dc + 1) &^ 1
	}
}

func clipAC(ac int32) int32 {
	switch {
	case ac < -2048:
		return -2048
	case ac > 2047:
		return 2047
	default:
		return ac
	}
}

// Apply predicts and adds mode's neighbour contribution to coef in place,
// for luma block blkNo (0..3) of macroblock (mbX, mbY). Block 0 is
// top-left, 1 top-right, 2 bottom-left, 3 bottom-right; block 0/1's top
// neighbour is the macroblock above (blocks 2/3), and block 0/2's left
// neighbour is the macroblock to the left (blocks 1/3) - both fall back to
// the standard's flat mid-grey value at a picture edge.
func (p *PredCoeffs) Apply(coef *[64]int32, mode ACPredMode, mbX, mbY, blkNo int) {
	if mode == ACPredNone {
		return
	}

	hasLeft := blkNo == 1 || blkNo == 3 || mbX > 0
	hasTop := blkNo == 2 || blkNo == 3 || mbY > 0

	var leftIdx, topIdx int
	if hasLeft {
		if blkNo == 1 || blkNo == 3 {
			leftIdx = p.pos(mbX, mbY)*4 + blkNo - 1
		} else {
			leftIdx = p.pos(mbX-1, mbY)*4 + blkNo + 1
		}
	}
	if hasTop {
		if blkNo == 2 || blkNo == 3 {
			topIdx = p.pos(mbX, mbY)*4 + blkNo - 2
		} else {
			topIdx = p.pos(mbX, mbY-1)*4 + blkNo + 2
		}
	}

	switch mode {
	case ACPredDC:
		var dc int32
		switch {
		case hasLeft && hasTop:
			dc = (p.hor[leftIdx][0] + p.ver[topIdx][0]) / 2
		case hasTop:
			dc = p.ver[topIdx][0]
		case hasLeft:
			dc = p.hor[leftIdx][0]
		default:
			dc = 1024
		}
		coef[0] = clipDC(coef[0] + dc)
	case ACPredHor:
		if hasLeft {
			for k := 0; k < 8; k++ {
				coef[k*8] += p.hor[leftIdx][k]
			}
			for k := 1; k < 8; k++ {
				coef[k*8] = clipAC(coef[k*8])
			}
		} else {
			coef[0] += 1024
		}
		coef[0] = clipDC(coef[0])
	case ACPredVer:
		if hasTop {
			for k := 0; k < 8; k++ {
				coef[k] += p.ver[topIdx][k]
			}
			for k := 1; k < 8; k++ {
				coef[k] = clipAC(coef[k])
			}
		} else {
			coef[0] += 1024
		}
		coef[0] = clipDC(coef[0])
	}
}

// Save records blkNo's top row and left column of coefficients (post
// prediction, pre-IDCT) for use as a neighbour by later blocks.
func (p *PredCoeffs) Save(mbX, mbY, blkNo int, coef *[64]int32) {
	idx := p.pos(mbX, mbY)*4 + blkNo
	for t := 0; t < 8; t++ {
		p.hor[idx][t] = coef[t*8]
		p.ver[idx][t] = coef[t]
	}
}
