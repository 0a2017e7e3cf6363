/*
NAME
  mb.go

DESCRIPTION
  mb.go decodes one macroblock's header: for inter pictures, the coded/
  not-coded flag, then (coded) MCBPC giving macroblock type and chroma
  CBP, CBPY giving luma CBP, an optional quantiser delta, and one or four
  motion vector differentials; for intra pictures, MCBPC, the AIC
  prediction mode when AIC is on, CBPY and the optional quantiser delta.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav/ioutil"
)

// MBType enumerates the standard's inter macroblock types 0..4 (for intra
// pictures, every macroblock is MBIntra).
type MBType int

const (
	MBInter MBType = iota
	MBInter4V
	MBInterQ
	MBIntra
	MBIntraQ
)

// MBInfo is one decoded macroblock header.
type MBInfo struct {
	Skipped bool
	Type    MBType
	CBPC    uint8 // 2-bit chroma CBP
	CBPY    uint8 // 4-bit luma CBP
	Quant   int   // effective quantiser for this macroblock
	MVD     [4]MV // motion vector differentials; only MVD[0] valid unless Type == MBInter4V
	Use4MV  bool
	ACPred  ACPredMode // advanced intra coding mode; ACPredNone unless intra and AIC is active
}

// decodeMCBPC reads one MCBPC code, re-reading through the stuffing escape
// as many times as the bitstream repeats it.
func decodeMCBPC(br *ioutil.BitReader, intra bool) (mbt int8, cbpc uint8, err error) {
	cb := mcbpcInterCB
	rows := mcbpcInter
	if intra {
		cb = mcbpcIntraCB
		rows = mcbpcIntra
	}
	for {
		sym, err := ioutil.ReadCodebook(br, cb)
		if err != nil {
			return 0, 0, errors.Wrap(err, "h263: mcbpc")
		}
		e := rows[sym]
		if e.mbt == -1 {
			continue // stuffing: the code carries no information, read another
		}
		return e.mbt, e.cbpc, nil
	}
}

func decodeCBPY(br *ioutil.BitReader) (uint8, error) {
	sym, err := ioutil.ReadCodebook(br, cbpyCB)
	if err != nil {
		return 0, errors.Wrap(err, "h263: cbpy")
	}
	return cbpyTab[sym].cbpy, nil
}

func decodeMVD(br *ioutil.BitReader) (int16, error) {
	sym, err := ioutil.ReadCodebook(br, mvdCB)
	if err != nil {
		return 0, errors.Wrap(err, "h263: mvd")
	}
	val := mvdTab[sym].val
	if val == 0 {
		return 0, nil
	}
	if val < 0 {
		return int16(val), nil
	}
	// non-zero positive magnitudes carry an explicit sign bit; the table's
	// negative rows (magnitudes 1..7) have the sign folded into the code
	// itself and read no sign bit.
	sign, err := br.ReadBool()
	if err != nil {
		return 0, err
	}
	if sign {
		return -int16(val), nil
	}
	return int16(val), nil
}

// decodeMBHeader decodes one macroblock header. gquant is the GOB/picture
// quantiser in effect before any per-macroblock DQUANT is applied. aic
// reports whether the picture header enabled advanced intra coding; when
// set, an intra macroblock carries one or two extra bits selecting its AC
// prediction mode between MCBPC and CBPY.
func decodeMBHeader(br *ioutil.BitReader, intra bool, gquant int, aic bool) (MBInfo, error) {
	info := MBInfo{Quant: gquant}

	if !intra {
		coded, err := br.ReadBool()
		if err != nil {
			return info, err
		}
		if !coded {
			info.Skipped = true
			info.Type = MBInter
			return info, nil
		}
	}

	mbt, cbpc, err := decodeMCBPC(br, intra)
	if err != nil {
		return info, err
	}
	info.Type = MBType(mbt)
	info.CBPC = cbpc
	info.Use4MV = info.Type == MBInter4V

	if intra && aic {
		acpp, err := br.ReadBool()
		if err != nil {
			return info, err
		}
		info.ACPred = ACPredDC
		if acpp {
			hor, err := br.ReadBool()
			if err != nil {
				return info, err
			}
			if hor {
				info.ACPred = ACPredHor
			} else {
				info.ACPred = ACPredVer
			}
		}
	}

	cbpy, err := decodeCBPY(br)
	if err != nil {
		return info, err
	}
	info.CBPY = cbpy

	if info.Type == MBIntraQ || info.Type == MBInterQ {
		d, err := br.Read(2)
		if err != nil {
			return info, err
		}
		info.Quant += dquantDelta[d]
		if info.Quant < 1 {
			info.Quant = 1
		}
		if info.Quant > 31 {
			info.Quant = 31
		}
	}

	if !intra && info.Type != MBIntra && info.Type != MBIntraQ {
		n := 1
		if info.Use4MV {
			n = 4
		}
		for i := 0; i < n; i++ {
			x, err := decodeMVD(br)
			if err != nil {
				return info, err
			}
			y, err := decodeMVD(br)
			if err != nil {
				return info, err
			}
			info.MVD[i] = MV{x, y}
		}
	}

	return info, nil
}

// IsIntra reports whether mb carries only intra-coded blocks.
func (mb MBInfo) IsIntra() bool { return mb.Type == MBIntra || mb.Type == MBIntraQ }

// CBP returns the full 6-bit coded-block pattern (4 luma + 2 chroma bits),
// MSB-first luma-then-chroma as the rest of this package expects.
func (mb MBInfo) CBP() uint8 {
	return mb.CBPY<<2 | mb.CBPC
}
