/*
NAME
  block.go

DESCRIPTION
  block.go decodes one 8x8 block of transform coefficients: an intra DC
  term (fixed 8-bit FLC, rescaled) or none, followed by a run of AC
  (run, level, last) triples read from the TCOEF VLC with its escape
  (last, 6-bit run, 8-bit signed level; no second-escape extension is
  read), dequantised into a row-major coefficient array ready for
  idct8x8.

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

// ErrCoeffOverflow is returned when a decoded run of AC coefficients would
// write past index 63 of the block, indicating a corrupt bitstream.
var ErrCoeffOverflow = errors.New("h263: coefficient run overflows block")

// decodeDCIntra reads the fixed-length intra DC code: 8 bits, with the
// reserved codes 0 and 255 remapped to 1 and 254 respectively, then scaled
// by 8 to match the AC coefficients' dequantised scale.
func decodeDCIntra(br *ioutil.BitReader) (int32, error) {
	v, err := br.Read(8)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		v = 1
	} else if v == 255 {
		v = 254
	}
	return int32(v) * 8, nil
}

// dequantAC returns the dequantised value of a decoded (run, level) AC
// coefficient at the given quantiser step size, following the standard's
// odd-only reconstruction levels.
func dequantAC(level uint8, quant int) int32 {
	l := int32(level)
	v := (2*l + 1) * int32(quant)
	if quant%2 == 0 {
		v -= 1
	}
	return v
}

// scanFor returns the coefficient scan order for the given AC-prediction
// mode: 0 selects the default zigzag; 1 selects the alternate-horizontal
// scan used for DC/vertical AC-predicted blocks; 2 selects alternate
// vertical.
func scanFor(mode int) *[64]int {
	switch mode {
	case 1:
		return &altHorizScan
	case 2:
		return &altVertScan
	default:
		return &zigzagScan
	}
}

// decodeBlock reads one block's coefficients from br into coef (row-major,
// 64 entries, pre-zeroed by the caller) using quant as the step size and
// scanMode to pick the coefficient scan order. hasDC selects whether a
// fixed-length intra DC precedes the AC run; when false, index 0 is an AC
// coefficient like any other.
func decodeBlock(br *ioutil.BitReader, coef *[64]int32, quant int, hasDC bool, scanMode int) error {
	scan := scanFor(scanMode)
	pos := 0
	if hasDC {
		dc, err := decodeDCIntra(br)
		if err != nil {
			return err
		}
		coef[0] = dc
		pos = 1
	}

	for {
		sym, err := ioutil.ReadCodebook(br, tcoefCB)
		if err != nil {
			return errors.Wrap(err, "h263: tcoef")
		}

		var last bool
		var run int
		var level uint8
		var neg bool

		if sym == tcoefEscSym {
			lastBit, err := br.Read(1)
			if err != nil {
				return err
			}
			runBits, err := br.Read(6)
			if err != nil {
				return err
			}
			levelBits, err := br.ReadS(8)
			if err != nil {
				return err
			}
			last = lastBit != 0
			run = int(runBits)
			if levelBits < 0 {
				neg = true
				level = uint8(-levelBits)
			} else {
				level = uint8(levelBits)
			}
		} else {
			e := tcoefTab[sym]
			last = e.last
			run = int(e.run)
			level = e.level
			sign, err := br.ReadBool()
			if err != nil {
				return err
			}
			neg = sign
		}

		pos += run
		if pos >= 64 {
			return ErrCoeffOverflow
		}
		v := dequantAC(level, quant)
		if neg {
			v = -v
		}
		coef[scan[pos]] = v
		pos++
		if last {
			return nil
		}
	}
}
