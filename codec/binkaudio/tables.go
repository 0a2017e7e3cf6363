/*
NAME
  tables.go

DESCRIPTION
  tables.go holds Bink Audio's fixed log-spaced coefficient quantisation
  table, the critical-frequency band edges, and the run-length table a
  coefficient run's width may be drawn from.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package binkaudio

import "math"

// maxBands bounds the number of critical-frequency bands a stream can use.
const maxBands = 25

// criticalFreqs are the upper edges (Hz) of Bink Audio's 25 fixed
// coefficient bands, scaled by frame length / sample rate to give the
// per-stream band boundaries.
var criticalFreqs = [maxBands]int{
	100, 200, 300, 400, 510, 630, 770, 920,
	1080, 1270, 1480, 1720, 2000, 2320, 2700, 3150,
	3700, 4400, 5300, 6400, 7700, 9500, 12000, 15500,
	24500,
}

// runTab lists the coefficient-run widths (as a multiple of 8) a run's
// 4-bit extended-width code selects between.
var runTab = [16]int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 32, 64}

// quantTable is the 96-entry log-spaced quantisation scale: quantTable[i] =
// exp(i * 0.0664 / log10(e)), matching the fixed-point table Bink's encoder
// built its per-band scale factors from.
var quantTable = buildQuantTable()

func buildQuantTable() [96]float64 {
	var q [96]float64
	const k = 0.0664 / math.Log10(math.E)
	for i := range q {
		q[i] = math.Exp(float64(i) * k)
	}
	return q
}
