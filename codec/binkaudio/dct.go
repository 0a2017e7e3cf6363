/*
NAME
  dct.go

DESCRIPTION
  dct.go wraps gonum's DCT-II/III pair for Bink Audio's "DCT" transform
  variant, applied in place to one sub-frame's reconstructed coefficients.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package binkaudio

import "gonum.org/v1/gonum/dsp/fourier"

// dctTransform applies the inverse (type-III) DCT a Bink "DCT" sub-frame's
// quantised coefficients need before overlap-add.
type dctTransform struct {
	t *fourier.DCT
	n int
}

func newDCTTransform(n int) *dctTransform {
	return &dctTransform{t: fourier.NewDCT(n), n: n}
}

// inverse replaces coeffs with its inverse DCT, in place.
func (d *dctTransform) inverse(coeffs []float64) {
	src := make([]float64, d.n)
	copy(src, coeffs)
	d.t.InvTransform(coeffs, src)
}
