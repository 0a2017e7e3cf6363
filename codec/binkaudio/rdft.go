/*
NAME
  rdft.go

DESCRIPTION
  rdft.go wraps a real-input/real-output inverse DFT for Bink Audio's
  "RDFT" transform variant, built from a general complex FFT by packing the
  coefficient array in the standard conjugate-symmetric half-spectrum
  layout: coeffs[0] is the DC term, coeffs[1] the Nyquist term, and
  coeffs[2i], coeffs[2i+1] the real/imaginary parts of bin i.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package binkaudio

import "github.com/mjibson/go-dsp/fft"

// rdftTransform reconstructs n real time-domain samples from an n-length
// half-spectrum coefficient array via a full-length complex inverse FFT,
// discarding the (zero) imaginary residue the conjugate symmetry leaves
// behind. This trades the teacher's split-radix real-FFT kernel for a
// general complex one, at the cost of doing 2x the arithmetic a true RDFT
// would.
type rdftTransform struct {
	n int
}

func newRDFTTransform(n int) *rdftTransform {
	return &rdftTransform{n: n}
}

// inverse replaces coeffs (length n, half-spectrum packed) with its inverse
// transform's real output, in place.
func (r *rdftTransform) inverse(coeffs []float64) {
	n := r.n
	half := n / 2

	full := make([]complex128, n)
	full[0] = complex(coeffs[0], 0)
	if half < n {
		full[half] = complex(coeffs[1], 0)
	}
	for i := 1; i < half; i++ {
		re, im := coeffs[2*i], coeffs[2*i+1]
		full[i] = complex(re, im)
		full[n-i] = complex(re, -im)
	}

	out := fft.IFFT(full)
	for i := 0; i < n; i++ {
		coeffs[i] = real(out[i]) * float64(n)
	}
}
