/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the Bink Audio nihav.NADecoder: each sub-frame
  carries two seed coefficients, a per-band quantisation index, and a
  sequence of variable-width coefficient runs; after band-scale
  dequantisation an inverse DCT or RDFT reconstructs the time domain, and
  the previous sub-frame's saved tail is linearly cross-faded into the new
  one's head before the rest is copied out.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package binkaudio implements the Bink Audio nihav.NADecoder, in both its
// DCT and RDFT transform variants.
package binkaudio

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// Decoder implements nihav.NADecoder for Bink Audio. UseDCT selects the
// DCT-III transform variant (per-channel); when false the RDFT variant is
// used (stereo interleaved into a single coefficient buffer).
type Decoder struct {
	UseDCT bool

	channels format.ChannelMap
	versionB bool

	frameLen int
	duration int
	single   bool // RDFT + stereo: both channels coded into one coefficient buffer

	numBands int
	bands    [maxBands + 1]int
	scale    float64

	dct  *dctTransform
	rdft *rdftTransform

	coeffs     []float64
	delay      [2][]float64
	firstFrame bool
}

var _ nihav.NADecoder = (*Decoder)(nil)

func (d *Decoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	if info.Audio == nil {
		return errors.Wrap(nihav.ErrInvalidData, "binkaudio: audio stream requires AudioInfo")
	}
	a := info.Audio
	nch := len(a.Channels)
	if nch == 0 {
		nch = 1
	}
	if nch > 2 {
		return errors.Wrap(nihav.ErrInvalidData, "binkaudio: at most 2 channels supported")
	}
	d.channels = a.Channels
	d.versionB = string(info.ExtraData) == "BIKb"

	srate := a.SampleRate
	frameBits := 9
	if srate >= 44100 {
		frameBits = 11
	} else if srate >= 22050 {
		frameBits = 10
	}
	if !d.UseDCT && !d.versionB {
		frameBits++
	}
	d.frameLen = 1 << uint(frameBits)
	d.duration = d.frameLen - (d.frameLen >> 4)
	d.single = !d.UseDCT && nch == 2
	if d.single {
		d.duration >>= 1
	}

	if d.UseDCT {
		d.dct = newDCTTransform(d.frameLen)
	} else {
		d.rdft = newRDFTTransform(d.frameLen)
	}

	if !d.UseDCT {
		d.scale = 1.0 / (32768.0 * math.Sqrt(float64(d.frameLen)))
	} else {
		d.scale = math.Sqrt(2.0/float64(d.frameLen)) / 1024.0
	}

	sSRate := int(srate)
	if !d.single {
		sSRate >>= 1
	}
	d.numBands = 1
	for d.numBands < maxBands && criticalFreqs[d.numBands-1] < sSRate {
		d.numBands++
	}
	d.bands[0] = 2
	for i := 1; i < d.numBands; i++ {
		d.bands[i] = (criticalFreqs[i-1] * d.frameLen / sSRate) &^ 1
	}
	d.bands[d.numBands] = d.frameLen

	d.coeffs = make([]float64, d.frameLen)
	delayLen := d.frameLen >> 4
	d.delay[0] = make([]float64, delayLen)
	d.delay[1] = make([]float64, delayLen)
	d.firstFrame = true
	return nil
}

func (d *Decoder) Flush() {
	d.firstFrame = true
	for ch := range d.delay {
		for i := range d.delay[ch] {
			d.delay[ch][i] = 0
		}
	}
}

func readBinkFloat(br *ioutil.BitReader) (float64, error) {
	exp, err := br.Read(5)
	if err != nil {
		return 0, err
	}
	mant, err := br.Read(23)
	if err != nil {
		return 0, err
	}
	sign, err := br.Read(1)
	if err != nil {
		return 0, err
	}
	nexp := (uint32(exp) + 0x7E) & 0xFF
	nmant := (uint32(mant) << 1) & ((1 << 23) - 1)
	bits := uint32(sign)<<31 | nexp<<23 | nmant
	return float64(math.Float32frombits(bits)), nil
}

// decodeBlock fills d.coeffs with one sub-frame's dequantised coefficients.
func (d *Decoder) decodeBlock(br *ioutil.BitReader) error {
	for i := range d.coeffs {
		d.coeffs[i] = 0
	}

	if d.versionB {
		b0, err := br.Read(32)
		if err != nil {
			return err
		}
		b1, err := br.Read(32)
		if err != nil {
			return err
		}
		d.coeffs[0] = float64(math.Float32frombits(uint32(b0))) * d.scale
		d.coeffs[1] = float64(math.Float32frombits(uint32(b1))) * d.scale
	} else {
		v0, err := readBinkFloat(br)
		if err != nil {
			return err
		}
		v1, err := readBinkFloat(br)
		if err != nil {
			return err
		}
		d.coeffs[0] = v0 * d.scale
		d.coeffs[1] = v1 * d.scale
	}

	var bandQuants [maxBands]float64
	for i := 0; i < d.numBands; i++ {
		idx, err := br.Read(8)
		if err != nil {
			return err
		}
		if int(idx) >= len(quantTable) {
			idx = uint64(len(quantTable) - 1)
		}
		bandQuants[i] = quantTable[idx] * d.scale
	}

	idx := 2
	bandIdx := 0
	for idx < d.frameLen {
		width := 8
		if d.versionB {
			width = 16
		} else {
			long, err := br.ReadBool()
			if err != nil {
				return err
			}
			if long {
				ri, err := br.Read(4)
				if err != nil {
					return err
				}
				width = runTab[ri] * 8
			}
		}
		end := idx + width
		if end > d.frameLen {
			end = d.frameLen
		}
		bits, err := br.Read(4)
		if err != nil {
			return err
		}
		if bits != 0 {
			for i := idx; i < end; i++ {
				for d.bands[bandIdx] <= i {
					bandIdx++
				}
				q := bandQuants[bandIdx-1]
				coeff, err := br.Read(int(bits))
				if err != nil {
					return err
				}
				if coeff != 0 {
					neg, err := br.ReadBool()
					if err != nil {
						return err
					}
					v := float64(coeff) * q
					if neg {
						v = -v
					}
					d.coeffs[i] = v
				}
			}
		}
		idx = end
	}
	return nil
}

// overlap linearly cross-fades a's len samples into dst, weighted toward b
// as i approaches len; b is strided by step (2 for RDFT's interleaved
// layout, 1 otherwise).
func overlap(a, b, dst []float64, length, step int) {
	for i := 0; i < length; i++ {
		dst[i] = (a[i]*float64(length-i) + b[i*step]*float64(i)) / float64(length)
	}
}

// output inverse-transforms d.coeffs and overlap-adds it into plane (at
// sample offset sampOff), saving the new tail into d.delay. chno selects
// which channel's delay/output the single-channel (DCT, or mono RDFT) path
// uses; the stereo RDFT path always reconstructs and writes both channels
// from the one shared coefficient buffer it was given.
func (d *Decoder) output(planes [2][]float64, sampOff [2]int, chno int) {
	if d.UseDCT {
		d.dct.inverse(d.coeffs)
	} else {
		d.rdft.inverse(d.coeffs)
	}

	if d.UseDCT || len(d.channels) <= 1 {
		overlapLen := 0
		if !d.firstFrame {
			overlapLen = d.frameLen >> 4
		}
		out := planes[chno][sampOff[chno]:]
		overlap(d.delay[chno], d.coeffs, out, overlapLen, 1)
		copy(out[overlapLen:d.duration], d.coeffs[overlapLen:d.duration])
		for i := 0; i < d.frameLen>>4; i++ {
			d.delay[chno][i] = d.coeffs[d.duration+i]
		}
		return
	}

	// RDFT + stereo: a single coefficient buffer interleaves both channels
	// in reverse pairwise order; unshuffle it before cross-fading each
	// channel out of its own delay line.
	for i := 0; i < d.frameLen>>2; i++ {
		j := d.frameLen - 2 - i*2
		k := d.frameLen - 1 - i*2
		t0, t1 := d.coeffs[j], d.coeffs[k]
		d.coeffs[j] = d.coeffs[i*2]
		d.coeffs[k] = d.coeffs[i*2+1]
		d.coeffs[i*2] = t0
		d.coeffs[i*2+1] = t1
	}

	overlapLen := 0
	if !d.firstFrame {
		overlapLen = d.frameLen >> 8
	}
	out0 := planes[0][sampOff[0]:]
	out1 := planes[1][sampOff[1]:]
	overlap(d.delay[0], d.coeffs, out0, overlapLen, 2)
	overlap(d.delay[1], d.coeffs[1:], out1, overlapLen, 2)
	for i := overlapLen; i < d.duration; i++ {
		out0[i] = d.coeffs[i*2+0]
		out1[i] = d.coeffs[i*2+1]
	}
	for i := 0; i < d.frameLen>>8; i++ {
		d.delay[0][i] = d.coeffs[d.duration*2+i*2+0]
		d.delay[1][i] = d.coeffs[d.duration*2+i*2+1]
	}
}

func writeF32LE(plane []byte, sampleOff int, v float64) {
	bits := math.Float32bits(float32(v))
	plane[sampleOff*4+0] = byte(bits)
	plane[sampleOff*4+1] = byte(bits >> 8)
	plane[sampleOff*4+2] = byte(bits >> 16)
	plane[sampleOff*4+3] = byte(bits >> 24)
}

func (d *Decoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	if len(pkt.Data) < 5 {
		return nil, nihav.ErrShortData
	}
	br := ioutil.NewBitReader(pkt.Data, ioutil.LSB)
	nsamplesU, err := br.Read(32)
	if err != nil {
		return nil, err
	}
	nsamples := int(nsamplesU)

	nch := len(d.channels)
	if nch == 0 {
		nch = 1
	}
	if d.duration == 0 || nch == 0 {
		return nil, errors.Wrap(nihav.ErrInvalidData, "binkaudio: decoder not initialised")
	}
	samplesPerChannel := nsamples / nch / 2
	numSubframes := nsamples / d.duration / nch / 2

	abuf := frame.AllocAudioBuffer(format.Soniton{Bits: 32, Signed: true, Float: true, Planar: true}, d.channels, samplesPerChannel)

	var f64planes [2][]float64
	bytePlanes := [2][]byte{}
	for ch := 0; ch < nch; ch++ {
		bytePlanes[ch] = abuf.Plane(ch)
		f64planes[ch] = make([]float64, samplesPerChannel)
	}

	sampOff := [2]int{0, 0}
	for sf := 0; sf < numSubframes; sf++ {
		if d.UseDCT {
			if err := br.Skip(2); err != nil {
				return nil, err
			}
		}
		if err := d.decodeBlock(br); err != nil {
			return nil, err
		}
		d.output(f64planes, sampOff, 0)
		if nch > 1 && d.UseDCT {
			if err := d.decodeBlock(br); err != nil {
				return nil, err
			}
			d.output(f64planes, sampOff, 1)
		}
		d.firstFrame = false

		if left := br.Left() & 31; left != 0 {
			if err := br.Skip(left); err != nil {
				return nil, err
			}
		}
		sampOff[0] += d.duration
		sampOff[1] += d.duration
	}

	for ch := 0; ch < nch; ch++ {
		for i, v := range f64planes[ch] {
			writeF32LE(bytePlanes[ch], i, v)
		}
	}

	dur := int64(samplesPerChannel)
	return &frame.Frame{
		Audio: abuf,
		PTS:   pkt.PTS, DTS: pkt.DTS,
		Duration: &dur,
		Type:     frame.TypeI,
		Keyframe: false,
	}, nil
}
