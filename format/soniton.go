/*
NAME
  soniton.go

DESCRIPTION
  soniton.go describes the audio sample format: bit depth, endianness,
  packing, float/signed flags, and the byte-size arithmetic every audio
  decoder and buffer allocation needs.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package format describes pixel formats (formaton/chromaton), audio sample
// formats (soniton) and channel maps — the typed vocabulary that every
// buffer, packet and decoder in this module is built from.
package format

// Soniton describes the binary layout of one audio sample.
type Soniton struct {
	Bits   uint8 // bits per sample
	BE     bool  // big-endian when true
	Packed bool  // samples are bit-packed rather than byte-aligned
	Planar bool  // channels stored in separate planes rather than interleaved
	Float  bool  // floating point samples
	Signed bool  // signed integer samples
}

// AudioBytes returns the number of bytes needed to store n samples (per
// channel) in this format: packed formats round up to a whole byte for the
// n samples as a single bit-run, unpacked formats round each sample up to a
// whole byte individually.
func (s Soniton) AudioBytes(n int) int {
	if n <= 0 {
		return 0
	}
	if s.Packed {
		return (n*int(s.Bits) + 7) / 8
	}
	return n * ((int(s.Bits) + 7) / 8)
}

// Common soniton presets mirroring the sample formats codec/pcm.SampleFormat
// names as strings; kept here as typed values so codecs can share them by
// value instead of re-declaring bit patterns.
var (
	SNDU8    = Soniton{Bits: 8, Signed: false}
	SNDS16   = Soniton{Bits: 16, Signed: true}
	SNDS16BE = Soniton{Bits: 16, Signed: true, BE: true}
	SNDS32   = Soniton{Bits: 32, Signed: true}
	SNDF32   = Soniton{Bits: 32, Signed: true, Float: true}
)
