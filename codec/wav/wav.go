/*
NAME
  wav.go

DESCRIPTION
  wav.go holds the PCM format constant and format-validation errors shared
  by this package; the actual WAV encoding lives in sink.go, built on
  go-audio/wav.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved. 

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package wav provides functions for converting wav audio.
package wav

import "fmt"

const PCMFormat = 1 // PCMFormat defines the value for pcm audio as defined by the wav std.

// errInvalidRate, errInvalidChannels and errInvalidBitDepth are the format
// checks WriteDecodedAudio (sink.go) runs before handing a buffer to
// go-audio/wav's encoder, which panics rather than erroring on a zero
// field.
var (
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("invalid or no bit depth defined")
)
