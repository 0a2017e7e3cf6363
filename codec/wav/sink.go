/*
NAME
  sink.go

DESCRIPTION
  sink.go bridges a decoded frame.AudioBuffer to a standard WAV stream via
  go-audio/wav, the equivalent of a standalone pcmdump-style tool but fed
  directly from the pipeline's decoded audio rather than a raw PCM file.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ausocean/nihav/frame"
)

// WriteDecodedAudio validates buf's format against this package's metadata
// constraints, then encodes it as a standard WAV stream to ws. buf must be
// an interleaved, non-float, 8/16/32-bit signed audio buffer (the format
// frame.AudioBuffer.ToIntBuffer accepts); ws is typically an *os.File.
func WriteDecodedAudio(ws io.WriteSeeker, buf *frame.AudioBuffer, sampleRate int) error {
	nch := len(buf.Channels())
	if nch == 0 {
		nch = 1
	}
	bitDepth := int(buf.Soniton().Bits)

	if nch == 0 {
		return errInvalidChannels
	}
	if sampleRate == 0 {
		return errInvalidRate
	}
	if bitDepth == 0 {
		return errInvalidBitDepth
	}

	ib, err := buf.ToIntBuffer(sampleRate)
	if err != nil {
		return err
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, nch, PCMFormat)
	if err := enc.Write(ib); err != nil {
		return err
	}
	return enc.Close()
}
