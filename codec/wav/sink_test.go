/*
NAME
  sink_test.go

DESCRIPTION
  sink_test.go checks WriteDecodedAudio's format validation and that a
  valid buffer produces a non-empty RIFF/WAVE stream.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"errors"
	"io"
	"testing"

	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
)

// memWriteSeeker is an in-memory io.WriteSeeker, the same shape exp/flac's
// decoder uses to buffer an encoded WAV stream without a real file.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (w *memWriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + len(p)
	if end > len(w.buf) {
		grown := make([]byte, end)
		copy(grown, w.buf)
		w.buf = grown
	}
	copy(w.buf[w.pos:end], p)
	w.pos = end
	return len(p), nil
}

func (w *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case io.SeekStart:
		newPos = int(offset)
	case io.SeekCurrent:
		newPos = w.pos + int(offset)
	case io.SeekEnd:
		newPos = len(w.buf) + int(offset)
	}
	if newPos < 0 {
		return 0, errors.New("negative result pos")
	}
	w.pos = newPos
	return int64(newPos), nil
}

func TestWriteDecodedAudioProducesRIFFHeader(t *testing.T) {
	soniton := format.Soniton{Bits: 16, Signed: true}
	buf := frame.AllocAudioBuffer(soniton, format.ChannelMap{format.ChanC}, 4)
	data := buf.Data()
	for i := range data {
		data[i] = 0
	}

	ws := &memWriteSeeker{}
	if err := WriteDecodedAudio(ws, buf, 48000); err != nil {
		t.Fatalf("WriteDecodedAudio() = %v", err)
	}

	if len(ws.buf) < 44 {
		t.Fatalf("output length %d; want at least a 44-byte header", len(ws.buf))
	}
	if string(ws.buf[0:4]) != "RIFF" {
		t.Errorf("output does not start with RIFF: %q", ws.buf[0:4])
	}
	if string(ws.buf[8:12]) != "WAVE" {
		t.Errorf("output missing WAVE marker: %q", ws.buf[8:12])
	}
}

func TestWriteDecodedAudioRejectsZeroSampleRate(t *testing.T) {
	soniton := format.Soniton{Bits: 16, Signed: true}
	buf := frame.AllocAudioBuffer(soniton, format.ChannelMap{format.ChanC}, 4)

	ws := &memWriteSeeker{}
	err := WriteDecodedAudio(ws, buf, 0)
	if err != errInvalidRate {
		t.Fatalf("WriteDecodedAudio() error = %v; want errInvalidRate", err)
	}
}
