/*
NAME
  decoder.go

DESCRIPTION
  decoder.go declares the NADecoder trait every codec package implements,
  and the support object (buffer pool, logger) a decoder receives in Init
  and Decode.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package nihav

import (
	"github.com/ausocean/nihav/frame"
)

// Logger is the structured logging interface decoders and the dispatch
// pipeline accept for non-fatal diagnostics, matching
// github.com/ausocean/utils/logging.Logger so callers can pass the same
// logger they already use elsewhere in an AusOcean pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// nopLogger discards everything; used as the default when no Logger is
// supplied so decoders never need a nil check.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}

// NADecoderSupport bundles the resources a decoder needs beyond its own
// state: a buffer pool to allocate from, and a logger for diagnostics. A
// decoder's own shuffler is owned by the decoder itself (spec.md §5: "a
// decoder owns its state").
type NADecoderSupport struct {
	Pool   *frame.VideoBufferPool
	APool  *frame.VideoBufferPool // unused placeholder kept for symmetry; audio buffers are not pooled
	Logger Logger
}

// NewSupport returns a NADecoderSupport with a nop logger, for callers that
// don't need diagnostics.
func NewSupport(pool *frame.VideoBufferPool) NADecoderSupport {
	return NADecoderSupport{Pool: pool, Logger: nopLogger{}}
}

// NADecoder is the trait implemented by codec/h263, codec/cinepak,
// codec/vmd, codec/indeo2 and codec/binkaudio.
type NADecoder interface {
	// Init prepares the decoder for the given stream's codec info. It must
	// be called before the first Decode.
	Init(support *NADecoderSupport, info frame.CodecInfo) error

	// Decode consumes one packet and returns the frame it produced. A
	// decoder that needs more packets before it can emit a frame may return
	// a nil Frame and a nil error.
	Decode(support *NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error)

	// Flush discards held reference frames (the shuffler), so the next
	// Decode call starts as if freshly initialized.
	Flush()
}
