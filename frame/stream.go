/*
NAME
  stream.go

DESCRIPTION
  stream.go defines streams, time bases, and the codec-info record that
  describes a stream's registered decoder and type-specific parameters.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import "github.com/ausocean/nihav/format"

// StreamType classifies a Stream's payload.
type StreamType int

const (
	Video StreamType = iota
	Audio
	Subtitles
	Data
)

// TimeBase is a rational time unit; a timestamp expressed in this base is
// ts * Num / Den seconds.
type TimeBase struct {
	Num, Den uint32
}

// VideoInfo carries the type-specific parameters of a video stream.
type VideoInfo struct {
	Width, Height int
	Flipped       bool
	Format        format.Formaton
}

// AudioInfo carries the type-specific parameters of an audio stream.
type AudioInfo struct {
	SampleRate  uint32
	Channels    format.ChannelMap
	Soniton     format.Soniton
	BlockLength int
}

// CodecInfo binds a registered decoder short name to its type-specific
// parameters and any container-supplied extradata (e.g. a VOL header, a
// Bink Audio band-quant seed).
type CodecInfo struct {
	Name      string
	Video     *VideoInfo
	Audio     *AudioInfo
	ExtraData []byte
}

// Stream describes one elementary stream within a container.
type Stream struct {
	Type     StreamType
	ID       uint32
	Codec    CodecInfo
	TimeBase TimeBase
}
