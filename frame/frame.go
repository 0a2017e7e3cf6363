/*
NAME
  frame.go

DESCRIPTION
  frame.go defines the decoded frame type that a decoder hands back to its
  caller: a buffer (video or audio), timing copied from the originating
  packet, a frame type, and a keyframe flag.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

// FrameType classifies how a decoded frame was predicted.
type FrameType int

const (
	TypeI FrameType = iota
	TypeP
	TypeB
	TypeSkip
)

func (t FrameType) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeP:
		return "P"
	case TypeB:
		return "B"
	case TypeSkip:
		return "Skip"
	default:
		return "?"
	}
}

// Frame is the unit a NADecoder.Decode call returns: exactly one of Video
// or Audio is non-nil.
type Frame struct {
	Video *VideoBuffer
	Audio *AudioBuffer

	PTS      *int64
	DTS      *int64
	Duration *int64

	Type     FrameType
	Keyframe bool
}

// Release drops the frame's hold on its buffer.
func (f *Frame) Release() {
	if f.Video != nil {
		f.Video.Release()
	}
	if f.Audio != nil {
		f.Audio.Release()
	}
}
