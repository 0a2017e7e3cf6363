/*
NAME
  packet.go

DESCRIPTION
  packet.go defines the demuxed packet type: a stream reference, a
  timestamp triple in the stream's time base, a keyframe flag, and the
  packet's exclusively-owned payload bytes.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

// Packet binds one demuxed payload to its stream and timing.
type Packet struct {
	StreamID  uint32
	PTS       *int64 // nil when not present
	DTS       *int64
	Duration  *int64
	Keyframe  bool
	Data      []byte
}
