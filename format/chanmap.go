/*
NAME
  chanmap.go

DESCRIPTION
  chanmap.go describes the ordered channel layout of an audio buffer, and
  converts a WAVE-style channel bitmask into that ordering.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package format

// Channel identifies one channel's role within a ChannelMap.
type Channel int

const (
	ChanC Channel = iota
	ChanL
	ChanR
	ChanCs
	ChanLs
	ChanRs
	ChanLss
	ChanRss
	ChanLFE
	ChanLc
	ChanRc
	ChanLh
	ChanRh
	ChanCh
	ChanLFE2
	ChanLw
	ChanRw
	ChanOv
	ChanLhs
	ChanRhs
	ChanChs
	ChanLl
	ChanRl
	ChanCl
	ChanLt
	ChanRt
	ChanLo
	ChanRo
)

var channelNames = map[Channel]string{
	ChanC: "C", ChanL: "L", ChanR: "R", ChanCs: "Cs", ChanLs: "Ls", ChanRs: "Rs",
	ChanLss: "Lss", ChanRss: "Rss", ChanLFE: "LFE", ChanLc: "Lc", ChanRc: "Rc",
	ChanLh: "Lh", ChanRh: "Rh", ChanCh: "Ch", ChanLFE2: "LFE2", ChanLw: "Lw",
	ChanRw: "Rw", ChanOv: "Ov", ChanLhs: "Lhs", ChanRhs: "Rhs", ChanChs: "Chs",
	ChanLl: "Ll", ChanRl: "Rl", ChanCl: "Cl", ChanLt: "Lt", ChanRt: "Rt",
	ChanLo: "Lo", ChanRo: "Ro",
}

// String returns the channel's short tag, e.g. "LFE".
func (c Channel) String() string {
	if s, ok := channelNames[c]; ok {
		return s
	}
	return "?"
}

// ChannelMap is an ordered sequence of channel roles describing the layout
// of an interleaved or planar audio buffer.
type ChannelMap []Channel

// NumChannels returns the number of channels in the map.
func (m ChannelMap) NumChannels() int { return len(m) }

// waveBitOrder is the fixed WAVE channel-mask bit-to-channel mapping used by
// ChannelMapFromMask, in bitmask bit order (bit 0 first).
var waveBitOrder = []Channel{
	ChanL, ChanR, ChanC, ChanLFE, ChanLs, ChanRs, ChanLss, ChanRss, ChanCs,
	ChanLc, ChanRc,
}

// ChannelMapFromMask converts a WAVE-style channel bitmask into the ordered
// channel sequence L,R,C,LFE,Ls,Rs,Lss,Rss,Cs,Lc,Rc, including only the
// channels whose bit is set, in that fixed relative order.
func ChannelMapFromMask(mask uint32) ChannelMap {
	var m ChannelMap
	for i, ch := range waveBitOrder {
		if mask&(1<<uint(i)) != 0 {
			m = append(m, ch)
		}
	}
	return m
}
