/*
NAME
  audio.go

DESCRIPTION
  audio.go implements the VMD audio nihav.NADecoder: fixed-size blocks
  that are either silent, a raw 8-bit PCM copy, or (for 16-bit streams) a
  per-block predictor seeded by an explicit sample and advanced by a
  step-table delta per following sample, with optional per-block silence
  signalled by a bitmask.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vmd

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// solAudSteps16 is the step table VMD's 16-bit predictor indexes by the
// low 7 bits of each delta byte, the sign bit selecting add or subtract.
var solAudSteps16 = [128]int16{
	0x00, 0x08, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60,
	0x70, 0x80, 0x90, 0xA0, 0xB0, 0xC0, 0xD0, 0xE0,
	0xF0, 0x100, 0x110, 0x120, 0x130, 0x140, 0x150, 0x160,
	0x170, 0x180, 0x190, 0x1A0, 0x1B0, 0x1C0, 0x1D0, 0x1E0,
	0x1F0, 0x200, 0x208, 0x210, 0x218, 0x220, 0x228, 0x230,
	0x238, 0x240, 0x248, 0x250, 0x258, 0x260, 0x268, 0x270,
	0x278, 0x280, 0x288, 0x290, 0x298, 0x2A0, 0x2A8, 0x2B0,
	0x2B8, 0x2C0, 0x2C8, 0x2D0, 0x2D8, 0x2E0, 0x2E8, 0x2F0,
	0x2F8, 0x300, 0x308, 0x310, 0x318, 0x320, 0x328, 0x330,
	0x338, 0x340, 0x348, 0x350, 0x358, 0x360, 0x368, 0x370,
	0x378, 0x380, 0x388, 0x390, 0x398, 0x3A0, 0x3A8, 0x3B0,
	0x3B8, 0x3C0, 0x3C8, 0x3D0, 0x3D8, 0x3E0, 0x3E8, 0x3F0,
	0x3F8, 0x400, 0x440, 0x480, 0x4C0, 0x500, 0x540, 0x580,
	0x5C0, 0x600, 0x640, 0x680, 0x6C0, 0x700, 0x740, 0x780,
	0x7C0, 0x800, 0x900, 0xA00, 0xB00, 0xC00, 0xD00, 0xE00,
	0xF00, 0x1000, 0x1400, 0x1800, 0x1C00, 0x2000, 0x3000, 0x4000,
}

// AudioDecoder implements nihav.NADecoder for VMD's PCM/predictor audio
// stream.
type AudioDecoder struct {
	sampleRate uint32
	channels   format.ChannelMap
	is16Bit    bool
	blkAlign   int // samples per channel per block
	blkSize    int // bytes per block (8-bit: whole block; 16-bit: all channels' seed and delta bytes)
}

var _ nihav.NADecoder = (*AudioDecoder)(nil)

func (d *AudioDecoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	if info.Audio == nil {
		return errors.Wrap(nihav.ErrInvalidData, "vmd: audio stream requires AudioInfo")
	}
	a := info.Audio
	nch := len(a.Channels)
	if nch == 0 {
		nch = 1
	}
	if a.Soniton.Bits == 8 {
		d.is16Bit = false
		d.blkSize = a.BlockLength
		d.blkAlign = a.BlockLength / nch
	} else {
		d.is16Bit = true
		d.blkSize = (a.BlockLength + 1) * nch
		d.blkAlign = a.BlockLength
	}
	d.sampleRate = a.SampleRate
	if nch == 1 {
		d.channels = format.ChannelMap{format.ChanC}
	} else {
		d.channels = format.ChannelMap{format.ChanL, format.ChanR}
	}
	return nil
}

func (d *AudioDecoder) Flush() {}

func (d *AudioDecoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	if len(pkt.Data) < 6 {
		return nil, nihav.ErrShortData
	}
	br := ioutil.NewMemReader(pkt.Data)
	blkType, err := br.ReadU8()
	if err != nil {
		return nil, err
	}
	if err := br.Skip(9); err != nil {
		return nil, err
	}

	var mask uint32
	var nblocks int
	switch blkType {
	case 2: // initial: an explicit per-block silence mask precedes the data
		mask, err = br.ReadU32(ioutil.LittleEndian)
		if err != nil {
			return nil, err
		}
		if d.blkSize == 0 {
			return nil, errors.Wrap(nihav.ErrInvalidData, "vmd: zero block size")
		}
		nblocks = bits.OnesCount32(mask) + (len(pkt.Data)-14)/d.blkSize
	case 3: // silence
		mask, nblocks = 1, 1
	default:
		mask, nblocks = 0, 1
	}

	nch := len(d.channels)
	samples := nblocks * d.blkAlign

	var abuf *frame.AudioBuffer
	if d.is16Bit {
		abuf = frame.AllocAudioBuffer(format.Soniton{Bits: 16, Signed: true, Planar: true}, d.channels, samples)
		if err := d.decode16Bit(abuf, br, nblocks, mask); err != nil {
			return nil, err
		}
	} else {
		abuf = frame.AllocAudioBuffer(format.SNDU8, d.channels, samples)
		if err := d.decode8Bit(abuf, br, nblocks, mask, nch); err != nil {
			return nil, err
		}
	}

	dur := int64(samples)
	return &frame.Frame{
		Audio: abuf,
		PTS:   pkt.PTS, DTS: pkt.DTS,
		Duration: &dur,
		Type:     frame.TypeI,
		Keyframe: true,
	}, nil
}

func writeS16LE(plane []byte, sampleOff int, v int16) {
	plane[sampleOff*2] = byte(uint16(v))
	plane[sampleOff*2+1] = byte(uint16(v) >> 8)
}

// decode16Bit reconstructs nblocks planar 16-bit blocks: a silent block
// (mask bit set) is zero-filled; otherwise an explicit first sample per
// channel seeds a predictor that every following byte nudges by a
// step-table delta, channels alternating for stereo.
func (d *AudioDecoder) decode16Bit(abuf *frame.AudioBuffer, br *ioutil.ByteReader, nblocks int, mask uint32) error {
	nch := len(d.channels)
	planes := make([][]byte, nch)
	for ch := 0; ch < nch; ch++ {
		planes[ch] = abuf.Plane(ch)
	}
	off := make([]int, nch)
	flipCh := 0
	if nch == 2 {
		flipCh = 1
	}

	for b := 0; b < nblocks; b++ {
		if mask&1 != 0 {
			for ch := 0; ch < nch; ch++ {
				for i := 0; i < d.blkAlign; i++ {
					writeS16LE(planes[ch], off[ch]+i, 0)
				}
				off[ch] += d.blkAlign
			}
		} else {
			var pred [2]int32
			for ch := 0; ch < nch; ch++ {
				v, err := br.ReadU16(ioutil.LittleEndian)
				if err != nil {
					return err
				}
				pred[ch] = int32(v)
				writeS16LE(planes[ch], off[ch], int16(pred[ch]))
				off[ch]++
			}
			ch := 0
			for i := nch; i < d.blkAlign*nch; i++ {
				delta, err := br.ReadU8()
				if err != nil {
					return err
				}
				step := int32(solAudSteps16[delta&0x7F])
				if delta&0x80 != 0 {
					pred[ch] -= step
				} else {
					pred[ch] += step
				}
				writeS16LE(planes[ch], off[ch], int16(pred[ch]))
				off[ch]++
				ch ^= flipCh
			}
		}
		mask >>= 1
	}
	if br.Left() != 0 {
		return nihav.ErrInvalidData
	}
	return nil
}

// decode8Bit reconstructs nblocks blocks of raw unsigned 8-bit PCM: a
// silent block is zero-filled; in a stereo block every byte below 128 is
// additionally reflected to 127-v.
func (d *AudioDecoder) decode8Bit(abuf *frame.AudioBuffer, br *ioutil.ByteReader, nblocks int, mask uint32, nch int) error {
	dst := abuf.Data()
	doff := 0
	for b := 0; b < nblocks; b++ {
		if mask&1 != 0 {
			for i := 0; i < d.blkAlign*nch; i++ {
				dst[doff+i] = 0
			}
		} else if nch == 1 {
			for i := 0; i < d.blkSize; i++ {
				v, err := br.ReadU8()
				if err != nil {
					return err
				}
				dst[doff+i] = v
			}
		} else {
			for i := 0; i < d.blkSize; i++ {
				v, err := br.ReadU8()
				if err != nil {
					return err
				}
				if v < 128 {
					dst[doff+i] = 127 - v
				} else {
					dst[doff+i] = v
				}
			}
		}
		doff += d.blkAlign * nch
		mask >>= 1
	}
	return nil
}
