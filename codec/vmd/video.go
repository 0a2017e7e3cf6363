/*
NAME
  video.go

DESCRIPTION
  video.go implements the VMD video nihav.NADecoder: a palette-indexed
  codec whose frames rewrite only an axis-aligned sub-rectangle of the
  previous frame. The rectangle's rows are each encoded as raw pixels, a
  masked run of copy/replace segments, or a masked run whose replace
  segments may additionally escape to an RLE-compressed run, and the
  whole rectangle's data may optionally be wrapped in a single LZ77
  unpack stage first.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vmd implements the VMD video and audio nihav.NADecoder pair.
package vmd

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// vmdLZMarker is the little-endian u32 that, when it immediately follows an
// LZ-packed frame's declared size, selects the 12-bit/4-bit window that
// Sierra's later VMD encoder used instead of the classic LZSS 0xFEE start.
const vmdLZMarker = 0x56781234

// VideoDecoder implements nihav.NADecoder for VMD's palette-indexed video
// stream.
type VideoDecoder struct {
	shuffler      frame.Shuffler
	haveLast      bool
	width, height int
	pal           [768]byte // 256 expanded 8-bit RGB triples
	lzBuf         []byte
}

var _ nihav.NADecoder = (*VideoDecoder)(nil)

func (d *VideoDecoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	if info.Video == nil {
		return errors.Wrap(nihav.ErrInvalidData, "vmd: video stream requires VideoInfo")
	}
	d.width, d.height = info.Video.Width, info.Video.Height
	if len(info.ExtraData) != 0x330 {
		return errors.Wrap(nihav.ErrInvalidData, "vmd: video extradata must be 0x330 bytes")
	}
	edata := info.ExtraData
	unpSize := int(edata[800]) | int(edata[801])<<8 | int(edata[802])<<16 | int(edata[803])<<24
	if unpSize < 0 || unpSize > d.width*d.height*3+64 {
		return errors.Wrap(nihav.ErrInvalidData, "vmd: implausible LZ unpack size")
	}
	d.lzBuf = make([]byte, unpSize)
	for i := 0; i < 768; i++ {
		el := edata[28+i]
		d.pal[i] = (el << 2) | (el >> 4)
	}
	d.shuffler = frame.Shuffler{}
	d.haveLast = false
	return nil
}

func (d *VideoDecoder) Flush() {
	d.shuffler.Clear()
	d.haveLast = false
}

// writePalette expands the decoder's current 256-entry RGB palette into a
// buffer's RGBA palette slot, opaque throughout.
func writePalette(buf *frame.VideoBuffer, pal *[768]byte) {
	p := buf.Palette()
	for i := 0; i < 256; i++ {
		p[i*4+0] = pal[i*3+0]
		p[i*4+1] = pal[i*3+1]
		p[i*4+2] = pal[i*3+2]
		p[i*4+3] = 0xFF
	}
}

func (d *VideoDecoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	if len(pkt.Data) < 10 {
		return nil, nihav.ErrShortData
	}
	br := ioutil.NewMemReader(pkt.Data)

	frameX, err := br.ReadU16(ioutil.LittleEndian)
	if err != nil {
		return nil, err
	}
	frameY, err := br.ReadU16(ioutil.LittleEndian)
	if err != nil {
		return nil, err
	}
	frameL, err := br.ReadU16(ioutil.LittleEndian)
	if err != nil {
		return nil, err
	}
	frameD, err := br.ReadU16(ioutil.LittleEndian)
	if err != nil {
		return nil, err
	}
	if err := br.Skip(1); err != nil {
		return nil, err
	}
	flags, err := br.ReadU8()
	if err != nil {
		return nil, err
	}
	hasPal := flags&0x02 != 0

	if int(frameL) < int(frameX) || int(frameD) < int(frameY) {
		return nil, nihav.ErrInvalidData
	}
	if int(frameL) >= d.width || int(frameD) >= d.height {
		return nil, nihav.ErrInvalidData
	}

	if hasPal {
		if err := br.Skip(2); err != nil {
			return nil, err
		}
		for i := 0; i < 768; i++ {
			v, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			d.pal[i] = (v << 2) | (v >> 4)
		}
	}

	var buf *frame.VideoBuffer
	if last := d.shuffler.GetLast(); last != nil {
		cow, err := support.Pool.GetOrCopy(last)
		last.Release()
		if err != nil {
			return nil, err
		}
		buf = cow
	} else {
		buf, err = support.Pool.Get()
		if err != nil {
			return nil, err
		}
	}
	writePalette(buf, &d.pal)

	if br.Left() == 0 {
		// palette-only update; the image itself is unchanged.
		d.shuffler.AddFrame(buf)
		d.haveLast = true
		return &frame.Frame{
			Video: buf,
			PTS:   pkt.PTS, DTS: pkt.DTS, Duration: pkt.Duration,
			Type: frame.TypeP,
		}, nil
	}

	w := int(frameL) + 1 - int(frameX)
	h := int(frameD) + 1 - int(frameY)

	method, err := br.ReadU8()
	if err != nil {
		buf.Release()
		return nil, err
	}

	var fullUpdate bool
	if method&0x80 != 0 {
		if len(d.lzBuf) == 0 {
			buf.Release()
			return nil, errors.Wrap(nihav.ErrInvalidData, "vmd: LZ-packed frame with no unpack buffer")
		}
		if err := lzUnpack(br, d.lzBuf); err != nil {
			buf.Release()
			return nil, err
		}
		inner := ioutil.NewMemReader(d.lzBuf)
		fullUpdate, err = decodeFrameData(inner, buf, int(frameX), int(frameY), w, h, method&0x7F)
	} else {
		fullUpdate, err = decodeFrameData(br, buf, int(frameX), int(frameY), w, h, method&0x7F)
	}
	if err != nil {
		buf.Release()
		return nil, err
	}

	keyframe := fullUpdate && frameX == 0 && frameY == 0 && w == d.width && h == d.height

	d.shuffler.AddFrame(buf)
	d.haveLast = true

	ftype := frame.TypeP
	if keyframe {
		ftype = frame.TypeI
	}
	return &frame.Frame{
		Video: buf,
		PTS:   pkt.PTS, DTS: pkt.DTS, Duration: pkt.Duration,
		Type:     ftype,
		Keyframe: keyframe,
	}, nil
}

// lzUnpack inflates an LZ77-compressed frame payload into dst, using a
// 4096-byte sliding window seeded with spaces (0x20), matching the Sierra
// VMD LZ variant's two window/escape-length presets.
func lzUnpack(br *ioutil.ByteReader, dst []byte) error {
	var window [0x1000]byte
	for i := range window {
		window[i] = 0x20
	}

	dstSize, err := br.ReadU32(ioutil.LittleEndian)
	if err != nil {
		return err
	}
	if int(dstSize) > len(dst) {
		return nihav.ErrInvalidData
	}

	var pos, escLen int
	if marker, err := br.PeekU32(ioutil.LittleEndian); err == nil && marker == vmdLZMarker {
		if err := br.Skip(4); err != nil {
			return err
		}
		pos, escLen = 0x111, 15
	} else {
		pos, escLen = 0xFEE, 255
	}

	opos := 0
	readLit := func() error {
		if opos >= int(dstSize) {
			return nihav.ErrInvalidData
		}
		b, err := br.ReadU8()
		if err != nil {
			return err
		}
		dst[opos] = b
		opos++
		window[pos] = b
		pos = (pos + 1) & 0xFFF
		return nil
	}
	readCopy := func(off *int) error {
		if opos >= int(dstSize) {
			return nihav.ErrInvalidData
		}
		b := window[*off]
		dst[opos] = b
		opos++
		window[pos] = b
		pos = (pos + 1) & 0xFFF
		*off = (*off + 1) & 0xFFF
		return nil
	}

	for br.Left() > 0 && opos < int(dstSize) {
		op, err := br.ReadU8()
		if err != nil {
			return err
		}
		if op == 0xFF && br.Left() > 8 {
			for i := 0; i < 8; i++ {
				if err := readLit(); err != nil {
					return err
				}
			}
			continue
		}
		for i := 0; i < 8; i++ {
			if opos == int(dstSize) {
				break
			}
			if (op>>uint(i))&1 != 0 {
				if err := readLit(); err != nil {
					return err
				}
				continue
			}
			b0, err := br.ReadU8()
			if err != nil {
				return err
			}
			b1, err := br.ReadU8()
			if err != nil {
				return err
			}
			off := int(b0) | (int(b1&0xF0) << 4)
			length := int(b1 & 0xF)
			if length == escLen {
				extra, err := br.ReadU8()
				if err != nil {
					return err
				}
				length = int(extra) + escLen
			}
			for j := 0; j < length+3; j++ {
				if err := readCopy(&off); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// decodeFrameData fills the w x h rectangle at (frameX,frameY) of buf's
// luma/index plane from br, per method: 1 is a masked run of literal
// segments over the existing pixels, 2 is a full raw replace, 3 is a
// masked run whose replace segments may additionally be RLE-compressed.
// It reports whether the rectangle was entirely overwritten (only method 2
// guarantees this).
func decodeFrameData(br *ioutil.ByteReader, buf *frame.VideoBuffer, frameX, frameY, w, h int, method byte) (bool, error) {
	plane := buf.Plane(0)
	stride := buf.Stride(0)
	dpos := frameY*stride + frameX

	switch method {
	case 1:
		for row := 0; row < h; row++ {
			x := 0
			for x < w {
				val, err := br.ReadU8()
				if err != nil {
					return false, err
				}
				length := int(val&0x7F) + 1
				if x+length > w {
					return false, nihav.ErrInvalidData
				}
				if val&0x80 != 0 {
					pix, err := br.ReadBytes(length)
					if err != nil {
						return false, err
					}
					copy(plane[dpos+x:dpos+x+length], pix)
				}
				x += length
			}
			dpos += stride
		}
		return false, nil
	case 2:
		for row := 0; row < h; row++ {
			pix, err := br.ReadBytes(w)
			if err != nil {
				return false, err
			}
			copy(plane[dpos:dpos+w], pix)
			dpos += stride
		}
		return true, nil
	case 3:
		for row := 0; row < h; row++ {
			x := 0
			for x < w {
				val, err := br.ReadU8()
				if err != nil {
					return false, err
				}
				length := int(val&0x7F) + 1
				if x+length > w {
					return false, nihav.ErrInvalidData
				}
				if val&0x80 != 0 {
					peek, err := br.PeekBytes(1)
					if err != nil {
						return false, err
					}
					if peek[0] == 0xFF {
						if err := br.Skip(1); err != nil {
							return false, err
						}
						if err := rleUnpack(br, length, plane[dpos+x:dpos+x+length]); err != nil {
							return false, err
						}
					} else {
						pix, err := br.ReadBytes(length)
						if err != nil {
							return false, err
						}
						copy(plane[dpos+x:dpos+x+length], pix)
					}
				}
				x += length
			}
			dpos += stride
		}
		return false, nil
	default:
		return false, nihav.ErrInvalidData
	}
}

// rleUnpack fills dst (length bytes of plane data) from a run-length
// stream consuming exactly length source bytes: each run is either a
// literal copy or a single repeated byte, both 2*N bytes long.
func rleUnpack(br *ioutil.ByteReader, length int, dst []byte) error {
	end := br.Tell() + length
	dpos := 0
	if length&1 != 0 {
		b, err := br.ReadU8()
		if err != nil {
			return err
		}
		dst[dpos] = b
		dpos++
	}
	for dpos < len(dst) && br.Tell() < end {
		val, err := br.ReadU8()
		if err != nil {
			return err
		}
		runLen := int(val&0x7F) * 2
		if dpos+runLen > len(dst) {
			return nihav.ErrInvalidData
		}
		if val&0x80 != 0 {
			b, err := br.ReadBytes(runLen)
			if err != nil {
				return err
			}
			copy(dst[dpos:dpos+runLen], b)
		} else {
			v, err := br.ReadU8()
			if err != nil {
				return err
			}
			for i := 0; i < runLen; i++ {
				dst[dpos+i] = v
			}
		}
		dpos += runLen
	}
	return nil
}
