/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the Indeo 2 nihav.NADecoder: a 4:1:0 planar YUV
  codec whose planes are VLC-coded row by row, each symbol either a pair of
  reconstructed pixels or an escape run. Intra frames reconstruct a plane
  top-down, the first row seeded directly from the table and every later
  row added to the row above; inter frames mutate the previous frame's
  planes in place, scaling each delta by 3/4 before applying it.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package indeo2 implements the Indeo 2 nihav.NADecoder.
package indeo2

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// irStart is the byte offset of the VLC bitstream within a packet; the
// bytes before it carry the frame header Decode reads directly.
const irStart = 48

// planeOrder visits luma then chroma, swapped the way the bitstream orders
// its two chroma planes relative to frame.VideoBuffer's plane indices.
var planeOrder = [3]int{0, 2, 1}

// Decoder implements nihav.NADecoder for Indeo 2.
type Decoder struct {
	shuffler      frame.Shuffler
	haveLast      bool
	width, height int
}

var _ nihav.NADecoder = (*Decoder)(nil)

func (d *Decoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	if info.Video == nil {
		return errors.Wrap(nihav.ErrInvalidData, "indeo2: video stream requires VideoInfo")
	}
	d.width, d.height = info.Video.Width, info.Video.Height
	d.shuffler = frame.Shuffler{}
	d.haveLast = false
	return nil
}

func (d *Decoder) Flush() {
	d.shuffler.Clear()
	d.haveLast = false
}

func (d *Decoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	src := pkt.Data
	if len(src) <= irStart {
		return nil, nihav.ErrShortData
	}
	// Despite its look, a nonzero byte here means the frame is INTRA; it
	// is zero for inter frames that must reference the previous one.
	isIntra := src[18] != 0
	tabs := src[34]
	lumaTab := int(tabs & 3)
	chromaTab := int((tabs >> 2) & 3)

	br := ioutil.NewBitReader(src[irStart:], ioutil.LSB)

	var buf *frame.VideoBuffer
	var err error
	if isIntra {
		buf, err = support.Pool.Get()
		if err != nil {
			return nil, err
		}
	} else {
		if !d.haveLast {
			return nil, nihav.ErrMissingReference
		}
		last := d.shuffler.GetLast()
		buf, err = support.Pool.GetOrCopy(last)
		last.Release()
		if err != nil {
			return nil, err
		}
	}

	for _, planeno := range planeOrder {
		tabIdx := chromaTab
		if planeno == 0 {
			tabIdx = lumaTab
		}
		if isIntra {
			err = decodePlaneIntra(br, buf, planeno, tabIdx)
		} else {
			err = decodePlaneInter(br, buf, planeno, tabIdx)
		}
		if err != nil {
			buf.Release()
			return nil, err
		}
	}

	d.shuffler.AddFrame(buf)
	d.haveLast = true

	ftype := frame.TypeP
	if isIntra {
		ftype = frame.TypeI
	}
	return &frame.Frame{
		Video: buf,
		PTS:   pkt.PTS, DTS: pkt.DTS, Duration: pkt.Duration,
		Type:     ftype,
		Keyframe: isIntra,
	}, nil
}

// decodePlaneIntra reconstructs a plane top-down: the first row's symbols
// address the delta table directly as a pair of absolute pixel values,
// every later row adds the table's signed delta (relative to 0x80) to the
// pixel directly above, clamped to [0,255]. An escape symbol (0x80 or
// above) repeats 0x80 on the first row and the pixel above it thereafter,
// over a run of (sym-0x80)*2 pixels.
func decodePlaneIntra(br *ioutil.BitReader, buf *frame.VideoBuffer, planeno, tabIdx int) error {
	fmtn := buf.Format()
	w := fmtn.PlaneWidth(planeno, buf.Width())
	h := fmtn.PlaneHeight(planeno, buf.Height())
	stride := buf.Stride(planeno)
	plane := buf.Plane(planeno)
	table := &deltaTables[tabIdx]

	base := 0
	x := 0
	for x < w {
		sym, err := ioutil.ReadCodebook(br, codeCB)
		if err != nil {
			return err
		}
		idx := int(sym)
		if idx >= 0x80 {
			run := (idx - 0x80) * 2
			if x+run > w {
				return nihav.ErrInvalidData
			}
			for i := 0; i < run; i++ {
				plane[base+x+i] = 0x80
			}
			x += run
		} else {
			plane[base+x+0] = table[idx*2+0]
			plane[base+x+1] = table[idx*2+1]
			x += 2
		}
	}
	base += stride

	for row := 1; row < h; row++ {
		x = 0
		for x < w {
			sym, err := ioutil.ReadCodebook(br, codeCB)
			if err != nil {
				return err
			}
			idx := int(sym)
			if idx >= 0x80 {
				run := (idx - 0x80) * 2
				if x+run > w {
					return nihav.ErrInvalidData
				}
				for i := 0; i < run; i++ {
					plane[base+x+i] = plane[base+x+i-stride]
				}
				x += run
			} else {
				delta0 := int16(table[idx*2+0]) - 0x80
				delta1 := int16(table[idx*2+1]) - 0x80
				pix0 := int16(plane[base+x+0-stride]) + delta0
				pix1 := int16(plane[base+x+1-stride]) + delta1
				plane[base+x+0] = clip255(pix0)
				plane[base+x+1] = clip255(pix1)
				x += 2
			}
		}
		base += stride
	}
	return nil
}

// decodePlaneInter mutates buf's plane (already seeded with the previous
// frame's content by the caller's copy-on-write buffer fetch) in place:
// each non-escape symbol's table delta is scaled by 3/4 before being added
// to the pixel already there, clamped to [0,255]; an escape run simply
// leaves the pixels under it unchanged.
func decodePlaneInter(br *ioutil.BitReader, buf *frame.VideoBuffer, planeno, tabIdx int) error {
	fmtn := buf.Format()
	w := fmtn.PlaneWidth(planeno, buf.Width())
	h := fmtn.PlaneHeight(planeno, buf.Height())
	stride := buf.Stride(planeno)
	plane := buf.Plane(planeno)
	table := &deltaTables[tabIdx]

	base := 0
	for row := 0; row < h; row++ {
		x := 0
		for x < w {
			sym, err := ioutil.ReadCodebook(br, codeCB)
			if err != nil {
				return err
			}
			idx := int(sym)
			if idx >= 0x80 {
				run := (idx - 0x80) * 2
				if x+run > w {
					return nihav.ErrInvalidData
				}
				x += run
			} else {
				delta0 := int16(table[idx*2+0]) - 0x80
				delta1 := int16(table[idx*2+1]) - 0x80
				pix0 := int16(plane[base+x+0]) + (delta0*3)>>2
				pix1 := int16(plane[base+x+1]) + (delta1*3)>>2
				plane[base+x+0] = clip255(pix0)
				plane[base+x+1] = clip255(pix1)
				x += 2
			}
		}
		base += stride
	}
	return nil
}

func clip255(v int16) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
