/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the Cinepak nihav.NADecoder: a strip-based codec
  with two persistent 256-entry vector codebooks (V1, whole 4x4-block
  entries, and V4, per-2x2-quadrant entries), refreshed in full or by a
  32-entry bitmask update at the start of each strip, followed by a
  per-block V1/V4 selection bitmask (full blocks only on intra strips;
  inter strips additionally allow skipping a block entirely).

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cinepak implements the Cinepak nihav.NADecoder.
package cinepak

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

// codebookEntry is one V1 (whole 4x4 block) or V4 (2x2 quadrant) vector
// codebook entry: four luma samples plus one U/V pair.
type codebookEntry [6]byte

// Decoder implements nihav.NADecoder for Cinepak.
type Decoder struct {
	shuffler   frame.Shuffler
	cbV1, cbV4 [256]codebookEntry
	width, height int
	haveLast   bool
}

var _ nihav.NADecoder = (*Decoder)(nil)

func (d *Decoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	d.shuffler = frame.Shuffler{}
	d.haveLast = false
	return nil
}

func (d *Decoder) Flush() {
	d.shuffler.Clear()
	d.haveLast = false
}

func (d *Decoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	if len(pkt.Data) <= 10 {
		return nil, nihav.ErrShortData
	}
	br := ioutil.NewMemReader(pkt.Data)

	flags, err := br.ReadU8()
	if err != nil {
		return nil, err
	}
	if _, err := br.ReadU24(ioutil.BigEndian); err != nil { // total size
		return nil, err
	}
	w, err := br.ReadU16(ioutil.BigEndian)
	if err != nil {
		return nil, err
	}
	h, err := br.ReadU16(ioutil.BigEndian)
	if err != nil {
		return nil, err
	}
	nstrips, err := br.ReadU16(ioutil.BigEndian)
	if err != nil {
		return nil, err
	}

	isIntra := flags&1 == 0

	if int(w) != d.width || int(h) != d.height {
		d.width, d.height = int(w), int(h)
		d.shuffler.Clear()
		d.haveLast = false
	}

	var buf *frame.VideoBuffer
	if isIntra {
		buf, err = support.Pool.Get()
		if err != nil {
			return nil, errors.Wrap(err, "cinepak: allocate output buffer")
		}
	} else {
		if !d.haveLast {
			return nil, nihav.ErrMissingReference
		}
		buf = d.shuffler.GetLast()
		cow, err := support.Pool.GetOrCopy(buf)
		if err != nil {
			buf.Release()
			return nil, err
		}
		if cow != buf {
			buf.Release()
		}
		buf = cow
	}

	lastY := 0
	for i := 0; i < int(nstrips); i++ {
		sflags, err := br.ReadU8()
		if err != nil {
			buf.Release()
			return nil, err
		}
		if sflags != 0x10 && sflags != 0x11 {
			buf.Release()
			return nil, errors.Wrap(nihav.ErrInvalidData, "cinepak: bad strip id")
		}
		isIntraStrip := sflags&1 == 0
		size, err := br.ReadU24(ioutil.BigEndian)
		if err != nil {
			buf.Release()
			return nil, err
		}
		if size <= 12 {
			buf.Release()
			return nil, nihav.ErrInvalidData
		}
		if _, err := br.ReadU16(ioutil.BigEndian); err != nil { // yoff (unused; always 0)
			buf.Release()
			return nil, err
		}
		if _, err := br.ReadU16(ioutil.BigEndian); err != nil { // xoff (unused; always 0)
			buf.Release()
			return nil, err
		}
		yend, err := br.ReadU16(ioutil.BigEndian)
		if err != nil {
			buf.Release()
			return nil, err
		}
		xend, err := br.ReadU16(ioutil.BigEndian)
		if err != nil {
			buf.Release()
			return nil, err
		}
		if i == 0 && isIntra && !isIntraStrip {
			buf.Release()
			return nil, nihav.ErrInvalidData
		}

		start := br.Tell()
		end := start + int(size) - 12
		stripData, err := br.PeekBytes(int(size) - 12)
		if err != nil {
			buf.Release()
			return nil, err
		}
		if err := d.decodeStrip(stripData, isIntra, isIntraStrip, 0, lastY, int(xend), lastY+int(yend), buf); err != nil {
			buf.Release()
			return nil, err
		}
		if err := br.Skip(end - start); err != nil {
			buf.Release()
			return nil, err
		}
		lastY += int(yend)
	}

	d.shuffler.AddFrame(buf)
	d.haveLast = true

	ftype := frame.TypeP
	if isIntra {
		ftype = frame.TypeI
	}
	return &frame.Frame{
		Video:    buf,
		PTS:      pkt.PTS,
		DTS:      pkt.DTS,
		Duration: pkt.Duration,
		Type:     ftype,
		Keyframe: isIntra,
	}, nil
}

// readCB reads a full codebook replacement of cbSize entries (YUV entries
// are 6 bytes; greyscale entries are 4 bytes with U/V defaulted to 0x80).
// YUV entries' U/V bytes are additionally XOR 0x80, the sign-flip Cinepak
// streams encode chroma with.
func readCB(br *ioutil.ByteReader, size int, cb *[256]codebookEntry, isYUV bool) error {
	elem := 4
	if isYUV {
		elem = 6
	}
	cbSize := (size - 4) / elem
	if (size-4)%elem != 0 || cbSize > 256 {
		return errors.Wrap(nihav.ErrInvalidData, "cinepak: bad codebook chunk size")
	}
	for i := 0; i < cbSize; i++ {
		raw, err := br.ReadBytes(elem)
		if err != nil {
			return err
		}
		var e codebookEntry
		copy(e[:elem], raw)
		if isYUV {
			e[4] ^= 0x80
			e[5] ^= 0x80
		} else {
			e[4] = 0x80
			e[5] = 0x80
		}
		cb[i] = e
	}
	return nil
}

// readCBUpdate applies a 32-entry-bitmask partial codebook update.
func readCBUpdate(br *ioutil.ByteReader, size int, cb *[256]codebookEntry, isYUV bool) error {
	elem := 4
	if isYUV {
		elem = 6
	}
	end := br.Tell() + size - 4
	for i := 0; i < 256; i += 32 {
		if br.Tell() >= end {
			break
		}
		upd, err := br.ReadU32(ioutil.BigEndian)
		if err != nil {
			return err
		}
		for j := 0; j < 32; j++ {
			if (upd>>(31-uint(j)))&1 == 0 {
				continue
			}
			raw, err := br.ReadBytes(elem)
			if err != nil {
				return err
			}
			var e codebookEntry
			copy(e[:elem], raw)
			if isYUV {
				e[4] ^= 0x80
				e[5] ^= 0x80
			} else {
				e[4] = 0x80
				e[5] = 0x80
			}
			cb[i+j] = e
		}
	}
	if br.Tell() != end {
		return errors.Wrap(nihav.ErrInvalidData, "cinepak: codebook update did not consume exactly its chunk size")
	}
	return nil
}

// putBlock writes one reconstructed 4x4 luma + 2x2 chroma block at (x,y).
func putBlock(block *[24]byte, x, y int, buf *frame.VideoBuffer) {
	yPlane, yStride := buf.Plane(0), buf.Stride(0)
	uPlane, uStride := buf.Plane(1), buf.Stride(1)
	vPlane, vStride := buf.Plane(2), buf.Stride(2)

	yoff := y*yStride + x
	for i := 0; i < 4; i++ {
		copy(yPlane[yoff:yoff+4], block[i*4:i*4+4])
		yoff += yStride
	}
	uoff := (y/2)*uStride + x/2
	for i := 0; i < 2; i++ {
		copy(uPlane[uoff:uoff+2], block[16+i*2:16+i*2+2])
		uoff += uStride
	}
	voff := (y/2)*vStride + x/2
	for i := 0; i < 2; i++ {
		copy(vPlane[voff:voff+2], block[20+i*2:20+i*2+2])
		voff += vStride
	}
}

func (d *Decoder) decodeStrip(src []byte, isIntra, isIntraStrip bool, xoff, yoff, xend, yend int, buf *frame.VideoBuffer) error {
	br := ioutil.NewMemReader(src)
	idxPos, idxSize := -1, 0
	v1Only := false

	for br.Left() > 0 {
		id, err := br.ReadU8()
		if err != nil {
			return err
		}
		size64, err := br.ReadU24(ioutil.BigEndian)
		if err != nil {
			return err
		}
		size := int(size64)
		if size < 4 || size-4 > br.Left() {
			return errors.Wrap(nihav.ErrInvalidData, "cinepak: bad chunk size")
		}
		switch id {
		case 0x20:
			if err := readCB(br, size, &d.cbV4, true); err != nil {
				return err
			}
		case 0x21:
			if err := readCBUpdate(br, size, &d.cbV4, true); err != nil {
				return err
			}
		case 0x22:
			if err := readCB(br, size, &d.cbV1, true); err != nil {
				return err
			}
		case 0x23:
			if err := readCBUpdate(br, size, &d.cbV1, true); err != nil {
				return err
			}
		case 0x24:
			if err := readCB(br, size, &d.cbV4, false); err != nil {
				return err
			}
		case 0x25:
			if err := readCBUpdate(br, size, &d.cbV4, false); err != nil {
				return err
			}
		case 0x26:
			if err := readCB(br, size, &d.cbV1, false); err != nil {
				return err
			}
		case 0x27:
			if err := readCBUpdate(br, size, &d.cbV1, false); err != nil {
				return err
			}
		case 0x30, 0x31, 0x32:
			if idxPos != -1 {
				return errors.Wrap(nihav.ErrInvalidData, "cinepak: duplicate index chunk")
			}
			if id == 0x31 && isIntra {
				return errors.Wrap(nihav.ErrInvalidData, "cinepak: inter index chunk on intra frame")
			}
			idxPos = br.Tell()
			idxSize = size - 4
			v1Only = id == 0x32
			if err := br.Skip(idxSize); err != nil {
				return err
			}
		default:
			return nihav.ErrInvalidData
		}
	}
	if idxPos == -1 {
		return errors.Wrap(nihav.ErrInvalidData, "cinepak: strip has no index chunk")
	}

	idx := ioutil.NewMemReader(src[idxPos : idxPos+idxSize])
	x, y := xoff, yoff
	var block [24]byte

	for idx.Left() > 0 {
		var flags uint32
		if !v1Only {
			f, err := idx.ReadU32(ioutil.BigEndian)
			if err != nil {
				return err
			}
			flags = uint32(f)
		} else {
			flags = 0xFFFFFFFF
		}
		mask := uint32(1) << 31
		for mask > 0 {
			if !isIntra && !v1Only && flags&mask == 0 {
				mask >>= 1
				x += 4
				if x >= xend {
					x = xoff
					y += 4
					if y == yend {
						return nil
					}
				}
				continue
			}
			if !isIntra && !v1Only {
				mask >>= 1
				if mask == 0 {
					f, err := idx.ReadU32(ioutil.BigEndian)
					if err != nil {
						return err
					}
					flags, mask = uint32(f), uint32(1)<<31
				}
			}

			if flags&mask == 0 {
				bi, err := idx.ReadU8()
				if err != nil {
					return err
				}
				cb := d.cbV1[bi]
				block[0], block[1], block[2], block[3] = cb[0], cb[0], cb[1], cb[1]
				block[4], block[5], block[6], block[7] = cb[0], cb[0], cb[1], cb[1]
				block[8], block[9], block[10], block[11] = cb[2], cb[2], cb[3], cb[3]
				block[12], block[13], block[14], block[15] = cb[2], cb[2], cb[3], cb[3]
				block[16], block[17] = cb[4], cb[4]
				block[18], block[19] = cb[4], cb[4]
				block[20], block[21] = cb[5], cb[5]
				block[22], block[23] = cb[5], cb[5]
			} else {
				i0, err := idx.ReadU8()
				if err != nil {
					return err
				}
				i1, err := idx.ReadU8()
				if err != nil {
					return err
				}
				i2, err := idx.ReadU8()
				if err != nil {
					return err
				}
				i3, err := idx.ReadU8()
				if err != nil {
					return err
				}
				cb0, cb1, cb2, cb3 := d.cbV4[i0], d.cbV4[i1], d.cbV4[i2], d.cbV4[i3]
				block[0], block[1], block[2], block[3] = cb0[0], cb0[1], cb1[0], cb1[1]
				block[4], block[5], block[6], block[7] = cb0[2], cb0[3], cb1[2], cb1[3]
				block[8], block[9], block[10], block[11] = cb2[0], cb2[1], cb3[0], cb3[1]
				block[12], block[13], block[14], block[15] = cb2[2], cb2[3], cb3[2], cb3[3]
				block[16], block[17] = cb0[4], cb1[4]
				block[18], block[19] = cb2[4], cb3[4]
				block[20], block[21] = cb0[5], cb1[5]
				block[22], block[23] = cb2[5], cb3[5]
			}
			mask >>= 1

			putBlock(&block, x, y, buf)
			x += 4
			if x >= xend {
				x = xoff
				y += 4
				if y == yend {
					return nil
				}
			}
		}
	}
	return nil
}

