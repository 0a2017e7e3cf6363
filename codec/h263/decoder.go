/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the H.263/RV20 nihav.NADecoder: parses one
  picture per Decode call, reconstructs every macroblock in raster order
  (intra prediction and IDCT for coded blocks, motion compensation for
  inter blocks), and maintains the last-frame reference needed for P
  pictures.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/ioutil"
)

const mbSize = 16

// Decoder implements nihav.NADecoder for the H.263/RV20 family (also used
// by the Vivo and Intel I263 registrations, which share this bitstream).
type Decoder struct {
	support  *nihav.NADecoderSupport
	shuffler frame.Shuffler

	mbW, mbH int
	width, height int

	mvInfo   *MVInfo
	predCoef *PredCoeffs

	haveLast bool
}

var _ nihav.NADecoder = (*Decoder)(nil)

// Init prepares the decoder; H.263 carries its source format in every
// picture header, so Init mostly just resets state machine fields.
func (d *Decoder) Init(support *nihav.NADecoderSupport, info frame.CodecInfo) error {
	d.support = support
	d.shuffler = frame.Shuffler{}
	d.haveLast = false
	return nil
}

// Flush discards the last reference frame.
func (d *Decoder) Flush() {
	d.shuffler.Clear()
	d.haveLast = false
}

// Decode parses and reconstructs one picture from pkt's payload.
func (d *Decoder) Decode(support *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	br := ioutil.NewBitReader(pkt.Data, ioutil.MSB)

	hdr, err := ParsePictureHeader(br)
	if err != nil {
		return nil, errors.Wrap(nihav.ErrInvalidData, err.Error())
	}

	if hdr.Width != d.width || hdr.Height != d.height {
		d.width, d.height = hdr.Width, hdr.Height
		d.mbW = (d.width + mbSize - 1) / mbSize
		d.mbH = (d.height + mbSize - 1) / mbSize
	}
	mvMode := MVModeOld
	d.mvInfo = NewMVInfo(d.mbW, mvMode)
	d.predCoef = NewPredCoeffs(d.mbW, d.mbH)

	intra := hdr.Type.IsIntra()
	if !intra && !d.haveLast {
		return nil, nihav.ErrMissingReference
	}
	if hdr.PBFrame {
		// A PB-frame's B-part needs the picture that comes AFTER it as a
		// forward reference, so reconstructing one means holding the
		// decoded P-part back until the next picture arrives and emitting
		// frames out of bitstream order. This decoder emits one
		// Frame per Decode call against a single last-reference shuffler,
		// so there is nowhere to stage that reordering; refuse rather than
		// emit a silently-wrong forward-only reconstruction. The header's
		// trb/bquant fields above are still parsed so the bit cursor stays
		// correct for callers that skip past this picture.
		return nil, errors.Wrap(nihav.ErrNotImplemented, "h263: PB-frames not supported")
	}

	buf, err := support.Pool.Get()
	if err != nil {
		return nil, errors.Wrap(err, "h263: allocate output buffer")
	}

	var ref *frame.VideoBuffer
	if !intra {
		ref = d.shuffler.GetLast()
		defer ref.Release()
	}

	if err := d.decodePlanes(br, hdr, buf, ref); err != nil {
		buf.Release()
		return nil, err
	}

	d.shuffler.AddFrame(buf)
	d.haveLast = true

	ftype := frame.TypeP
	if intra {
		ftype = frame.TypeI
	}

	return &frame.Frame{
		Video:    buf,
		PTS:      pkt.PTS,
		DTS:      pkt.DTS,
		Duration: pkt.Duration,
		Type:     ftype,
		Keyframe: intra,
	}, nil
}

// decodePlanes reconstructs every macroblock row of the picture into buf,
// using ref as the motion-compensation source for inter macroblocks.
func (d *Decoder) decodePlanes(br *ioutil.BitReader, hdr *PictureHeader, buf, ref *frame.VideoBuffer) error {
	intra := hdr.Type.IsIntra()
	quant := hdr.Quant

	yPlane := buf.Plane(0)
	uPlane := buf.Plane(1)
	vPlane := buf.Plane(2)
	yStride := buf.Stride(0)
	uStride := buf.Stride(1)
	vStride := buf.Stride(2)

	var refY, refU, refV []byte
	var refYS, refUS, refVS int
	if ref != nil {
		refY, refU, refV = ref.Plane(0), ref.Plane(1), ref.Plane(2)
		refYS, refUS, refVS = ref.Stride(0), ref.Stride(1), ref.Stride(2)
	}

	for mbY := 0; mbY < d.mbH; mbY++ {
		if mbY > 0 {
			if gh, err := ParseGOBHeader(br); err != nil {
				return errors.Wrap(nihav.ErrInvalidData, err.Error())
			} else if gh.HasQuant {
				quant = gh.Quant
			}
			d.mvInfo.StartRow()
		}

		for mbX := 0; mbX < d.mbW; mbX++ {
			mb, err := decodeMBHeader(br, intra, quant, hdr.AIC)
			if err != nil {
				return errors.Wrap(nihav.ErrInvalidData, err.Error())
			}
			quant = mb.Quant

			if mb.Skipped {
				d.mvInfo.SetZeroMV(mbX)
				if ref != nil {
					copyMBInter(yPlane, yStride, refY, refYS, mbX*mbSize, mbY*mbSize, mbSize, mbSize)
					copyMBInter(uPlane, uStride, refU, refUS, mbX*mbSize/2, mbY*mbSize/2, mbSize/2, mbSize/2)
					copyMBInter(vPlane, vStride, refV, refVS, mbX*mbSize/2, mbY*mbSize/2, mbSize/2, mbSize/2)
				}
				continue
			}

			if mb.IsIntra() {
				d.mvInfo.SetZeroMV(mbX)
			} else if mb.Use4MV {
				var mvs [4]MV
				for b := 0; b < 4; b++ {
					a, bb, c := d.mvInfo.Predict(mbX, b, mbY == 0, mbX == 0)
					pred := predMV(a, bb, c)
					mv := addUMV(pred, mb.MVD[b], d.mvInfo.mvMode)
					d.mvInfo.Store(mbX, b, mv, true)
					mvs[b] = mv
					bx := mbX*mbSize + (b%2)*8
					by := mbY*mbSize + (b/2)*8
					mcBlock(yPlane[by*yStride+bx:], yStride, refY, refYS, d.width, d.height, bx, by, mv)
				}
				cmv := avgChromaMV(mvs)
				cmv = MV{(cmv.X >> 1) | (cmv.X & 1), (cmv.Y >> 1) | (cmv.Y & 1)}
				predictAndCompensateChroma(uPlane, uStride, refU, refUS, d.width/2, d.height/2, mbX, mbY, cmv)
				predictAndCompensateChroma(vPlane, vStride, refV, refVS, d.width/2, d.height/2, mbX, mbY, cmv)
			} else {
				a, b, c := d.mvInfo.Predict(mbX, 0, mbY == 0, mbX == 0)
				pred := predMV(a, b, c)
				mv := addUMV(pred, mb.MVD[0], d.mvInfo.mvMode)
				d.mvInfo.Store(mbX, 0, mv, false)
				predictAndCompensateMB(yPlane, yStride, refY, refYS, d.width, d.height, mbX, mbY, mv)
				cmv := MV{(mv.X >> 1) | (mv.X & 1), (mv.Y >> 1) | (mv.Y & 1)}
				predictAndCompensateChroma(uPlane, uStride, refU, refUS, d.width/2, d.height/2, mbX, mbY, cmv)
				predictAndCompensateChroma(vPlane, vStride, refV, refVS, d.width/2, d.height/2, mbX, mbY, cmv)
			}

			if err := d.decodeMBBlocks(br, mb, quant, mbX, mbY, yPlane, yStride, uPlane, uStride, vPlane, vStride); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeMBBlocks decodes and reconstructs the six blocks (4 luma, 2
// chroma) of one macroblock whose CBP bits are set; for an intra
// macroblock every block is present regardless of CBP (the coded-block
// pattern only ever suppresses inter residuals in this simplified
// reconstruction path). When mb.ACPred is set (advanced intra coding),
// each intra luma block's DC term, and in Hor/Ver mode its first AC row
// or column, is predicted from its already-decoded neighbours.
func (d *Decoder) decodeMBBlocks(br *ioutil.BitReader, mb MBInfo, quant, mbX, mbY int, yPlane []byte, yStride int, uPlane []byte, uStride int, vPlane []byte, vStride int) error {
	cbp := mb.CBP()
	intra := mb.IsIntra()

	for b := 0; b < 4; b++ {
		coded := intra || cbp&(0x20>>uint(b)) != 0
		if !coded && !intra {
			continue
		}
		var coef [64]int32
		if coded {
			if err := decodeBlock(br, &coef, quant, intra, 0); err != nil {
				return errors.Wrap(nihav.ErrInvalidData, err.Error())
			}
		}
		if !coded {
			continue
		}
		if intra && mb.ACPred != ACPredNone {
			d.predCoef.Apply(&coef, mb.ACPred, mbX, mbY, b)
			d.predCoef.Save(mbX, mbY, b, &coef)
		}
		idct8x8(&coef)
		bx := mbX*mbSize + (b%2)*8
		by := mbY*mbSize + (b/2)*8
		dst := yPlane[by*yStride+bx:]
		if intra {
			putBlock(&coef, dst, yStride)
		} else {
			addBlock(&coef, dst, yStride)
		}
	}

	for ci, plane := range [][]byte{uPlane, vPlane} {
		stride := uStride
		if ci == 1 {
			stride = vStride
		}
		bit := 0x2 >> uint(ci)
		coded := intra || cbp&bit != 0
		if !coded {
			continue
		}
		var coef [64]int32
		if err := decodeBlock(br, &coef, quant, intra, 0); err != nil {
			return errors.Wrap(nihav.ErrInvalidData, err.Error())
		}
		idct8x8(&coef)
		bx := mbX * mbSize / 2
		by := mbY * mbSize / 2
		dst := plane[by*stride+bx:]
		if intra {
			putBlock(&coef, dst, stride)
		} else {
			addBlock(&coef, dst, stride)
		}
	}
	return nil
}

func predictAndCompensateMB(dst []byte, ds int, src []byte, ss, w, h, mbX, mbY int, mv MV) {
	for b := 0; b < 4; b++ {
		bx := mbX*mbSize + (b%2)*8
		by := mbY*mbSize + (b/2)*8
		mcBlock(dst[by*ds+bx:], ds, src, ss, w, h, bx, by, mv)
	}
}

func predictAndCompensateChroma(dst []byte, ds int, src []byte, ss, w, h, mbX, mbY int, mv MV) {
	bx := mbX * mbSize / 2
	by := mbY * mbSize / 2
	mcBlock(dst[by*ds+bx:], ds, src, ss, w, h, bx, by, mv)
}

func copyMBInter(dst []byte, ds int, src []byte, ss, x0, y0, w, h int) {
	for y := 0; y < h; y++ {
		copy(dst[(y0+y)*ds+x0:(y0+y)*ds+x0+w], src[(y0+y)*ss+x0:(y0+y)*ss+x0+w])
	}
}

