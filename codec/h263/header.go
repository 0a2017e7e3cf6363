/*
NAME
  header.go

DESCRIPTION
  header.go parses the picture header: start code, temporal reference,
  source format and picture type, the optional PLUSPTYPE extension block
  (custom source format, AIC and PB-frames picture types; no deblocking
  flag is read, so PictureHeader.Deblock stays false), quantiser and the
  PEI/PSUPP trailer.

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

	"github.com/ausocean/nihav/ioutil"
)

// pictureStartCode is the 22-bit PSC that opens every picture header.
const pictureStartCode = 0x20

// PictureType classifies a decoded picture.
type PictureType int

const (
	PicI PictureType = iota
	PicP
	PicPB
	PicSkip
	PicB
	PicEI // intra + AIC
	PicEP // inter + AIC
)

// PictureHeader is the parsed result of one picture-header bit run.
type PictureHeader struct {
	TemporalRef int
	Type        PictureType
	Width       int
	Height      int
	PBFrame     bool
	AIC         bool
	Deblock     bool
	Quant       int
	// PTS of the associated B-part when PBFrame is set: the delta to the
	// B-picture's temporal reference and its own quantiser.
	TRB     int
	BQuant  int
}

// ParsePictureHeader consumes a full picture header from br, leaving the
// cursor positioned at the first group-of-blocks header.
func ParsePictureHeader(br *ioutil.BitReader) (*PictureHeader, error) {
	psc, err := br.Read(22)
	if err != nil {
		return nil, errors.Wrap(err, "h263: short picture start code")
	}
	if psc != pictureStartCode {
		return nil, errors.Errorf("h263: bad picture start code %#x", psc)
	}

	tr, err := br.Read(8)
	if err != nil {
		return nil, err
	}
	hdr := &PictureHeader{TemporalRef: int(tr)}

	// PTYPE: 1 marker + split-screen/document/freeze bits (ignored) + 3-bit
	// source format, then either the baseline picture-type bit and four
	// option flags or, for source format 7, the PLUSPTYPE fields.
	if _, err := br.Read(1); err != nil { // marker bit, always 1
		return nil, err
	}
	if _, err := br.Read(1); err != nil { // split-screen indicator
		return nil, err
	}
	if _, err := br.Read(1); err != nil { // document camera indicator
		return nil, err
	}
	if _, err := br.Read(1); err != nil { // freeze picture release
		return nil, err
	}
	srcFmt, err := br.Read(3)
	if err != nil {
		return nil, err
	}

	switch srcFmt {
	case 7:
		// extended PLUSPTYPE: a further 3-bit UFEP selects custom source
		// format/quantiser extensions before the picture-type field proper.
		ufep, err := br.Read(3)
		if err != nil {
			return nil, err
		}
		picType, err := br.Read(3)
		if err != nil {
			return nil, err
		}
		if ufep == 1 {
			cust, err := br.Read(3)
			if err != nil {
				return nil, err
			}
			if cust == 6 {
				w, err := br.Read(9)
				if err != nil {
					return nil, err
				}
				if _, err := br.Read(1); err != nil { // marker
					return nil, err
				}
				h, err := br.Read(9)
				if err != nil {
					return nil, err
				}
				hdr.Width = (int(w) + 1) * 4
				hdr.Height = int(h) * 4
			} else if int(cust) < len(sourceFormats) {
				hdr.Width = sourceFormats[cust].w
				hdr.Height = sourceFormats[cust].h
			}
			if _, err := br.Read(2); err != nil { // pixel aspect ratio code
				return nil, err
			}
		}
		hdr.Type = pictureTypeFromBits(picType)
		hdr.AIC = picType == 6 || picType == 7
		hdr.PBFrame = picType == 3 || picType == 7
	default:
		if int(srcFmt) < len(sourceFormats) {
			hdr.Width = sourceFormats[srcFmt].w
			hdr.Height = sourceFormats[srcFmt].h
		}
		picBit, err := br.Read(1)
		if err != nil {
			return nil, err
		}
		if picBit == 0 {
			hdr.Type = PicI
		} else {
			hdr.Type = PicP
		}
		// unrestricted MV, syntax-based arithmetic coding, advanced
		// prediction and PB-frames flags (standard baseline PTYPE tail).
		if _, err := br.Read(1); err != nil {
			return nil, err
		}
		if _, err := br.Read(1); err != nil {
			return nil, err
		}
		if _, err := br.Read(1); err != nil {
			return nil, err
		}
		pb, err := br.Read(1)
		if err != nil {
			return nil, err
		}
		hdr.PBFrame = pb != 0
	}

	if hdr.Width == 0 || hdr.Height == 0 {
		return nil, errors.New("h263: unsupported or missing source format")
	}

	q, err := br.Read(5)
	if err != nil {
		return nil, err
	}
	hdr.Quant = int(q)

	if hdr.PBFrame {
		trb, err := br.Read(3)
		if err != nil {
			return nil, err
		}
		bq, err := br.Read(5)
		if err != nil {
			return nil, err
		}
		hdr.TRB = int(trb)
		hdr.BQuant = int(bq)
	}

	// PEI/PSUPP extra-information trailer: a run of (1-bit flag, 8-bit
	// payload) pairs terminated by a zero flag.
	for {
		pei, err := br.Read(1)
		if err != nil {
			return nil, err
		}
		if pei == 0 {
			break
		}
		if _, err := br.Read(8); err != nil {
			return nil, err
		}
	}

	return hdr, nil
}

func pictureTypeFromBits(v uint64) PictureType {
	switch v {
	case 0:
		return PicI
	case 1:
		return PicP
	case 2:
		return PicPB
	case 3:
		return PicPB
	case 4:
		return PicB
	case 5:
		return PicP
	case 6:
		return PicEI
	case 7:
		return PicEP
	default:
		return PicP
	}
}

// IsIntra reports whether a picture type carries only intra macroblocks.
func (t PictureType) IsIntra() bool { return t == PicI || t == PicEI }
