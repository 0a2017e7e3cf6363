/*
NAME
  formaton.go

DESCRIPTION
  formaton.go describes pixel formats: colour model, per-component packing
  (chromaton), and the plane/line-size arithmetic derived from them that
  video buffer allocation and codecs depend on.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package format

import "github.com/pkg/errors"

// ColourModel identifies the broad family a Formaton's components belong to.
type ColourModel int

const (
	CMRGB ColourModel = iota
	CMYUV
	CMCMYK
	CMHSV
	CMLAB
	CMXYZ
)

// YUVVariant refines CMYUV formatons; it is meaningless for other models.
type YUVVariant int

const (
	YUVNone YUVVariant = iota
	YCbCr
	YIQ
	YUVJ
)

// RGBVariant refines CMRGB formatons; it is meaningless for other models.
type RGBVariant int

const (
	RGBNone RGBVariant = iota
	RGBStandard
	SRGB
)

// Chromaton describes one component of a pixel format: its subsampling
// relative to the luma/primary plane, whether it is packed into a shared
// element with other components, its bit depth, and its location within
// that element.
type Chromaton struct {
	HSS    uint8 // horizontal subsampling, as a power of two (0 = none)
	VSS    uint8 // vertical subsampling, as a power of two
	Packed bool
	Depth  uint8 // bits per sample
	Shift  uint8 // bit shift within the packed element
	Offset uint8 // byte offset within the packed element
	Stride uint8 // stride in bytes to the next same-component element
}

// PlaneDims returns the plane width/height derived from a frame's overall
// width/height and this chromaton's subsampling: ceil(w / 2^hss), ceil(h /
// 2^vss).
func (c Chromaton) PlaneDims(w, h int) (int, int) {
	pw := (w + (1 << c.HSS) - 1) >> c.HSS
	ph := (h + (1 << c.VSS) - 1) >> c.VSS
	return pw, ph
}

// LineSize returns the number of bytes one row of width w occupies for this
// component: packed formats round up the bit width to a byte; planar
// formats are one byte (or Depth/8 bytes) per sample.
func (c Chromaton) LineSize(w int) int {
	if c.Packed {
		return (w*int(c.Depth) + 7) / 8
	}
	return w * ((int(c.Depth) + 7) / 8)
}

// Formaton aggregates the component descriptors and flags that fully
// describe a video buffer's pixel layout.
type Formaton struct {
	Model       ColourModel
	YUVVariant  YUVVariant
	RGBVariant  RGBVariant
	Components  []Chromaton
	ElemSize    uint8 // bytes per pixel for packed formats, 0 for planar
	BigEndian   bool
	HasAlpha    bool
	HasPalette  bool
}

// NumComponents returns the number of non-null component descriptors.
func (f Formaton) NumComponents() int { return len(f.Components) }

// Validate checks the invariants spec.md §3 requires of a Formaton: no more
// than 5 components, and for palette formats the first component is an
// 8-bit index.
func (f Formaton) Validate() error {
	if len(f.Components) == 0 || len(f.Components) > 5 {
		return errors.Errorf("format: component count %d out of range [1,5]", len(f.Components))
	}
	if f.HasPalette {
		if len(f.Components) < 1 || f.Components[0].Depth != 8 {
			return errors.New("format: palette formaton's first component must be an 8-bit index")
		}
	}
	return nil
}

// PlaneWidth and PlaneHeight resolve the derived plane dimensions (spec.md
// §3: "plane width = ceil(W / 2^hss)") for component idx of a W x H frame.
func (f Formaton) PlaneWidth(idx, w int) int {
	pw, _ := f.Components[idx].PlaneDims(w, 0)
	return pw
}

func (f Formaton) PlaneHeight(idx, h int) int {
	_, ph := f.Components[idx].PlaneDims(0, h)
	return ph
}

// Well-known formatons used across decoders, grounded on the formats the
// in-scope codecs actually produce: 4:2:0 planar YUV for H.263/RV20 and
// Cinepak, 4:1:0 planar YUV for Indeo 2 and 8-bit paletted for VMD video.
// No decoder here produces 24-bit packed RGB.
var (
	YUV420Formaton = Formaton{
		Model:      CMYUV,
		YUVVariant: YCbCr,
		Components: []Chromaton{
			{HSS: 0, VSS: 0, Depth: 8},
			{HSS: 1, VSS: 1, Depth: 8},
			{HSS: 1, VSS: 1, Depth: 8},
		},
	}
	YUV410Formaton = Formaton{
		Model:      CMYUV,
		YUVVariant: YCbCr,
		Components: []Chromaton{
			{HSS: 0, VSS: 0, Depth: 8},
			{HSS: 2, VSS: 2, Depth: 8},
			{HSS: 2, VSS: 2, Depth: 8},
		},
	}
	RGB24Formaton = Formaton{
		Model:    CMRGB,
		ElemSize: 3,
		Components: []Chromaton{
			{Packed: true, Depth: 8, Offset: 0, Stride: 3},
			{Packed: true, Depth: 8, Offset: 1, Stride: 3},
			{Packed: true, Depth: 8, Offset: 2, Stride: 3},
		},
	}
	PAL8Formaton = Formaton{
		Model:      CMRGB,
		HasPalette: true,
		Components: []Chromaton{
			{Packed: true, Depth: 8, Offset: 0, Stride: 1},
			{Packed: true, Depth: 8, Offset: 0, Stride: 3},
			{Packed: true, Depth: 8, Offset: 1, Stride: 3},
			{Packed: true, Depth: 8, Offset: 2, Stride: 3},
		},
	}
)
