/*
NAME
  codecinfo.go

DESCRIPTION
  codecinfo.go describes each registered codec's full name, stream type and
  capability flags, mirroring nihav-core's CodecDescription table.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package register

import (
	"fmt"
	"strings"

	"github.com/ausocean/nihav/frame"
)

// Capability is a bitmask of codec capability flags.
type Capability uint32

const (
	CapIntraOnly Capability = 1 << iota
	CapLossless
	CapReorder
	CapHybrid
	CapLossyLosslessHybrid
	CapScalable
)

// String renders the set flags as a comma-separated description, the same
// shape CodecDescription's Display impl produces in the original.
func (c Capability) String() string {
	var parts []string
	if c&CapIntraOnly != 0 {
		parts = append(parts, "Intra-only")
	}
	if c&CapLossless != 0 {
		parts = append(parts, "Lossless")
	}
	if c&CapReorder != 0 {
		parts = append(parts, "Frame reorder")
	}
	if c&CapHybrid != 0 {
		parts = append(parts, "Can be lossy and lossless")
	}
	if c&CapLossyLosslessHybrid != 0 {
		parts = append(parts, "Lossy/lossless hybrid")
	}
	if c&CapScalable != 0 {
		parts = append(parts, "Scalable")
	}
	return strings.Join(parts, ", ")
}

// CodecDescription is one entry of the codec capability table.
type CodecDescription struct {
	Name     string
	FullName string
	Type     frame.StreamType
	Caps     Capability
}

func (d CodecDescription) String() string {
	if d.Caps == 0 {
		return d.FullName
	}
	return fmt.Sprintf("%s (%s)", d.FullName, d.Caps)
}

// codecDescriptions mirrors nihav-core/src/register.rs's CODEC_REGISTER,
// restricted to the codecs this module actually registers plus the wider
// representative set spec.md's register mentions by name.
// GetCodecDescription does not resolve every name fourcc.go maps to: the
// midivid, midivid3, vp3-vp7, vp6a and aac names have no entry here.
var codecDescriptions = []CodecDescription{
	{Name: "pcm", FullName: "PCM", Type: frame.Audio, Caps: CapLossless | CapIntraOnly},

	{Name: "indeo1", FullName: "Intel Raw IF09", Type: frame.Video, Caps: CapIntraOnly},
	{Name: "indeo2", FullName: "Intel Indeo 2", Type: frame.Video, Caps: CapIntraOnly},
	{Name: "indeo3", FullName: "Intel Indeo 3", Type: frame.Video},
	{Name: "indeo4", FullName: "Intel Indeo 4", Type: frame.Video, Caps: CapReorder | CapScalable},
	{Name: "indeo5", FullName: "Intel Indeo 5", Type: frame.Video, Caps: CapReorder | CapScalable},
	{Name: "intel263", FullName: "Intel I263", Type: frame.Video, Caps: CapReorder},
	{Name: "iac", FullName: "Intel Indeo audio", Type: frame.Audio},
	{Name: "imc", FullName: "Intel Music Coder", Type: frame.Audio},

	{Name: "realvideo1", FullName: "Real Video 1", Type: frame.Video},
	{Name: "realvideo2", FullName: "Real Video 2 (RV20)", Type: frame.Video, Caps: CapReorder},
	{Name: "realvideo3", FullName: "Real Video 3", Type: frame.Video, Caps: CapReorder},
	{Name: "realvideo4", FullName: "Real Video 4", Type: frame.Video, Caps: CapReorder},
	{Name: "cook", FullName: "RealAudio Cooker", Type: frame.Audio},

	{Name: "adpcm-dk3", FullName: "Duck DK3 ADPCM", Type: frame.Audio},
	{Name: "adpcm-dk4", FullName: "Duck DK4 ADPCM", Type: frame.Audio},

	{Name: "gdv-video", FullName: "Gremlin Digital Video - video", Type: frame.Video},
	{Name: "gdv-audio", FullName: "Gremlin Digital Video - audio", Type: frame.Audio},
	{Name: "vmd-video", FullName: "Sierra VMD video", Type: frame.Video, Caps: CapHybrid},
	{Name: "vmd-audio", FullName: "Sierra VMD audio", Type: frame.Audio},

	{Name: "cinepak", FullName: "Cinepak", Type: frame.Video, Caps: CapHybrid},

	{Name: "smacker-video", FullName: "Smacker video", Type: frame.Video},
	{Name: "bink-video", FullName: "Bink video", Type: frame.Video, Caps: CapReorder},
	{Name: "bink-audio-dct", FullName: "Bink audio (DCT)", Type: frame.Audio},
	{Name: "bink-audio-rdft", FullName: "Bink audio (RDFT)", Type: frame.Audio},

	{Name: "vivo-video", FullName: "Vivo video (H.263)", Type: frame.Video},
	{Name: "vivo-audio", FullName: "Vivo audio", Type: frame.Audio},

	{Name: "flv1", FullName: "Sorenson Spark (FLV1)", Type: frame.Video},
}

// GetCodecDescription returns the registered description for name, or
// false if name is unregistered.
func GetCodecDescription(name string) (CodecDescription, bool) {
	for _, d := range codecDescriptions {
		if d.Name == name {
			return d, true
		}
	}
	return CodecDescription{}, false
}
