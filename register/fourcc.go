/*
NAME
  fourcc.go

DESCRIPTION
  fourcc.go maps AVI fourccs and WAVE twoccs to the registered decoder
  short names they identify, mirroring nihav-core/src/register.rs's
  AVI_VIDEO_CODEC_REGISTER and WAV_CODEC_REGISTER tables plus the wider
  set present in the original but dropped by the distilled spec (spec.md
  §6 only names the existence of the tables, not their entries).

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package register

// aviFourCCs maps a 4-byte AVI video fourcc to a registered decoder name.
var aviFourCCs = map[string]string{
	"IF09": "indeo1",
	"RT21": "indeo2",
	"IV31": "indeo3",
	"IV32": "indeo3",
	"IV41": "indeo4",
	"IV50": "indeo5",
	"I263": "intel263",

	"cvid": "cinepak",
	"CVID": "cinepak",

	"MVDV": "midivid",
	"MV30": "midivid3",

	"VP30": "vp3",
	"VP31": "vp3",
	"VP40": "vp4",
	"VP50": "vp5",
	"VP60": "vp6",
	"VP61": "vp6",
	"VP62": "vp6",
	"VP6A": "vp6a",
	"VP70": "vp7",

	"FLV1": "flv1",
}

// wavTwoCCs maps a WAVE format tag to a registered decoder name.
var wavTwoCCs = map[uint16]string{
	0x0000: "pcm",
	0x0001: "pcm",
	0x0003: "pcm",
	0x0061: "adpcm-dk4",
	0x0062: "adpcm-dk3",
	0x0401: "imc",
	0x0402: "iac",
	0x00FF: "aac",
}

// FindCodecFromAVIFourCC resolves fcc (exactly 4 bytes, e.g. "IV41") to a
// registered decoder short name.
func FindCodecFromAVIFourCC(fcc string) (string, bool) {
	name, ok := aviFourCCs[fcc]
	return name, ok
}

// FindCodecFromWAVTwoCC resolves a WAVE format tag to a registered decoder
// short name.
func FindCodecFromWAVTwoCC(tcc uint16) (string, bool) {
	name, ok := wavTwoCCs[tcc]
	return name, ok
}
