/*
NAME
  detect_test.go

DESCRIPTION
  detect_test.go tests format auto-detection against the AVI magic scenario
  spec.md §8 names directly.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package register

import (
	"testing"

	"github.com/ausocean/nihav/ioutil"
)

func TestDetectFormatAVI(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[0:4], "RIFF")
	copy(buf[8:16], "AVI LIST")
	r := ioutil.NewFileReader(buf)

	name, score := DetectFormat("clip.avi", r)
	if name != "avi" || score != ScoreMagicMatches {
		t.Fatalf("DetectFormat() = (%q, %v); want (\"avi\", MagicMatches)", name, score)
	}
}

func TestDetectFormatExtensionOnly(t *testing.T) {
	buf := make([]byte, 16) // no magic bytes present.
	r := ioutil.NewFileReader(buf)

	name, score := DetectFormat("clip.gdv", r)
	if name != "gdv" || score != ScoreExtensionMatches {
		t.Fatalf("DetectFormat() = (%q, %v); want (\"gdv\", ExtensionMatches)", name, score)
	}
}

func TestDetectFormatRegistryAndDescriptions(t *testing.T) {
	name, ok := FindCodecFromAVIFourCC("IV41")
	if !ok || name != "indeo4" {
		t.Fatalf("FindCodecFromAVIFourCC(IV41) = %q, %v; want indeo4, true", name, ok)
	}
	name, ok = FindCodecFromWAVTwoCC(0x0401)
	if !ok || name != "imc" {
		t.Fatalf("FindCodecFromWAVTwoCC(0x401) = %q, %v; want imc, true", name, ok)
	}
	d, ok := GetCodecDescription("indeo4")
	if !ok || d.FullName != "Intel Indeo 4" {
		t.Fatalf("GetCodecDescription(indeo4) = %+v, %v", d, ok)
	}
}
