/*
NAME
  detect.go

DESCRIPTION
  detect.go implements format auto-detection: a table of detector records
  {demuxer name, extensions, magic test}, each magic test a rooted logical
  expression over fixed-offset byte/word/dword/range/string predicates,
  mirroring src/detect.rs's CC expression tree and detect_format.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package register

import (
	"strings"

	"github.com/ausocean/nihav/ioutil"
)

// DetectionScore ranks how confidently a detector matched. MagicMatches
// always outranks ExtensionMatches, which always outranks No, per spec.md
// §4.4.
type DetectionScore int

const (
	ScoreNo DetectionScore = iota
	ScoreExtensionMatches
	ScoreMagicMatches
)

// Less reports whether s ranks below other.
func (s DetectionScore) Less(other DetectionScore) bool { return s < other }

// numKind selects how many bytes a numeric predicate reads and in which
// order.
type numKind int

const (
	kindByte numKind = iota
	kindU16LE
	kindU16BE
	kindU24LE
	kindU24BE
	kindU32LE
	kindU32BE
)

func readKind(r *ioutil.ByteReader, k numKind) (uint64, error) {
	switch k {
	case kindByte:
		v, err := r.ReadU8()
		return uint64(v), err
	case kindU16LE:
		v, err := r.ReadU16(ioutil.LittleEndian)
		return uint64(v), err
	case kindU16BE:
		v, err := r.ReadU16(ioutil.BigEndian)
		return uint64(v), err
	case kindU24LE:
		v, err := r.ReadU24(ioutil.LittleEndian)
		return uint64(v), err
	case kindU24BE:
		v, err := r.ReadU24(ioutil.BigEndian)
		return uint64(v), err
	case kindU32LE:
		v, err := r.ReadU32(ioutil.LittleEndian)
		return uint64(v), err
	case kindU32BE:
		v, err := r.ReadU32(ioutil.BigEndian)
		return uint64(v), err
	}
	return 0, nil
}

// cond is a node of the rooted boolean expression tree a magic test is
// built from.
type cond struct {
	// exactly one of these is set.
	or       []cond
	str      []byte
	eq, lt   *numArg
	le, gt   *numArg
	ge       *numArg
	inLo     *numArg
	inHi     *numArg
}

type numArg struct {
	kind numKind
	val  uint64
}

func (c cond) eval(r *ioutil.ByteReader) bool {
	switch {
	case c.or != nil:
		for _, sub := range c.or {
			if sub.eval(r) {
				return true
			}
		}
		return false
	case c.str != nil:
		b, err := r.PeekBytes(len(c.str))
		if err != nil {
			return false
		}
		return string(b) == string(c.str)
	case c.eq != nil:
		v, err := readKind(r, c.eq.kind)
		return err == nil && v == c.eq.val
	case c.lt != nil:
		v, err := readKind(r, c.lt.kind)
		return err == nil && v < c.lt.val
	case c.le != nil:
		v, err := readKind(r, c.le.kind)
		return err == nil && v <= c.le.val
	case c.gt != nil:
		v, err := readKind(r, c.gt.kind)
		return err == nil && v > c.gt.val
	case c.ge != nil:
		v, err := readKind(r, c.ge.kind)
		return err == nil && v >= c.ge.val
	case c.inLo != nil && c.inHi != nil:
		v, err := readKind(r, c.inLo.kind)
		return err == nil && v >= c.inLo.val && v <= c.inHi.val
	}
	return false
}

// Str builds a condition matching a literal byte string at the check's
// offset.
func Str(s string) cond { return cond{str: []byte(s)} }

// Or builds a condition that passes if any of its operands do.
func Or(conds ...cond) cond { return cond{or: conds} }

// Eq/Ge build conditions comparing a fixed-width field against a constant.
func Eq(k numKind, v uint64) cond { return cond{eq: &numArg{k, v}} }
func Ge(k numKind, v uint64) cond { return cond{ge: &numArg{k, v}} }

type checkItem struct {
	offset int
	cond   cond
}

// Detector is one entry of the format auto-detection table.
type Detector struct {
	Name       string
	Extensions []string
	Checks     []checkItem
}

// detectors mirrors src/detect.rs's DETECTORS table, restricted to the
// containers this module's representative decoders actually attach to
// (AVI for H.263/Cinepak/Indeo2, GDV for VMD-family games) plus RealMedia
// since RV20 is the H.263 variant this core implements.
var detectors = []Detector{
	{
		Name:       "avi",
		Extensions: []string{".avi"},
		Checks: []checkItem{
			{offset: 0, cond: Or(Str("RIFF"), Str("ON2 "))},
			{offset: 8, cond: Or(Str("AVI LIST"), Or(Str("AVIXLIST"), Str("ON2fLIST")))},
		},
	},
	{
		Name:       "gdv",
		Extensions: []string{".gdv"},
		Checks: []checkItem{
			{offset: 0, cond: Eq(kindU32LE, 0x29111994)},
		},
	},
	{
		Name:       "realmedia",
		Extensions: []string{".rm", ".rmvb"},
		Checks: []checkItem{
			{offset: 0, cond: Str(".RMF")},
			{offset: 4, cond: Ge(kindU32BE, 10)},
		},
	},
}

// DetectFormat evaluates every detector against src (whose cursor position
// is restored by each check via Seek) and the file name's extension,
// returning the best-scoring demuxer name. The first detector whose magic
// test fully passes wins immediately; otherwise the overall best-scoring
// detector (by DetectionScore) is returned.
func DetectFormat(name string, r *ioutil.ByteReader) (string, DetectionScore) {
	lname := strings.ToLower(name)
	var bestName string
	best := ScoreNo

	for _, d := range detectors {
		score := ScoreNo
		for _, ext := range d.Extensions {
			if strings.HasSuffix(lname, ext) {
				score = ScoreExtensionMatches
				break
			}
		}

		passed := len(d.Checks) > 0
		for _, ck := range d.Checks {
			if err := r.Seek(ck.offset); err != nil {
				passed = false
				break
			}
			if !ck.cond.eval(r) {
				passed = false
				break
			}
		}
		if passed {
			score = ScoreMagicMatches
		}

		if score == ScoreMagicMatches {
			return d.Name, score
		}
		if best.Less(score) {
			best = score
			bestName = d.Name
		}
	}
	return bestName, best
}
