/*
NAME
  shuffler.go

DESCRIPTION
  shuffler.go implements the small reference-frame store ("last" and
  "golden") that motion-compensated decoders use to reconstruct P and B
  frames.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

// Shuffler owns up to two reference frames: the most recently decoded
// ("last") and a separately-retained anchor ("golden"), per spec.md §3.
type Shuffler struct {
	last, golden *VideoBuffer
}

// AddFrame replaces the "last" reference, releasing whatever was held
// previously.
func (s *Shuffler) AddFrame(buf *VideoBuffer) {
	if s.last != nil {
		s.last.Release()
	}
	s.last = buf.Ref()
}

// AddGolden replaces the "golden" reference independently of AddFrame.
func (s *Shuffler) AddGolden(buf *VideoBuffer) {
	if s.golden != nil {
		s.golden.Release()
	}
	s.golden = buf.Ref()
}

// GetLast returns a new shared handle to the last reference, or nil if none
// is held.
func (s *Shuffler) GetLast() *VideoBuffer {
	if s.last == nil {
		return nil
	}
	return s.last.Ref()
}

// GetGolden returns a new shared handle to the golden reference, or nil.
func (s *Shuffler) GetGolden() *VideoBuffer {
	if s.golden == nil {
		return nil
	}
	return s.golden.Ref()
}

// Clear releases both references. Decoders call this from Flush.
func (s *Shuffler) Clear() {
	if s.last != nil {
		s.last.Release()
		s.last = nil
	}
	if s.golden != nil {
		s.golden.Release()
		s.golden = nil
	}
}
