/*
NAME
  buffer.go

DESCRIPTION
  buffer.go defines the reference-counted video and audio buffers that flow
  between demuxer, decoder and caller: a single contiguous backing array
  plus per-plane (video) or per-channel (audio) offsets and strides.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame holds the data types that flow through a decode pipeline:
// reference-counted video/audio buffers and the pool and shuffler that
// manage their lifetime, packets, streams and decoded frames.
package frame

import (
	"sync/atomic"

	"github.com/go-audio/audio"
	"github.com/pkg/errors"

	"github.com/ausocean/nihav/format"
)

// refcount is embedded in both buffer kinds and implements the shared
// ownership described in spec.md §3 and §9: the shuffler, a pool and the
// caller may all hold a handle at once, and the backing store is only
// released (or, for pooled buffers, recycled) when the count reaches zero.
type refcount struct {
	n *int32
}

func newRefcount() refcount {
	n := int32(1)
	return refcount{n: &n}
}

func (r refcount) ref() refcount {
	atomic.AddInt32(r.n, 1)
	return r
}

// unref decrements the count and reports whether this was the last
// reference.
func (r refcount) unref() bool {
	return atomic.AddInt32(r.n, -1) == 0
}

func (r refcount) count() int32 {
	return atomic.LoadInt32(r.n)
}

// VideoBuffer owns a single contiguous byte array holding one or more
// planes, described by a format.Formaton, plus the per-plane offsets and
// strides into that array.
type VideoBuffer struct {
	refcount
	fmt      format.Formaton
	w, h     int
	data     []byte
	offsets  []int
	strides  []int
	palette  []byte // present iff fmt.HasPalette
	flipped  bool
}

// AllocVideoBuffer computes per-plane line size and height from fmt, rounds
// each line size up to alignment (0 or 1 means no rounding), and returns a
// new owned buffer with all planes packed into one contiguous array — the
// single-allocation layout spec.md §4.3 requires of alloc_video_buffer.
func AllocVideoBuffer(fmt format.Formaton, w, h int, alignment int) (*VideoBuffer, error) {
	if err := fmt.Validate(); err != nil {
		return nil, errors.Wrap(err, "frame: cannot allocate video buffer")
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("frame: invalid dimensions %dx%d", w, h)
	}
	if alignment <= 0 {
		alignment = 1
	}

	offsets := make([]int, len(fmt.Components))
	strides := make([]int, len(fmt.Components))
	total := 0
	for i, c := range fmt.Components {
		pw, ph := c.PlaneDims(w, h)
		ls := c.LineSize(pw)
		ls = ((ls + alignment - 1) / alignment) * alignment
		offsets[i] = total
		strides[i] = ls
		total += ls * ph
	}

	vb := &VideoBuffer{
		refcount: newRefcount(),
		fmt:      fmt,
		w:        w,
		h:        h,
		data:     make([]byte, total),
		offsets:  offsets,
		strides:  strides,
	}
	if fmt.HasPalette {
		vb.palette = make([]byte, 256*4)
	}
	return vb, nil
}

// Ref returns a new handle to the same backing storage, incrementing the
// shared reference count.
func (b *VideoBuffer) Ref() *VideoBuffer {
	nb := *b
	nb.refcount = b.refcount.ref()
	return &nb
}

// Release drops this handle's reference. It is safe to call exactly once
// per handle obtained from Alloc/Ref; further use of b after Release is
// invalid, matching the teacher's own discipline of dropping a value once
// its owner is done with it.
func (b *VideoBuffer) Release() { b.refcount.unref() }

// RefCount reports the live reference count, primarily so a pool can decide
// whether a buffer is free to recycle (count == 1, the pool's own hold).
func (b *VideoBuffer) RefCount() int32 { return b.count() }

func (b *VideoBuffer) Width() int             { return b.w }
func (b *VideoBuffer) Height() int            { return b.h }
func (b *VideoBuffer) Format() format.Formaton { return b.fmt }
func (b *VideoBuffer) Flipped() bool          { return b.flipped }
func (b *VideoBuffer) SetFlipped(v bool)      { b.flipped = v }

// Plane returns the byte slice for component idx.
func (b *VideoBuffer) Plane(idx int) []byte {
	start := b.offsets[idx]
	var end int
	if idx+1 < len(b.offsets) {
		end = b.offsets[idx+1]
	} else {
		end = len(b.data)
	}
	return b.data[start:end]
}

// Stride returns the byte stride (row pitch) of component idx.
func (b *VideoBuffer) Stride(idx int) int { return b.strides[idx] }

// Palette returns the 256-entry RGBA palette for palette-formaton buffers,
// or nil.
func (b *VideoBuffer) Palette() []byte { return b.palette }

// AudioBuffer owns interleaved or planar audio samples plus the channel map
// describing their layout.
type AudioBuffer struct {
	refcount
	soniton format.Soniton
	chans   format.ChannelMap
	nSamps  int
	data    []byte
	planes  [][]byte // non-nil only when soniton.Planar
}

// AllocAudioBuffer allocates a new audio buffer for nSamples samples in the
// given sample format and channel map.
func AllocAudioBuffer(s format.Soniton, ch format.ChannelMap, nSamples int) *AudioBuffer {
	ab := &AudioBuffer{
		refcount: newRefcount(),
		soniton:  s,
		chans:    ch,
		nSamps:   nSamples,
	}
	if s.Planar {
		ab.planes = make([][]byte, len(ch))
		perChan := s.AudioBytes(nSamples)
		for i := range ab.planes {
			ab.planes[i] = make([]byte, perChan)
		}
	} else {
		ab.data = make([]byte, s.AudioBytes(nSamples*len(ch)))
	}
	return ab
}

func (b *AudioBuffer) Ref() *AudioBuffer {
	nb := *b
	nb.refcount = b.refcount.ref()
	return &nb
}

func (b *AudioBuffer) Release() { b.refcount.unref() }

func (b *AudioBuffer) NumSamples() int            { return b.nSamps }
func (b *AudioBuffer) Soniton() format.Soniton     { return b.soniton }
func (b *AudioBuffer) Channels() format.ChannelMap { return b.chans }

// Data returns the interleaved backing array; valid only when !Planar.
func (b *AudioBuffer) Data() []byte { return b.data }

// Plane returns the backing array for channel idx; valid only when Planar.
func (b *AudioBuffer) Plane(idx int) []byte { return b.planes[idx] }

// ToIntBuffer converts a signed, non-float, non-planar, 8/16/32-bit audio
// buffer into a github.com/go-audio/audio.IntBuffer, the adaption point the
// teacher's codec/wav package uses to bridge decoded PCM into go-audio's
// ecosystem (e.g. for writing a WAV file with github.com/go-audio/wav).
func (b *AudioBuffer) ToIntBuffer(sampleRate int) (*audio.IntBuffer, error) {
	if b.soniton.Planar || b.soniton.Float {
		return nil, errors.New("frame: ToIntBuffer requires interleaved integer samples")
	}
	nch := len(b.chans)
	if nch == 0 {
		nch = 1
	}
	ints := make([]int, 0, b.nSamps*nch)
	switch b.soniton.Bits {
	case 8:
		for _, v := range b.data {
			ints = append(ints, int(int8(v)))
		}
	case 16:
		for i := 0; i+1 < len(b.data); i += 2 {
			var v uint16
			if b.soniton.BE {
				v = uint16(b.data[i])<<8 | uint16(b.data[i+1])
			} else {
				v = uint16(b.data[i+1])<<8 | uint16(b.data[i])
			}
			ints = append(ints, int(int16(v)))
		}
	case 32:
		for i := 0; i+3 < len(b.data); i += 4 {
			var v uint32
			if b.soniton.BE {
				v = uint32(b.data[i])<<24 | uint32(b.data[i+1])<<16 | uint32(b.data[i+2])<<8 | uint32(b.data[i+3])
			} else {
				v = uint32(b.data[i+3])<<24 | uint32(b.data[i+2])<<16 | uint32(b.data[i+1])<<8 | uint32(b.data[i])
			}
			ints = append(ints, int(int32(v)))
		}
	default:
		return nil, errors.Errorf("frame: unsupported bit depth %d for ToIntBuffer", b.soniton.Bits)
	}
	return &audio.IntBuffer{
		Format: &audio.Format{NumChannels: nch, SampleRate: sampleRate},
		Data:   ints,
	}, nil
}
