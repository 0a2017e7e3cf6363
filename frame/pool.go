/*
NAME
  pool.go

DESCRIPTION
  pool.go implements a small ring of preallocated video buffers that a
  decoder can pull from instead of allocating a fresh buffer for every
  frame, recycling a slot once every outside reference to it is released.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"github.com/pkg/errors"

	"github.com/ausocean/nihav/format"
)

// VideoBufferPool holds up to N preallocated video buffers, of a single
// shape, and hands out shared handles to the first free one. A slot is free
// when its buffer's reference count is 1 (the pool's own hold).
type VideoBufferPool struct {
	fmt       format.Formaton
	w, h      int
	alignment int
	slots     []*VideoBuffer
	max       int
}

// NewVideoBufferPool creates a pool that will lazily allocate up to max
// buffers of the given shape.
func NewVideoBufferPool(fmt format.Formaton, w, h, alignment, max int) *VideoBufferPool {
	return &VideoBufferPool{fmt: fmt, w: w, h: h, alignment: alignment, max: max}
}

// Get returns a shared handle to a free buffer, allocating a new slot if
// the pool has not yet reached its maximum size. Retrieval is O(N) in the
// number of slots, matching spec.md §4.3.
func (p *VideoBufferPool) Get() (*VideoBuffer, error) {
	for _, s := range p.slots {
		if s.RefCount() == 1 {
			return s.Ref(), nil
		}
	}
	if len(p.slots) >= p.max {
		return nil, errors.New("frame: video buffer pool exhausted")
	}
	vb, err := AllocVideoBuffer(p.fmt, p.w, p.h, p.alignment)
	if err != nil {
		return nil, err
	}
	p.slots = append(p.slots, vb)
	return vb.Ref(), nil
}

// GetOrCopy returns a writable buffer for in-place modification: either a
// free pool slot with src's contents copied in, or (if src itself is
// uniquely held, not counting this pool's own hold on its slots) src
// directly. This is the explicit copy-on-write idiom spec.md §9 calls for
// in place of "clone_ref then mutate the copy".
func (p *VideoBufferPool) GetOrCopy(src *VideoBuffer) (*VideoBuffer, error) {
	unique := src.RefCount() == 1
	for _, s := range p.slots {
		if s.refcount.n == src.refcount.n {
			unique = src.RefCount() == 2
			break
		}
	}
	if unique {
		return src, nil
	}
	dst, err := p.Get()
	if err != nil {
		return nil, err
	}
	copy(dst.data, src.data)
	dst.w, dst.h, dst.fmt = src.w, src.h, src.fmt
	return dst, nil
}
