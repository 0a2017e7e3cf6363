/*
NAME
  pool_test.go

DESCRIPTION
  pool_test.go tests video buffer pool allocation, recycling and the
  copy-on-write GetOrCopy helper.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"testing"

	"github.com/ausocean/nihav/format"
)

func TestVideoBufferPoolRecycles(t *testing.T) {
	p := NewVideoBufferPool(format.YUV420Formaton, 8, 8, 1, 2)

	a, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Get(); err == nil {
		t.Fatal("Get() should fail once the pool is exhausted")
	}

	a.Release()
	c, err := p.Get()
	if err != nil {
		t.Fatalf("Get() after Release() should recycle a free slot: %v", err)
	}
	c.Release()
	b.Release()
}

func TestVideoBufferPoolGetOrCopy(t *testing.T) {
	p := NewVideoBufferPool(format.YUV420Formaton, 4, 4, 1, 2)
	src, err := p.Get()
	if err != nil {
		t.Fatal(err)
	}
	src.Plane(0)[0] = 0x42

	// src uniquely held: GetOrCopy must return src itself.
	same, err := p.GetOrCopy(src)
	if err != nil {
		t.Fatal(err)
	}
	if same != src {
		t.Fatal("GetOrCopy() should return src when uniquely held")
	}

	held := src.Ref()
	defer held.Release()
	cow, err := p.GetOrCopy(src)
	if err != nil {
		t.Fatal(err)
	}
	if cow == src {
		t.Fatal("GetOrCopy() should return a distinct buffer when src is shared")
	}
	if cow.Plane(0)[0] != 0x42 {
		t.Fatal("GetOrCopy() copy should preserve src's contents")
	}
	cow.Release()
	src.Release()
}
