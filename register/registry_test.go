/*
NAME
  registry_test.go

DESCRIPTION
  registry_test.go tests decoder registry add/find semantics.

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

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
)

type stubDecoder struct{}

func (stubDecoder) Init(*nihav.NADecoderSupport, frame.CodecInfo) error { return nil }
func (stubDecoder) Decode(*nihav.NADecoderSupport, *frame.Packet) (*frame.Frame, error) {
	return nil, nil
}
func (stubDecoder) Flush() {}

func TestDecoderRegistryFind(t *testing.T) {
	r := NewDecoderRegistry()
	if r.FindDecoder("h263") != nil {
		t.Fatal("FindDecoder on empty registry should return nil")
	}
	r.AddDecoder("h263", func() nihav.NADecoder { return stubDecoder{} })
	f := r.FindDecoder("h263")
	if f == nil {
		t.Fatal("FindDecoder should return the registered factory")
	}
	if _, ok := f().(nihav.NADecoder); !ok {
		t.Fatal("factory should produce a NADecoder")
	}
}
