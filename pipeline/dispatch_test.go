/*
NAME
  dispatch_test.go

DESCRIPTION
  dispatch_test.go drives Dispatcher against a fake in-memory NADemuxer and
  a stub decoder, checking stream resolution, frame delivery order, and
  the unregistered-codec and unknown-stream-packet edge cases.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

import (
	"testing"
	"time"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/register"
)

// fakeDemuxer replays a fixed list of streams and packets, then reports
// ErrEOF.
type fakeDemuxer struct {
	streams []frame.Stream
	packets []*frame.Packet
	idx     int
}

func (f *fakeDemuxer) Open() error                { return nil }
func (f *fakeDemuxer) NumStreams() int            { return len(f.streams) }
func (f *fakeDemuxer) Stream(i int) frame.Stream  { return f.streams[i] }
func (f *fakeDemuxer) Seek(float64) error         { return nihav.ErrNotImplemented }

func (f *fakeDemuxer) GetFrame() (*frame.Packet, error) {
	if f.idx >= len(f.packets) {
		return nil, nihav.ErrEOF
	}
	p := f.packets[f.idx]
	f.idx++
	return p, nil
}

// stubDecoder echoes each packet's PTS back as a frame's PTS, so tests can
// check delivery order without a real codec.
type stubDecoder struct{ decodes int }

func (d *stubDecoder) Init(*nihav.NADecoderSupport, frame.CodecInfo) error { return nil }

func (d *stubDecoder) Decode(_ *nihav.NADecoderSupport, pkt *frame.Packet) (*frame.Frame, error) {
	d.decodes++
	return &frame.Frame{PTS: pkt.PTS, Type: frame.TypeI}, nil
}

func (d *stubDecoder) Flush() {}

func pts(v int64) *int64 { return &v }

func TestDispatcherRoutesPacketsInOrder(t *testing.T) {
	demux := &fakeDemuxer{
		streams: []frame.Stream{
			{Type: frame.Audio, ID: 7, Codec: frame.CodecInfo{Name: "stub"}},
		},
		packets: []*frame.Packet{
			{StreamID: 7, PTS: pts(0)},
			{StreamID: 7, PTS: pts(1)},
			{StreamID: 7, PTS: pts(2)},
		},
	}

	registry := register.NewDecoderRegistry()
	registry.AddDecoder("stub", func() nihav.NADecoder { return &stubDecoder{} })

	var got []int64
	done := make(chan struct{})
	d := NewDispatcher(demux, registry, nil, func(streamID uint32, fr *frame.Frame) error {
		if streamID != 7 {
			t.Errorf("streamID = %d; want 7", streamID)
		}
		got = append(got, *fr.PTS)
		if len(got) == len(demux.packets) {
			close(done)
		}
		return nil
	})

	if err := d.Open(); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	d.Start()
	defer d.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frames")
	}

	want := []int64{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %d frames; want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %d; want %d", i, got[i], w)
		}
	}
}

func TestDispatcherOpenFailsForUnregisteredCodec(t *testing.T) {
	demux := &fakeDemuxer{
		streams: []frame.Stream{
			{Type: frame.Audio, ID: 1, Codec: frame.CodecInfo{Name: "nonexistent"}},
		},
	}
	registry := register.NewDecoderRegistry()
	d := NewDispatcher(demux, registry, nil, nil)
	if err := d.Open(); err == nil {
		t.Fatal("Open() = nil; want error for unregistered codec")
	}
}

func TestDispatcherIgnoresPacketForUnknownStream(t *testing.T) {
	demux := &fakeDemuxer{
		streams: []frame.Stream{
			{Type: frame.Audio, ID: 1, Codec: frame.CodecInfo{Name: "stub"}},
		},
		packets: []*frame.Packet{
			{StreamID: 99, PTS: pts(0)}, // no stream registered with this ID
			{StreamID: 1, PTS: pts(1)},
		},
	}
	registry := register.NewDecoderRegistry()
	registry.AddDecoder("stub", func() nihav.NADecoder { return &stubDecoder{} })

	var got []int64
	done := make(chan struct{})
	d := NewDispatcher(demux, registry, nil, func(streamID uint32, fr *frame.Frame) error {
		got = append(got, *fr.PTS)
		close(done)
		return nil
	})

	if err := d.Open(); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	d.Start()
	defer d.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got = %v; want [1] (the unknown-stream packet must be skipped, not delivered)", got)
	}
}
