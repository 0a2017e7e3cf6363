/*
NAME
  dispatch.go

DESCRIPTION
  dispatch.go implements the generic demuxer -> decoder dispatch loop: for
  each elementary stream a container's NADemuxer exposes, resolve and
  initialise a registered NADecoder, then pump packets to their stream's
  decoder until the demuxer reports end of stream, handing decoded frames
  to the caller's handler. This mirrors the run/stop/error-channel shape of
  revid.Revid's Start/Stop/processFrom, generalised away from a specific
  capture device toward any NADemuxer.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pipeline drives a registered NADecoder from a NADemuxer's packet
// stream, and supplies the ambient logging the rest of this module takes
// as an optional dependency.
package pipeline

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/format"
	"github.com/ausocean/nihav/frame"
	"github.com/ausocean/nihav/register"
)

// Default video buffer pool sizing: enough slots for a decoder's own
// reference frame plus the one currently being written into and up to two
// more in flight to the caller's handler.
const (
	defaultPoolAlignment = 16
	defaultPoolSlots     = 4
)

// FrameHandler receives one decoded frame from the stream it belongs to.
// streamID matches the frame.Stream.ID the frame's packet was demuxed
// from. A handler that returns an error stops the dispatcher.
type FrameHandler func(streamID uint32, fr *frame.Frame) error

type streamState struct {
	decoder nihav.NADecoder
	support *nihav.NADecoderSupport
}

// Dispatcher drives one NADemuxer, routing each demuxed packet to the
// NADecoder registered for its stream's codec short name.
type Dispatcher struct {
	demux    nihav.NADemuxer
	registry *register.DecoderRegistry
	logger   nihav.Logger
	handler  FrameHandler

	streams map[uint32]*streamState

	wg      sync.WaitGroup
	errc    chan error
	stop    chan struct{}
	running bool
}

// NewDispatcher returns a Dispatcher for demux, resolving each stream's
// decoder from registry. logger may be nil, in which case diagnostics are
// discarded.
func NewDispatcher(demux nihav.NADemuxer, registry *register.DecoderRegistry, logger nihav.Logger, handler FrameHandler) *Dispatcher {
	return &Dispatcher{
		demux:    demux,
		registry: registry,
		logger:   logger,
		handler:  handler,
		streams:  make(map[uint32]*streamState),
	}
}

// Open opens the demuxer and initialises a decoder for every stream it
// reports, returning an error if any stream's codec isn't registered or
// fails to initialise.
func (d *Dispatcher) Open() error {
	if err := d.demux.Open(); err != nil {
		return errors.Wrap(err, "pipeline: demuxer open failed")
	}

	for i := 0; i < d.demux.NumStreams(); i++ {
		st := d.demux.Stream(i)

		factory := d.registry.FindDecoder(st.Codec.Name)
		if factory == nil {
			return errors.Errorf("pipeline: no decoder registered for %q", st.Codec.Name)
		}
		dec := factory()

		support := &nihav.NADecoderSupport{Logger: d.logger}
		if support.Logger == nil {
			support.Logger = nihav.NewSupport(nil).Logger
		}
		if st.Type == frame.Video && st.Codec.Video != nil {
			vi := st.Codec.Video
			fmtn := vi.Format
			if len(fmtn.Components) == 0 {
				fmtn = format.YUV420Formaton
			}
			support.Pool = frame.NewVideoBufferPool(fmtn, vi.Width, vi.Height, defaultPoolAlignment, defaultPoolSlots)
		}

		if err := dec.Init(support, st.Codec); err != nil {
			return errors.Wrapf(err, "pipeline: init decoder %q for stream %d", st.Codec.Name, st.ID)
		}

		d.streams[st.ID] = &streamState{decoder: dec, support: support}
		if d.logger != nil {
			d.logger.Info("decoder initialised", "stream", st.ID, "codec", st.Codec.Name)
		}
	}
	return nil
}

// Start begins pumping packets on a background goroutine; errors
// encountered are sent to the channel returned by Errors.
func (d *Dispatcher) Start() {
	if d.running {
		return
	}
	d.stop = make(chan struct{})
	d.errc = make(chan error, 1)
	d.running = true

	d.wg.Add(1)
	go d.run()
}

// Errors returns the channel a Start'd dispatcher's terminal error (if
// any) is sent to before it stops running.
func (d *Dispatcher) Errors() <-chan error { return d.errc }

// Stop signals the dispatch loop to exit and waits for it to finish.
func (d *Dispatcher) Stop() {
	if !d.running {
		return
	}
	close(d.stop)
	d.wg.Wait()
	d.running = false
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	defer close(d.errc)

	for {
		select {
		case <-d.stop:
			return
		default:
		}

		pkt, err := d.demux.GetFrame()
		if err != nil {
			if errors.Cause(err) != nihav.ErrEOF {
				d.errc <- err
			}
			return
		}

		ss, ok := d.streams[pkt.StreamID]
		if !ok {
			if d.logger != nil {
				d.logger.Warning("packet for unknown stream", "stream", pkt.StreamID)
			}
			continue
		}

		fr, err := ss.decoder.Decode(ss.support, pkt)
		if err != nil {
			d.errc <- errors.Wrapf(err, "pipeline: decode failed on stream %d", pkt.StreamID)
			return
		}
		if fr == nil {
			continue
		}
		if d.handler != nil {
			if err := d.handler(pkt.StreamID, fr); err != nil {
				d.errc <- err
				return
			}
		}
	}
}

// Close flushes every stream's decoder, discarding held reference frames.
func (d *Dispatcher) Close() {
	for _, ss := range d.streams {
		ss.decoder.Flush()
	}
}
