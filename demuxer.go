/*
NAME
  demuxer.go

DESCRIPTION
  demuxer.go declares the NADemuxer trait: the generic container-reading
  surface this module's core consumes. Concrete container parsers
  (AVI, RealMedia, VMD, GDV, …) are out of scope per spec.md §1 and are
  external collaborators behind this interface.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package nihav

import "github.com/ausocean/nihav/frame"

// NADemuxer is the trait a container parser implements so that
// pipeline.Dispatcher can drive it generically.
type NADemuxer interface {
	// Open prepares the demuxer to read packets; it is called once, before
	// the first GetFrame.
	Open() error

	// NumStreams returns the number of elementary streams found in Open.
	NumStreams() int

	// Stream returns the i'th stream's descriptor, 0 <= i < NumStreams().
	Stream(i int) frame.Stream

	// GetFrame returns the next packet in decode order, or ErrEOF.
	GetFrame() (*frame.Packet, error)

	// Seek moves the read position to the given time (in seconds); returns
	// ErrNotImplemented if the underlying format has no index to seek by.
	Seek(timeSeconds float64) error
}
