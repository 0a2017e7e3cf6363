/*
NAME
  registry.go

DESCRIPTION
  registry.go implements the named decoder/demuxer/encoder/muxer/packetiser
  registries: each a mutable list of {short_name, factory} pairs, found by a
  linear scan.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package register holds the named lookup tables the pipeline uses to turn
// a stream's registered short name into a decoder/demuxer/encoder/muxer
// factory, the fourcc/twocc-to-short-name tables, and format
// auto-detection.
package register

import "github.com/ausocean/nihav"

// DecoderFactory constructs a fresh, uninitialized decoder instance.
type DecoderFactory func() nihav.NADecoder

type decoderEntry struct {
	name    string
	factory DecoderFactory
}

// DecoderRegistry is a mutable {short_name, factory} list for decoders.
type DecoderRegistry struct {
	entries []decoderEntry
}

// NewDecoderRegistry returns an empty registry.
func NewDecoderRegistry() *DecoderRegistry { return &DecoderRegistry{} }

// AddDecoder registers a factory under name, replacing any existing
// registration with the same name (later registrations win, matching the
// "register-everything" assembly's last-wins semantics).
func (r *DecoderRegistry) AddDecoder(name string, factory DecoderFactory) {
	for i, e := range r.entries {
		if e.name == name {
			r.entries[i].factory = factory
			return
		}
	}
	r.entries = append(r.entries, decoderEntry{name: name, factory: factory})
}

// FindDecoder linear-scans for name, returning nil if not registered.
func (r *DecoderRegistry) FindDecoder(name string) DecoderFactory {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory
		}
	}
	return nil
}

// DemuxerFactory constructs a fresh demuxer bound to raw container bytes.
type DemuxerFactory func(data []byte) nihav.NADemuxer

type demuxerEntry struct {
	name    string
	factory DemuxerFactory
}

// DemuxerRegistry is a mutable {short_name, factory} list for demuxers.
type DemuxerRegistry struct {
	entries []demuxerEntry
}

func NewDemuxerRegistry() *DemuxerRegistry { return &DemuxerRegistry{} }

func (r *DemuxerRegistry) AddDemuxer(name string, factory DemuxerFactory) {
	for i, e := range r.entries {
		if e.name == name {
			r.entries[i].factory = factory
			return
		}
	}
	r.entries = append(r.entries, demuxerEntry{name: name, factory: factory})
}

func (r *DemuxerRegistry) FindDemuxer(name string) DemuxerFactory {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory
		}
	}
	return nil
}

// EncoderFactory and MuxerFactory/PacketiserFactory mirror DecoderFactory
// and DemuxerFactory for the encode-side registries spec.md §6 names; this
// module implements no concrete encoder, muxer or packetiser, but the
// registries themselves are still part of the core pipeline surface.
type EncoderFactory func() interface{ Encode([]byte) ([]byte, error) }
type MuxerFactory func() interface{ Mux([]byte) error }
type PacketiserFactory func() interface{ Packetise([]byte) ([][]byte, error) }

type genericEntry struct {
	name    string
	factory interface{}
}

// GenericRegistry is a {name, factory} list usable for encoder, muxer and
// packetiser factories alike, since all three have identical add/find
// semantics and differ only in the factory's static type.
type GenericRegistry struct {
	entries []genericEntry
}

func NewGenericRegistry() *GenericRegistry { return &GenericRegistry{} }

func (r *GenericRegistry) Add(name string, factory interface{}) {
	for i, e := range r.entries {
		if e.name == name {
			r.entries[i].factory = factory
			return
		}
	}
	r.entries = append(r.entries, genericEntry{name: name, factory: factory})
}

func (r *GenericRegistry) Find(name string) interface{} {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory
		}
	}
	return nil
}
