/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the decoder and demuxer error taxonomies shared across
  this module (spec.md §6-7): sentinel errors that propagate unchanged to
  callers, wrapped with context via github.com/pkg/errors as they cross
  package boundaries.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package nihav defines the decoder and demuxer traits that every codec and
// container package in this module implements, and the error taxonomy they
// report through.
package nihav

import "github.com/pkg/errors"

// Decoder errors. A decoder never panics on malformed input; every failure
// mode is one of these, returned unchanged up to the caller (spec.md §7).
var (
	ErrInvalidData      = errors.New("nihav: invalid data")
	ErrShortData        = errors.New("nihav: short data")
	ErrMissingReference = errors.New("nihav: missing reference frame")
	ErrNotImplemented   = errors.New("nihav: not implemented")
	ErrBug              = errors.New("nihav: internal bug")
)

// Demuxer errors.
var (
	ErrIOError       = errors.New("nihav: io error")
	ErrNoSuchInput   = errors.New("nihav: no such input")
	ErrEOF           = errors.New("nihav: end of stream")
	ErrMemoryError   = errors.New("nihav: memory error")
	ErrSeekError     = errors.New("nihav: seek error")
)
