/*
NAME
  logging.go

DESCRIPTION
  logging.go builds the default file-backed logger a Dispatcher uses when
  the caller doesn't supply its own, wrapping a size-rotated
  lumberjack.Logger in the same structured Logger the teacher's cmd/rv and
  cmd/speaker entry points construct.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

import (
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/nihav"
	"github.com/ausocean/utils/logging"
)

// Default rotation parameters, matching cmd/rv's netsender.log settings.
const (
	defaultMaxSize   = 500 // MB
	defaultMaxBackup = 10
	defaultMaxAge    = 28 // days
)

// NewFileLogger returns a Logger that writes size- and age-rotated
// newline-delimited entries to path, at verbosity and above.
func NewFileLogger(path string, verbosity int8) nihav.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackup,
		MaxAge:     defaultMaxAge,
	}
	return logging.New(verbosity, fileLog, true)
}
