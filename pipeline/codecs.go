/*
NAME
  codecs.go

DESCRIPTION
  codecs.go assembles the DecoderRegistry every Dispatcher needs, binding
  the registered short names register/codecinfo.go describes to the
  decoder constructors this module actually ships. This mirrors the
  "register everything" assembly a nihav-core build performs at startup.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

import (
	"github.com/ausocean/nihav"
	"github.com/ausocean/nihav/codec/binkaudio"
	"github.com/ausocean/nihav/codec/cinepak"
	"github.com/ausocean/nihav/codec/h263"
	"github.com/ausocean/nihav/codec/indeo2"
	"github.com/ausocean/nihav/codec/vmd"
	"github.com/ausocean/nihav/register"
)

// DefaultDecoders returns a registry carrying every decoder this module
// implements: H.263/RV20, Cinepak, VMD video and audio, Indeo 2, and both
// Bink Audio transform variants.
func DefaultDecoders() *register.DecoderRegistry {
	r := register.NewDecoderRegistry()

	r.AddDecoder("realvideo2", func() nihav.NADecoder { return &h263.Decoder{} })
	r.AddDecoder("vivo-video", func() nihav.NADecoder { return &h263.Decoder{} })

	r.AddDecoder("cinepak", func() nihav.NADecoder { return &cinepak.Decoder{} })

	r.AddDecoder("vmd-video", func() nihav.NADecoder { return &vmd.VideoDecoder{} })
	r.AddDecoder("vmd-audio", func() nihav.NADecoder { return &vmd.AudioDecoder{} })

	r.AddDecoder("indeo2", func() nihav.NADecoder { return &indeo2.Decoder{} })

	r.AddDecoder("bink-audio-dct", func() nihav.NADecoder { return &binkaudio.Decoder{UseDCT: true} })
	r.AddDecoder("bink-audio-rdft", func() nihav.NADecoder { return &binkaudio.Decoder{UseDCT: false} })

	return r
}
