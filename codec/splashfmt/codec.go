// Package splashfmt adapts package splash to the codec.Codec interface so
// a host can look the Splash codec up from codec.Registry the same way it
// would any other registered format.
package splashfmt

import (
	"sync"

	"github.com/rockingship/splash/codec"
	"github.com/rockingship/splash/splash"
)

var _ codec.Codec = (*Adapter)(nil)

// Adapter wires a single Splash codec instance (one persistent encode
// session and one persistent decode session) into the codec.Codec
// interface. Encode geometry is fixed by the first frame Encode sees; a
// later frame of a different size is an error rather than a silent
// reinitialization, since Splash's canvas and error vectors are sized
// once at open. Decode geometry is whatever SetFrameSize last opened.
type Adapter struct {
	opts splash.Options

	mu  sync.Mutex
	enc *splash.Encoder
	dec *splash.Decoder
}

// New creates a Splash adapter with the given encoder options. Options
// only matter on the encode side; a decoder always takes its radius from
// the packet header.
func New(opts splash.Options) *Adapter {
	return &Adapter{opts: opts}
}

// FourCC returns the four-character code this codec tags packets with.
func (a *Adapter) FourCC() string { return "SPLS" }

// Name returns a human-readable name.
func (a *Adapter) Name() string { return "splash" }

// Encode codes frame against this adapter's persistent encode session,
// opening the session from frame's dimensions on first use.
func (a *Adapter) Encode(frame *splash.Frame) (*splash.Packet, []splash.Warning, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enc == nil {
		enc, err := splash.NewEncoder(frame.Width, frame.Height, a.opts)
		if err != nil {
			return nil, nil, err
		}
		a.enc = enc
	}
	return a.enc.Encode(frame)
}

// Decode parses pkt against this adapter's persistent decode session. It
// returns splash.ErrInvalidDimensions if SetFrameSize has not opened that
// session yet.
//
// The wire format does not carry width/height (the container does, per
// spec.md §6's "external collaborator" contract) — this adapter takes
// them from whatever the caller configured via SetFrameSize before the
// first Decode call.
func (a *Adapter) Decode(pkt []byte) (*splash.Frame, []splash.Warning, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.dec == nil {
		return nil, nil, splash.ErrInvalidDimensions
	}
	return a.dec.Decode(pkt)
}

// SetFrameSize opens this adapter's decode session for width x height.
// A host calls this once, from its own container metadata, before the
// first Decode.
func (a *Adapter) SetFrameSize(width, height int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	dec, err := splash.NewDecoder(width, height)
	if err != nil {
		return err
	}
	a.dec = dec
	return nil
}

func init() {
	if err := codec.Register(func() codec.Codec {
		return New(splash.DefaultOptions())
	}); err != nil {
		panic(err)
	}
}
