// Package codec provides the adapter boundary between a Splash codec
// session and a host media framework: the host hands a Codec an RGB0
// frame and gets back a packet, or hands it a packet and gets back an
// RGB0 frame. Everything about how a frame is coded lives in package
// splash; this package only wires an instance into something a host can
// look up by name or four-character code and call generically.
package codec

import "github.com/rockingship/splash/splash"

// Codec is the boundary contract a host media framework sees: encode a
// frame to a packet, decode a packet to a frame, or identify itself.
type Codec interface {
	// Encode codes one RGB0 frame against this codec instance's
	// persistent state.
	Encode(frame *splash.Frame) (*splash.Packet, []splash.Warning, error)

	// Decode parses one packet against this codec instance's persistent
	// state, returning the reconstructed RGB0 frame.
	Decode(pkt []byte) (*splash.Frame, []splash.Warning, error)

	// FourCC returns the four-character code a container uses to tag
	// this coded format.
	FourCC() string

	// Name returns a human-readable name.
	Name() string
}
