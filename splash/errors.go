// Package splash implements the Splash codec: a sparse-sample image/video
// codec that paints a persistent canvas from a deterministic schedule
// driven by two per-axis error vectors.
package splash

import "errors"

// Sentinel errors returned by the core codec. Resource-exhaustion and
// malformed-bitstream failures are fatal (propagate to the caller), as is
// a packet too short to hold the header or the error vectors; pixel data
// that ends early surfaces as a Warning returned by Decoder.Decode
// instead, per §7.
var (
	// ErrInvalidDimensions is returned when W or H is not positive.
	ErrInvalidDimensions = errors.New("splash: invalid width/height")

	// ErrInvalidRadius is returned when the brush radius is less than 1.
	ErrInvalidRadius = errors.New("splash: radius must be >= 1")

	// ErrInvalidRate is returned when ppf/ppk is less than 1.
	ErrInvalidRate = errors.New("splash: ppf/ppk must be >= 1")

	// ErrHeaderTooShort is returned when a packet is shorter than the
	// 12-byte header, or when its header-length field is not 12.
	ErrHeaderTooShort = errors.New("splash: packet shorter than header")

	// ErrBadMagic is returned when the 6-byte "splash" magic does not match.
	ErrBadMagic = errors.New("splash: bad magic")

	// ErrUnsupportedVersion is returned for a header version other than 1.
	ErrUnsupportedVersion = errors.New("splash: unsupported version")

	// ErrShortBody is returned when the packet body is too short to hold
	// the initial error vectors.
	ErrShortBody = errors.New("splash: body shorter than error vectors")
)
