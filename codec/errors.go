package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry.
	ErrCodecNotFound = errors.New("codec not found")

	// ErrCodecCollision is returned by Register when a name or FourCC key
	// is already claimed by a different codec identity.
	ErrCodecCollision = errors.New("codec: name/FourCC already registered to a different codec")
)
