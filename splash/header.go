package splash

import pkgerrors "github.com/pkg/errors"

// HeaderLength is the fixed size of the Splash frame header (§6).
const HeaderLength = 12

var magic = [6]byte{'s', 'p', 'l', 'a', 's', 'h'}

const headerVersion = 1

// header mirrors the 12-byte layout from §6:
//
//	0  3  header length, little-endian, always HeaderLength
//	3  6  magic "splash"
//	9  1  version, always 1
//	10 1  brush radius
//	11 1  reserved compression flag, always 0
type header struct {
	Radius byte
}

func writeHeader(w *writer, radius byte) {
	w.writeByte(HeaderLength)
	w.writeByte(0)
	w.writeByte(0)
	for _, c := range magic {
		w.writeByte(c)
	}
	w.writeByte(headerVersion)
	w.writeByte(radius)
	w.writeByte(0)
}

// parseHeader reads and validates the 12-byte header. The reference
// implementation never validates magic or version on decode (spec.md §7
// notes this is allowed either way); this codec validates, since doing so
// costs nothing on a conforming stream and turns silent misdecodes into a
// clear error.
func parseHeader(pkt []byte) (header, error) {
	if len(pkt) < HeaderLength {
		return header{}, ErrHeaderTooShort
	}

	hdrLen := int(pkt[0]) | int(pkt[1])<<8 | int(pkt[2])<<16
	if hdrLen != HeaderLength {
		return header{}, pkgerrors.Wrapf(ErrHeaderTooShort, "header length field = %d", hdrLen)
	}
	for i, c := range magic {
		if pkt[3+i] != c {
			return header{}, ErrBadMagic
		}
	}
	if pkt[9] != headerVersion {
		return header{}, pkgerrors.Wrapf(ErrUnsupportedVersion, "got version %d", pkt[9])
	}

	return header{Radius: pkt[10]}, nil
}
