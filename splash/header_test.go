package splash

import "testing"

func TestWriteParseHeaderRoundTrip(t *testing.T) {
	w := newWriter(HeaderLength)
	writeHeader(w, 5)

	if len(w.buf) != HeaderLength {
		t.Fatalf("header length = %d, want %d", len(w.buf), HeaderLength)
	}

	hdr, err := parseHeader(w.buf)
	if err != nil {
		t.Fatalf("parseHeader failed: %v", err)
	}
	if hdr.Radius != 5 {
		t.Errorf("hdr.Radius = %d, want 5", hdr.Radius)
	}

	wantBytes := []byte{12, 0, 0, 's', 'p', 'l', 'a', 's', 'h', 1, 5, 0}
	for i, b := range wantBytes {
		if w.buf[i] != b {
			t.Errorf("header byte %d = %#x, want %#x", i, w.buf[i], b)
		}
	}
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	buf := []byte{12, 0, 0, 'x', 'x', 'x', 'x', 'x', 'x', 1, 5, 0}
	if _, err := parseHeader(buf); err == nil {
		t.Error("parseHeader accepted a bad magic")
	}
}

func TestParseHeaderRejectsUnsupportedVersion(t *testing.T) {
	buf := []byte{12, 0, 0, 's', 'p', 'l', 'a', 's', 'h', 2, 5, 0}
	if _, err := parseHeader(buf); err == nil {
		t.Error("parseHeader accepted an unsupported version")
	}
}

func TestParseHeaderRejectsShortPacket(t *testing.T) {
	if _, err := parseHeader([]byte{1, 2, 3}); err != ErrHeaderTooShort {
		t.Errorf("parseHeader error = %v, want ErrHeaderTooShort", err)
	}
}
