package splash

import "testing"

func TestDecodeRoundTripSinglePixel(t *testing.T) {
	enc, err := NewEncoder(1, 1, Options{Radius: 1, PPF: 1, PPK: 1})
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	frame := NewFrame(1, 1)
	frame.set(0, 0, 10, 20, 30)

	pkt, _, err := enc.Encode(frame)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dec, err := NewDecoder(1, 1)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	decoded, warnings, err := dec.Decode(pkt.Data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	r, g, b := decoded.Pix[0], decoded.Pix[1], decoded.Pix[2]
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("decoded pixel = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	if decoded.Pix[3] != 255 {
		t.Errorf("decoded alpha = %d, want 255", decoded.Pix[3])
	}
	if !decoded.Keyframe {
		t.Error("decoded frame should be marked as a keyframe")
	}
}

// TestDecodeTruncatedPacketWarnsAndReturnsPartialCanvas covers scenario
// S5: a packet truncated mid-body yields a best-effort canvas and a
// single "Incomplete scan line" warning, without an error.
func TestDecodeTruncatedPacketWarnsAndReturnsPartialCanvas(t *testing.T) {
	width, height := 16, 16
	enc, err := NewEncoder(width, height, Options{Radius: 3, PPF: 1, PPK: 1})
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	frame := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.set(x, y, byte(x*16), byte(y*16), byte((x+y)*8))
		}
	}
	pkt, _, err := enc.Encode(frame)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	bodyLen := len(pkt.Data) - HeaderLength
	truncated := append([]byte(nil), pkt.Data[:HeaderLength+bodyLen/2]...)

	dec, err := NewDecoder(width, height)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	decoded, warnings, err := dec.Decode(truncated)
	if err != nil {
		t.Fatalf("Decode should not fail on a truncated packet: %v", err)
	}
	if decoded == nil {
		t.Fatal("Decode returned a nil frame for a truncated packet")
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if warnings[0].Kind != WarningIncompleteScanLine {
		t.Errorf("warning kind = %v, want WarningIncompleteScanLine", warnings[0].Kind)
	}
}

func TestDecodeRejectsShortBody(t *testing.T) {
	w := newWriter(HeaderLength)
	writeHeader(w, 5)
	// No error vectors at all for a 4x4 frame.
	if _, err := NewDecoder(4, 4); err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	dec, _ := NewDecoder(4, 4)
	if _, _, err := dec.Decode(w.buf); err == nil {
		t.Error("Decode accepted a body too short to hold the error vectors")
	}
}

// TestEncodeDecodeDeterminism covers property 1 from spec.md §8: encoding
// then decoding the same sequence of frames on fresh encoder/decoder
// instances produces byte-identical canvases at every frame boundary.
func TestEncodeDecodeDeterminism(t *testing.T) {
	width, height := 12, 9
	opts := Options{Radius: 4, PPF: 3, PPK: 2}

	frames := []*splashTestFrame{
		gradientFrame(width, height, 0),
		gradientFrame(width, height, 1),
		gradientFrame(width, height, 2),
	}

	enc, err := NewEncoder(width, height, opts)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	dec, err := NewDecoder(width, height)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	for i, f := range frames {
		pkt, _, err := enc.Encode(f.frame)
		if err != nil {
			t.Fatalf("Encode frame %d failed: %v", i, err)
		}
		decoded, _, err := dec.Decode(pkt.Data)
		if err != nil {
			t.Fatalf("Decode frame %d failed: %v", i, err)
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				cr, cg, cb := enc.canvas.At(x, y)
				dr, dg, db := decoded.Pix[y*decoded.Stride+x*4], decoded.Pix[y*decoded.Stride+x*4+1], decoded.Pix[y*decoded.Stride+x*4+2]
				if cr != dr || cg != dg || cb != db {
					t.Fatalf("frame %d pixel (%d,%d): encoder canvas (%d,%d,%d) != decoded (%d,%d,%d)",
						i, x, y, cr, cg, cb, dr, dg, db)
				}
			}
		}
	}
}

type splashTestFrame struct {
	frame *Frame
}

func gradientFrame(width, height, phase int) *splashTestFrame {
	frame := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.set(x, y, byte((x+phase)*8), byte((y+phase)*8), byte((x+y+phase)*4))
		}
	}
	return &splashTestFrame{frame: frame}
}
