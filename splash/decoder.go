package splash

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/google/uuid"
)

// Decoder holds the persistent canvas and error vectors for one decode
// session, mirroring Encoder.
type Decoder struct {
	SessionID uuid.UUID

	width, height int

	canvas *Canvas
	errors *ErrorVectors

	frameNumber int
}

// NewDecoder opens a decoder for a width x height session.
func NewDecoder(width, height int) (*Decoder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	canvas, err := NewCanvas(width, height)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "splash: open decoder")
	}
	return &Decoder{
		SessionID: uuid.New(),
		width:     width,
		height:    height,
		canvas:    canvas,
		errors:    NewErrorVectors(width, height),
	}, nil
}

// errShortRead signals the bitstream ran out mid-splash. It never escapes
// Decode: it is converted into a WarningIncompleteScanLine.
type errShortRead struct{}

func (errShortRead) Error() string { return "splash: short read" }

// decodeSampler consumes one RGB triple per call from the packet body.
type decodeSampler struct {
	in *reader
}

func (s *decodeSampler) Sample(x, y int) (r, g, b byte, err error) {
	rr, gg, bb, ok := s.in.readTriple()
	if !ok {
		return 0, 0, 0, errShortRead{}
	}
	return rr, gg, bb, nil
}

// Decode parses one coded packet against the decoder's persistent canvas
// and returns the reconstructed frame plus any non-fatal diagnostics
// (spec.md §4.C, §7).
func (d *Decoder) Decode(pkt []byte) (*Frame, []Warning, error) {
	hdr, err := parseHeader(pkt)
	if err != nil {
		return nil, nil, pkgerrors.Wrapf(err, "splash: decode frame %d", d.frameNumber)
	}

	body := pkt[HeaderLength:]
	need := (d.width + d.height) * 3
	if len(body) < need {
		return nil, nil, pkgerrors.Wrapf(ErrShortBody, "splash: decode frame %d", d.frameNumber)
	}

	r := newReader(body)
	d.errors.reset()
	for i := 0; i < d.width; i++ {
		v, _ := r.readUint24LE()
		d.errors.X[i] = v
	}
	for j := 0; j < d.height; j++ {
		v, _ := r.readUint24LE()
		d.errors.Y[j] = v
	}

	engine := NewEngine(d.canvas, d.errors, int(hdr.Radius))
	sampler := &decodeSampler{in: r}

	var warnings []Warning
	for {
		cont, stepErr := engine.Step(sampler)
		if stepErr != nil {
			if _, ok := stepErr.(errShortRead); ok {
				warnings = append(warnings, newIncompleteScanLineWarning(d.frameNumber))
				break
			}
			return nil, nil, pkgerrors.Wrapf(stepErr, "splash: decode frame %d", d.frameNumber)
		}
		if !cont {
			break
		}
		if r.remaining() <= 0 {
			break
		}
	}

	if r.remaining() != 0 && len(warnings) == 0 {
		warnings = append(warnings, newIncompleteScanLineWarning(d.frameNumber))
	}

	out := NewFrame(d.width, d.height)
	for j := 0; j < d.height; j++ {
		for i := 0; i < d.width; i++ {
			cr, cg, cb := d.canvas.At(i, j)
			out.set(i, j, cr, cg, cb)
		}
	}
	out.Keyframe = true

	d.frameNumber++
	return out, warnings, nil
}
