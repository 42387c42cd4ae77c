package splash

import (
	"math"

	pkgerrors "github.com/pkg/errors"

	"github.com/google/uuid"
)

// Encoder holds the persistent canvas and error vectors for one encode
// session. Frames must be encoded in order; the canvas the engine paints
// onto at frame N is exactly the canvas frame N-1 left behind.
type Encoder struct {
	SessionID uuid.UUID

	width, height int
	opts          Options

	canvas *Canvas
	errors *ErrorVectors

	// frameNumber counts Encode calls on this instance. The reference
	// picks ppk over ppf only for frame 0 of the whole session
	// (AVCodecContext.frame_number == 0), not "first frame this call".
	frameNumber int
}

// NewEncoder opens an encoder for a width x height session with the given
// options. The canvas starts solid gray50; it is not reseeded between
// frames.
func NewEncoder(width, height int, opts Options) (*Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	canvas, err := NewCanvas(width, height)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "splash: open encoder")
	}

	return &Encoder{
		SessionID: uuid.New(),
		width:     width,
		height:    height,
		opts:      opts,
		canvas:    canvas,
		errors:    NewErrorVectors(width, height),
	}, nil
}

// encodeSampler reads source pixels from the target frame and appends
// every sampled triple to the outgoing packet.
type encodeSampler struct {
	frame     *Frame
	out       *writer
	numPixels *int
}

func (s *encodeSampler) Sample(x, y int) (r, g, b byte, err error) {
	r, g, b = s.frame.at(x, y)
	s.out.writeTriple(r, g, b)
	*s.numPixels++
	return r, g, b, nil
}

// Encode codes one frame against the encoder's persistent canvas,
// returning the coded packet and any non-fatal diagnostics raised while
// doing so (spec.md §4.C, §7).
func (e *Encoder) Encode(frame *Frame) (*Packet, []Warning, error) {
	if frame.Width != e.width || frame.Height != e.height {
		return nil, nil, pkgerrors.Errorf(
			"splash: encode frame %d: frame is %dx%d, encoder opened for %dx%d",
			e.frameNumber, frame.Width, frame.Height, e.width, e.height)
	}

	capacity := (HeaderLength + e.width + e.height + e.width*e.height) * 3
	w := newWriter(capacity)
	writeHeader(w, byte(e.opts.Radius))

	e.errors.reset()
	for i := 0; i < e.width; i++ {
		var sum uint32
		for j := 0; j < e.height; j++ {
			cr, cg, cb := e.canvas.At(i, j)
			fr, fg, fb := frame.at(i, j)
			sum += absDiff(cr, fr) + absDiff(cg, fg) + absDiff(cb, fb)
		}
		sum = clampError(sum)
		e.errors.X[i] = sum
		w.writeUint24LE(sum)
	}
	for j := 0; j < e.height; j++ {
		var sum uint32
		for i := 0; i < e.width; i++ {
			cr, cg, cb := e.canvas.At(i, j)
			fr, fg, fb := frame.at(i, j)
			sum += absDiff(cr, fr) + absDiff(cg, fg) + absDiff(cb, fb)
		}
		sum = clampError(sum)
		e.errors.Y[j] = sum
		w.writeUint24LE(sum)
	}

	var rate float64
	if e.frameNumber == 0 {
		rate = e.opts.PPK
	} else {
		rate = e.opts.PPF
	}
	maxPixels := int(math.Round(float64(e.width*e.height) / rate))

	numPixels := 0
	sampler := &encodeSampler{frame: frame, out: w, numPixels: &numPixels}
	engine := NewEngine(e.canvas, e.errors, e.opts.Radius)

	for numPixels < maxPixels {
		cont, err := engine.Step(sampler)
		if err != nil {
			return nil, nil, pkgerrors.Wrapf(err, "splash: encode frame %d", e.frameNumber)
		}
		if !cont {
			break
		}
	}

	var warnings []Warning
	if e.opts.PPF == 1 {
		if mismatches := e.countMismatches(frame); mismatches > 0 {
			warnings = append(warnings, newInaccurateFinalPixelsWarning(e.frameNumber, mismatches))
		}
	}

	pkt := &Packet{Data: w.buf, Keyframe: true}
	e.frameNumber++
	return pkt, warnings, nil
}

// countMismatches compares the canvas against the source frame, channel
// by channel, matching the reference's end-of-encode accuracy diagnostic.
func (e *Encoder) countMismatches(frame *Frame) int {
	count := 0
	for j := 0; j < e.height; j++ {
		for i := 0; i < e.width; i++ {
			cr, cg, cb := e.canvas.At(i, j)
			fr, fg, fb := frame.at(i, j)
			if cr != fr {
				count++
			}
			if cg != fg {
				count++
			}
			if cb != fb {
				count++
			}
		}
	}
	return count
}

func absDiff(a, b byte) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}
