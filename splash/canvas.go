package splash

// grayFill is the initial canvas value for each of R, G, B at codec open.
const grayFill = 0x7f

// maxError24 is the clamp applied to freshly seeded error-vector entries.
const maxError24 = 0xffffff

// Canvas is the persistent W×H RGB bitmap a codec instance reconstructs
// into. It outlives any single frame: the encoder keeps painting on top
// of the previous frame's canvas, and the decoder's canvas is the
// decoded picture.
//
// Pixels are stored as three bytes (R, G, B) per sample, row-major,
// width*3 bytes per row. The host-facing RGB0 conversion (4 bytes per
// pixel, alpha forced to 255) happens only at the Component C boundary.
type Canvas struct {
	Width  int
	Height int
	pix    []byte // len == Width*Height*3
}

// NewCanvas allocates a Width×Height canvas and fills it with solid
// gray50 (0x7f in each channel), matching splash_init in the reference.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		pix:    make([]byte, width*height*3),
	}
	for i := range c.pix {
		c.pix[i] = grayFill
	}
	return c, nil
}

// At returns the (r, g, b) triple at (x, y).
func (c *Canvas) At(x, y int) (r, g, b byte) {
	k := (y*c.Width + x) * 3
	return c.pix[k], c.pix[k+1], c.pix[k+2]
}

// Set writes (r, g, b) at (x, y).
func (c *Canvas) Set(x, y int, r, g, b byte) {
	k := (y*c.Width + x) * 3
	c.pix[k], c.pix[k+1], c.pix[k+2] = r, g, b
}

// ErrorVectors holds the two 24-bit error accumulators that drive the
// splash schedule. They are reseeded wholesale at the start of every
// frame (Component C); within a frame the Splash Engine only ever
// shrinks entries toward zero.
type ErrorVectors struct {
	X []uint32 // len == Width, one entry per column
	Y []uint32 // len == Height, one entry per row
}

// NewErrorVectors allocates zeroed X/Y error vectors sized from the
// canvas dimensions. The encoder and decoder both reseed these in
// place before each frame rather than reallocating, mirroring the
// reference's single long-lived SplashContext allocation.
func NewErrorVectors(width, height int) *ErrorVectors {
	return &ErrorVectors{
		X: make([]uint32, width),
		Y: make([]uint32, height),
	}
}

// reset zeroes both vectors in place, for reuse across frames without
// reallocating.
func (e *ErrorVectors) reset() {
	for i := range e.X {
		e.X[i] = 0
	}
	for j := range e.Y {
		e.Y[j] = 0
	}
}

func clampError(v uint32) uint32 {
	if v > maxError24 {
		return maxError24
	}
	return v
}
