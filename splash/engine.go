package splash

import "math"

// Sampler is the one piece of per-iteration I/O the Splash Engine needs:
// given an exact-line crossing at canvas coordinate (x, y), produce the
// RGB triple to paint there. An encoder's Sampler reads the target frame
// and appends the triple to the outgoing bitstream; a decoder's Sampler
// consumes the next triple from the incoming bitstream. The engine itself
// never knows which.
type Sampler interface {
	Sample(x, y int) (r, g, b byte, err error)
}

// Engine is the shared painting algorithm (Component B of the spec):
// it picks the next worst row or column, samples one pixel per exact-line
// crossing, and paints a weighted disk into the canvas. It is identical
// for encode and decode; only the Sampler differs.
type Engine struct {
	Canvas *Canvas
	Errors *ErrorVectors
	Radius int
}

// NewEngine builds an engine over an existing canvas and error-vector pair.
func NewEngine(canvas *Canvas, errors *ErrorVectors, radius int) *Engine {
	return &Engine{Canvas: canvas, Errors: errors, Radius: radius}
}

// Step performs exactly one splash: it selects the worst axis, attenuates
// its error vector, and paints every exact-line crossing on the opposite
// axis. It reports false ("terminate") once both worst errors are zero.
func (e *Engine) Step(src Sampler) (bool, error) {
	worstXi, worstXerr := argmax(e.Errors.X)
	worstYj, worstYerr := argmax(e.Errors.Y)

	if worstXerr+worstYerr == 0 {
		return false, nil
	}

	// Ties go to the row path: the reference only switches to the
	// column path on a strict worstXerr > worstYerr.
	columnPath := worstXerr > worstYerr

	var center int
	if columnPath {
		center = worstXi
	} else {
		center = worstYj
	}

	if err := e.splash(columnPath, center, src); err != nil {
		return false, err
	}
	return true, nil
}

// splash runs one column-path or row-path iteration. columnPath selects
// which error vector is "primary" (the one being attenuated and zeroed);
// the other is "secondary" and is scanned for already-exact crossings.
func (e *Engine) splash(columnPath bool, center int, src Sampler) error {
	var primary, secondary []uint32
	var primaryLen, secondaryLen int
	if columnPath {
		primary, secondary = e.Errors.X, e.Errors.Y
		primaryLen, secondaryLen = e.Canvas.Width, e.Canvas.Height
	} else {
		primary, secondary = e.Errors.Y, e.Errors.X
		primaryLen, secondaryLen = e.Canvas.Height, e.Canvas.Width
	}

	minP, maxP := expandRange(primary, center, e.Radius, primaryLen)
	maxError := primary[center]
	attenuate(primary, minP, maxP, center, e.Radius)

	for s := 0; s < secondaryLen; s++ {
		if secondary[s] != 0 {
			continue
		}

		var x, y int
		if columnPath {
			x, y = center, s
		} else {
			x, y = s, center
		}

		srcR, srcG, srcB, err := src.Sample(x, y)
		if err != nil {
			return err
		}

		minS, maxS := expandRange(secondary, s, e.Radius, secondaryLen)

		for p := minP; p <= maxP; p++ {
			for ss := minS; ss <= maxS; ss++ {
				var xx, yy int
				if columnPath {
					xx, yy = p, ss
				} else {
					xx, yy = ss, p
				}

				dp := float64(p - center)
				ds := float64(ss - s)
				fillAlpha := float32(1) - float32(math.Sqrt(dp*dp+ds*ds))/float32(e.Radius)
				if fillAlpha <= 0 {
					continue
				}

				e.paint(xx, yy, srcR, srcG, srcB, maxError)
			}
		}
	}

	return nil
}

// paint blends one source triple into the canvas at (x, y), weighted by
// how exact its column and row currently are relative to maxError (the
// error the splash center held before attenuation).
func (e *Engine) paint(x, y int, srcR, srcG, srcB byte, maxError uint32) {
	xerr := float32(e.Errors.X[x]) / float32(maxError)
	yerr := float32(e.Errors.Y[y]) / float32(maxError)
	xyerr := (xerr + yerr) / 2

	alpha := 256 - roundFloat32(256*xyerr)
	if alpha < 1 {
		alpha = 1
	}
	if alpha > 256 {
		alpha = 256
	}

	oldR, oldG, oldB := e.Canvas.At(x, y)
	newR := byte((int(srcR)*alpha + int(oldR)*(256-alpha)) >> 8)
	newG := byte((int(srcG)*alpha + int(oldG)*(256-alpha)) >> 8)
	newB := byte((int(srcB)*alpha + int(oldB)*(256-alpha)) >> 8)
	e.Canvas.Set(x, y, newR, newG, newB)
}

// argmax returns the index and value of the largest entry in v, the
// first index winning ties (only a strict > advances the running max).
func argmax(v []uint32) (idx int, val uint32) {
	val = v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > val {
			idx, val = i, v[i]
		}
	}
	return idx, val
}

// expandRange grows [center, center] outward by up to radius-1 steps each
// side, stopping at the buffer edge or just before any neighbor whose
// error entry is already 0 (an exact line stops the splash from crossing it).
func expandRange(v []uint32, center, radius, length int) (min, max int) {
	min, max = center, center
	for r := 1; r < radius; r++ {
		if min == 0 || v[min-1] == 0 {
			break
		}
		min--
	}
	for r := 1; r < radius; r++ {
		if max >= length-1 || v[max+1] == 0 {
			break
		}
		max++
	}
	return min, max
}

// attenuate fades v within [min, max] toward the newly exact center: each
// entry is scaled by its distance from center over radius and rounded.
// Every entry but the center is snapped up to 1 if attenuation would
// otherwise zero it, since only the splash center is allowed to read as
// exact. The center itself is forced to exactly 0.
func attenuate(v []uint32, min, max, center, radius int) {
	for i := min; i <= max; i++ {
		if i == center {
			v[i] = 0
			continue
		}
		dist := i - center
		if dist < 0 {
			dist = -dist
		}
		alpha := float32(dist) / float32(radius)
		newVal := roundFloat32(float32(v[i]) * alpha)
		if newVal == 0 {
			newVal = 1
		}
		v[i] = uint32(newVal)
	}
}

// roundFloat32 rounds a non-negative float32 half away from zero, the way
// the reference's C round() behaves for the non-negative values that
// appear throughout this codec (error magnitudes and blend weights).
func roundFloat32(v float32) int {
	return int(v + 0.5)
}
