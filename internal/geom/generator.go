// Package geom synthesizes circle and arc outlines as ordered point
// sequences. Circle rings are memoized per (radius, sides) pair because the
// same outline is typically requested every frame.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams reports geometry parameters that would produce a
// degenerate or out-of-range point sequence.
var ErrInvalidParams = errors.New("geom: invalid geometry parameters")

// Generator produces circle and arc point sequences. Circle results are
// cached for the lifetime of the Generator; the zero value is not usable,
// construct with NewGenerator.
type Generator struct {
	circles *circleCache
}

// NewGenerator constructs a Generator with an empty circle cache.
func NewGenerator() *Generator {
	return &Generator{circles: newCircleCache()}
}

// Circle returns sides+1 points approximating a circle of the given radius,
// evenly spaced counter-clockwise from angle 0, with the first point
// duplicated at the end to close the loop. The returned slice is shared with
// every other caller requesting the same (radius, sides) pair and must not
// be mutated.
func (g *Generator) Circle(radius float64, sides int) ([]Vec, error) {
	if err := checkCircleParams(radius, sides); err != nil {
		return nil, err
	}
	return g.circles.getOrCreate(circleKey{radius: radius, sides: sides}, func() []Vec {
		return circlePoints(radius, sides)
	}), nil
}

// Arc returns the points covering the sweep (in radians) of a circle
// outline, starting from the side boundary nearest to start. The result has
// one point per covered side plus the starting point; a sweep of one
// anglePerSide step yields the two endpoints of a single side and a sweep of
// 2π yields the full closed ring. The result is freshly allocated and safe
// to mutate.
func (g *Generator) Arc(radius float64, sides int, start, sweep float64) ([]Vec, error) {
	if err := checkCircleParams(radius, sides); err != nil {
		return nil, err
	}
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return nil, fmt.Errorf("%w: start angle %v is not finite", ErrInvalidParams, start)
	}
	if sweep < 0 || math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		return nil, fmt.Errorf("%w: sweep %v must be finite and non-negative", ErrInvalidParams, sweep)
	}

	step := 2 * math.Pi / float64(sides)

	// Number of whole sides covered by the sweep, rounded half up. A sweep
	// meaningfully past a full circle has no valid truncation range.
	sidesInArc := int(sweep/step + 0.5)
	if sidesInArc > sides {
		return nil, fmt.Errorf("%w: sweep %v covers %d sides but the ring has only %d", ErrInvalidParams, sweep, sidesInArc, sides)
	}

	ring, err := g.Circle(radius, sides)
	if err != nil {
		return nil, err
	}

	// Align the ring's first point to the side boundary nearest to start.
	// Equivalent to rotating the ring left while the midpoint of the leading
	// step is still below start, expressed as an index offset so the shared
	// cached slice is never touched.
	shift := int(math.Ceil(start/step - 0.5))
	if shift < 0 {
		shift = 0
	}
	shift %= sides

	out := make([]Vec, sidesInArc+1)
	for i := range out {
		out[i] = ring[(i+shift)%sides]
	}
	return out, nil
}

func checkCircleParams(radius float64, sides int) error {
	if sides < 1 {
		return fmt.Errorf("%w: sides must be >= 1, got %d", ErrInvalidParams, sides)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: radius must be finite and positive, got %v", ErrInvalidParams, radius)
	}
	return nil
}

func circlePoints(radius float64, sides int) []Vec {
	step := 2 * math.Pi / float64(sides)
	pts := make([]Vec, 0, sides+1)
	for i := 0; i < sides; i++ {
		a := step * float64(i)
		pts = append(pts, Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return append(pts, pts[0])
}
