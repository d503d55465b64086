// Package draw renders line segments, polylines, circles and arcs by
// stretching a single opaque unit pixel between endpoints. It owns no
// graphics resources of its own: the unit texture and the per-frame batch
// are collaborators supplied at construction, so the package stays free of
// any rendering backend.
package draw

import (
	"errors"
	"image/color"
	"math"

	"linework/internal/geom"
)

var (
	// ErrInvalidDependency reports a Renderer constructed without a valid
	// texture or batch collaborator.
	ErrInvalidDependency = errors.New("draw: renderer requires a texture and a batch")
	// ErrDisposed reports use of a Renderer after its texture was released.
	ErrDisposed = errors.New("draw: renderer is disposed")
)

// Quad is one submission to the batch: the unit pixel positioned at Pos,
// rotated by Rotation and stretched to Scale (length along the segment,
// thickness across it), tinted by Color.
type Quad struct {
	Pos      geom.Vec
	Rotation float64
	Scale    geom.Vec
	Color    color.RGBA
}

// Texture is the renderer's single-pixel draw resource. It is released
// exactly once when the Renderer is disposed.
type Texture interface {
	Dispose()
}

// QuadBatch collects quad submissions for the current frame. Rasterization
// and presentation are the batch owner's concern.
type QuadBatch interface {
	Append(q Quad)
}

// Renderer composes all shapes out of single stretched-quad submissions.
type Renderer struct {
	tex      Texture
	batch    QuadBatch
	gen      *geom.Generator
	disposed bool
}

// New constructs a Renderer around the given collaborators. Both are
// required; a nil texture or batch is rejected here rather than on first
// draw.
func New(tex Texture, batch QuadBatch) (*Renderer, error) {
	if tex == nil || batch == nil {
		return nil, ErrInvalidDependency
	}
	return &Renderer{tex: tex, batch: batch, gen: geom.NewGenerator()}, nil
}

// Dispose releases the unit texture. The first call releases it exactly
// once; any further call, like any draw after disposal, reports ErrDisposed.
func (r *Renderer) Dispose() error {
	if r.disposed {
		return ErrDisposed
	}
	r.disposed = true
	r.tex.Dispose()
	return nil
}

// Line submits one quad spanning p1 to p2: scaled to the segment length and
// the given thickness, rotated to the segment's angle.
func (r *Renderer) Line(p1, p2 geom.Vec, clr color.RGBA, thickness float64) error {
	if r.disposed {
		return ErrDisposed
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	r.batch.Append(Quad{
		Pos:      p1,
		Rotation: math.Atan2(dy, dx),
		Scale:    geom.Vec{X: math.Hypot(dx, dy), Y: thickness},
		Color:    clr,
	})
	return nil
}

// Points draws the polyline connecting pts, each point translated by
// origin. Fewer than two points is a no-op, not an error.
func (r *Renderer) Points(origin geom.Vec, pts []geom.Vec, clr color.RGBA, thickness float64) error {
	if r.disposed {
		return ErrDisposed
	}
	for i := 1; i < len(pts); i++ {
		if err := r.Line(pts[i-1].Add(origin), pts[i].Add(origin), clr, thickness); err != nil {
			return err
		}
	}
	return nil
}

// Circle draws the outline of a circle centered at center, approximated by
// the given number of sides. The outline geometry is cached across calls.
func (r *Renderer) Circle(center geom.Vec, radius float64, sides int, clr color.RGBA, thickness float64) error {
	if r.disposed {
		return ErrDisposed
	}
	pts, err := r.gen.Circle(radius, sides)
	if err != nil {
		return err
	}
	return r.Points(center, pts, clr, thickness)
}

// Arc draws the outline of a circular arc centered at center, sweeping the
// given radians from the start angle.
func (r *Renderer) Arc(center geom.Vec, radius float64, sides int, start, sweep float64, clr color.RGBA, thickness float64) error {
	if r.disposed {
		return ErrDisposed
	}
	pts, err := r.gen.Arc(radius, sides, start, sweep)
	if err != nil {
		return err
	}
	return r.Points(center, pts, clr, thickness)
}
