package draw

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"linework/internal/geom"
)

type recordBatch struct {
	quads []Quad
}

func (b *recordBatch) Append(q Quad) {
	b.quads = append(b.quads, q)
}

type fakeTexture struct {
	disposed int
}

func (t *fakeTexture) Dispose() {
	t.disposed++
}

func newTestRenderer(t *testing.T) (*Renderer, *fakeTexture, *recordBatch) {
	t.Helper()
	tex := &fakeTexture{}
	batch := &recordBatch{}
	r, err := New(tex, batch)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, tex, batch
}

func TestNewRejectsNilCollaborators(t *testing.T) {
	if _, err := New(nil, &recordBatch{}); !errors.Is(err, ErrInvalidDependency) {
		t.Fatalf("nil texture: expected ErrInvalidDependency, got %v", err)
	}
	if _, err := New(&fakeTexture{}, nil); !errors.Is(err, ErrInvalidDependency) {
		t.Fatalf("nil batch: expected ErrInvalidDependency, got %v", err)
	}
}

func TestLineSubmitsOneScaledRotatedQuad(t *testing.T) {
	r, _, batch := newTestRenderer(t)
	clr := color.RGBA{R: 255, G: 128, B: 0, A: 255}

	if err := r.Line(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 3, Y: 4}, clr, 2); err != nil {
		t.Fatal(err)
	}
	if len(batch.quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(batch.quads))
	}

	q := batch.quads[0]
	if q.Pos != (geom.Vec{X: 0, Y: 0}) {
		t.Fatalf("quad positioned at %v, expected p1", q.Pos)
	}
	if q.Scale.X != 5 {
		t.Fatalf("quad length %v, expected 5", q.Scale.X)
	}
	if q.Scale.Y != 2 {
		t.Fatalf("quad thickness %v, expected 2", q.Scale.Y)
	}
	if want := math.Atan2(4, 3); q.Rotation != want {
		t.Fatalf("quad rotation %v, expected %v", q.Rotation, want)
	}
	if q.Color != clr {
		t.Fatalf("quad color %v, expected %v", q.Color, clr)
	}
}

func TestPointsSegmentCounts(t *testing.T) {
	clr := color.RGBA{A: 255}
	cases := []struct {
		name  string
		pts   []geom.Vec
		quads int
	}{
		{name: "empty", pts: nil, quads: 0},
		{name: "single point", pts: []geom.Vec{{X: 1, Y: 1}}, quads: 0},
		{name: "two points", pts: []geom.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}, quads: 1},
		{name: "five points", pts: []geom.Vec{{}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}, quads: 4},
	}
	for _, tc := range cases {
		r, _, batch := newTestRenderer(t)
		if err := r.Points(geom.Vec{}, tc.pts, clr, 1); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(batch.quads) != tc.quads {
			t.Fatalf("%s: %d quads submitted, expected %d", tc.name, len(batch.quads), tc.quads)
		}
	}
}

func TestPointsAppliesOrigin(t *testing.T) {
	r, _, batch := newTestRenderer(t)
	pts := []geom.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}}

	if err := r.Points(geom.Vec{X: 5, Y: 7}, pts, color.RGBA{A: 255}, 1); err != nil {
		t.Fatal(err)
	}
	q := batch.quads[0]
	if q.Pos != (geom.Vec{X: 5, Y: 7}) {
		t.Fatalf("segment starts at %v, expected origin-translated start", q.Pos)
	}
	if q.Scale.X != 10 {
		t.Fatalf("segment length %v, expected 10 (origin must not stretch segments)", q.Scale.X)
	}
}

func TestCircleSubmitsOneQuadPerSide(t *testing.T) {
	r, _, batch := newTestRenderer(t)
	if err := r.Circle(geom.Vec{X: 50, Y: 50}, 20, 12, color.RGBA{A: 255}, 1); err != nil {
		t.Fatal(err)
	}
	if len(batch.quads) != 12 {
		t.Fatalf("%d quads submitted for a 12-sided circle, expected 12", len(batch.quads))
	}
}

func TestArcSingleSideSubmitsOneQuad(t *testing.T) {
	r, _, batch := newTestRenderer(t)
	step := 2 * math.Pi / 8
	if err := r.Arc(geom.Vec{}, 20, 8, 0, step, color.RGBA{A: 255}, 1); err != nil {
		t.Fatal(err)
	}
	if len(batch.quads) != 1 {
		t.Fatalf("%d quads submitted for a one-side arc, expected 1", len(batch.quads))
	}
}

func TestInvalidGeometryPropagates(t *testing.T) {
	r, _, batch := newTestRenderer(t)
	if err := r.Circle(geom.Vec{}, 20, 0, color.RGBA{A: 255}, 1); !errors.Is(err, geom.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
	if err := r.Arc(geom.Vec{}, 20, 8, 0, 4*math.Pi, color.RGBA{A: 255}, 1); !errors.Is(err, geom.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
	if len(batch.quads) != 0 {
		t.Fatalf("%d quads submitted despite invalid parameters", len(batch.quads))
	}
}

func TestDisposeLifecycle(t *testing.T) {
	r, tex, batch := newTestRenderer(t)

	if err := r.Dispose(); err != nil {
		t.Fatalf("first Dispose: %v", err)
	}
	if tex.disposed != 1 {
		t.Fatalf("texture disposed %d times, expected 1", tex.disposed)
	}

	if err := r.Dispose(); !errors.Is(err, ErrDisposed) {
		t.Fatalf("second Dispose: expected ErrDisposed, got %v", err)
	}
	if tex.disposed != 1 {
		t.Fatalf("second Dispose released the texture again (%d releases)", tex.disposed)
	}

	clr := color.RGBA{A: 255}
	if err := r.Line(geom.Vec{}, geom.Vec{X: 1}, clr, 1); !errors.Is(err, ErrDisposed) {
		t.Fatalf("Line after dispose: expected ErrDisposed, got %v", err)
	}
	if err := r.Points(geom.Vec{}, []geom.Vec{{}, {X: 1}}, clr, 1); !errors.Is(err, ErrDisposed) {
		t.Fatalf("Points after dispose: expected ErrDisposed, got %v", err)
	}
	if err := r.Circle(geom.Vec{}, 10, 8, clr, 1); !errors.Is(err, ErrDisposed) {
		t.Fatalf("Circle after dispose: expected ErrDisposed, got %v", err)
	}
	if err := r.Arc(geom.Vec{}, 10, 8, 0, 1, clr, 1); !errors.Is(err, ErrDisposed) {
		t.Fatalf("Arc after dispose: expected ErrDisposed, got %v", err)
	}
	if len(batch.quads) != 0 {
		t.Fatalf("%d quads submitted after dispose", len(batch.quads))
	}
}
