//go:build !ebiten

package render

import "linework/internal/draw"

// UnitPixel is a placeholder that satisfies the API expected by the GUI build.
type UnitPixel struct{}

// NewUnitPixel panics to indicate that the ebiten build tag is required.
func NewUnitPixel() *UnitPixel {
	panic("render.NewUnitPixel requires building with the 'ebiten' tag")
}

// Dispose is a no-op placeholder.
func (p *UnitPixel) Dispose() {}

// Batch is a placeholder that satisfies the API expected by the GUI build.
type Batch struct{}

// NewBatch panics to indicate that the ebiten build tag is required.
func NewBatch(*UnitPixel) *Batch {
	panic("render.NewBatch requires building with the 'ebiten' tag")
}

// Begin is a no-op placeholder to satisfy the interface shape.
func (b *Batch) Begin(any) {}

// Append is a no-op placeholder.
func (b *Batch) Append(draw.Quad) {}
