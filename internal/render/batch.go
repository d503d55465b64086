//go:build ebiten

// Package render adapts the pure draw collaborators to ebiten: the unit
// pixel is an ebiten.Image and each submitted quad becomes one DrawImage
// call onto the current frame's target.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"linework/internal/draw"
)

// Batch stamps submitted quads onto a target image. Rebind the target with
// Begin at the top of every frame; quads submitted without a target are
// dropped.
type Batch struct {
	pixel *UnitPixel
	dst   *ebiten.Image
}

// NewBatch constructs a Batch that stamps with the given unit pixel.
func NewBatch(pixel *UnitPixel) *Batch {
	return &Batch{pixel: pixel}
}

// Begin binds the image that receives this frame's quads.
func (b *Batch) Begin(dst *ebiten.Image) {
	b.dst = dst
}

// Append draws one quad: the unit pixel scaled to (length, thickness),
// centered on the segment, rotated and translated to its start point.
func (b *Batch) Append(q draw.Quad) {
	if b.dst == nil || b.pixel == nil || b.pixel.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(q.Scale.X, q.Scale.Y)
	op.GeoM.Translate(0, -q.Scale.Y/2)
	op.GeoM.Rotate(q.Rotation)
	op.GeoM.Translate(q.Pos.X, q.Pos.Y)
	op.ColorM.Scale(float64(q.Color.R)/255.0, float64(q.Color.G)/255.0, float64(q.Color.B)/255.0, float64(q.Color.A)/255.0)
	b.dst.DrawImage(b.pixel.img, op)
}
