//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// UnitPixel is the 1×1 fully-opaque texture every line quad stretches.
type UnitPixel struct {
	img *ebiten.Image
}

// NewUnitPixel allocates the unit texture and fills it opaque white so tint
// colors pass through unchanged.
func NewUnitPixel() *UnitPixel {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &UnitPixel{img: img}
}

// Dispose releases the underlying image. Only the first call releases;
// later calls are no-ops.
func (p *UnitPixel) Dispose() {
	if p.img == nil {
		return
	}
	p.img.Dispose()
	p.img = nil
}
