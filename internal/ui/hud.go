//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	padX       = 8
	padY       = 6
	lineHeight = 16
	glyphWidth = 7
	ascent     = 11
	marginLeft = 4
	marginTop  = 4
)

// HUD renders a small text panel in the top-left corner of the screen.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a new HUD instance.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw renders the given text lines over a translucent panel strip.
func (h *HUD) Draw(dst *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, s := range lines {
		if w := len(s) * glyphWidth; w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*padX), float64(len(lines)*lineHeight+2*padY))
	op.GeoM.Translate(marginLeft, marginTop)
	op.ColorM.Scale(0, 0, 0, 0.55)
	dst.DrawImage(h.pixel, op)

	for i, s := range lines {
		y := marginTop + padY + ascent + i*lineHeight
		text.Draw(dst, s, basicfont.Face7x13, marginLeft+padX, y, color.White)
	}
}
