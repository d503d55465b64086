//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"linework/internal/draw"
	"linework/internal/geom"
	"linework/internal/render"
	"linework/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minSides = 3
	maxSides = 128

	minRadius = 20.0

	// Phase advance per tick: one hand revolution every 6 seconds at 60 TPS.
	spinStep = math.Pi / 180
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	gridColor       = color.RGBA{R: 52, G: 58, B: 72, A: 255}
	ringColor       = color.RGBA{R: 222, G: 226, B: 235, A: 255}
	innerColor      = color.RGBA{R: 120, G: 160, B: 210, A: 255}
	hexColor        = color.RGBA{R: 90, G: 110, B: 140, A: 255}
	arcColor        = color.RGBA{R: 250, G: 170, B: 60, A: 255}
	handColor       = color.RGBA{R: 230, G: 90, B: 80, A: 255}
	waveColor       = color.RGBA{R: 110, G: 200, B: 130, A: 255}
)

// Game is the ebiten shell around the shape renderer: it polls input, spins
// the showcase scene and submits one batch of quads per frame.
type Game struct {
	cfg    *Config
	pixel  *render.UnitPixel
	batch  *render.Batch
	shapes *draw.Renderer
	hud    *ui.HUD

	sides   int
	radius  float64
	phase   float64
	paused  bool
	showHUD bool

	wave    []geom.Vec
	lastErr string
}

// New constructs the Game and the draw resources it owns.
func New(cfg *Config) (*Game, error) {
	pixel := render.NewUnitPixel()
	batch := render.NewBatch(pixel)
	shapes, err := draw.New(pixel, batch)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		pixel:   pixel,
		batch:   batch,
		shapes:  shapes,
		hud:     ui.NewHUD(),
		sides:   clampInt(cfg.Sides, minSides, maxSides),
		radius:  cfg.Radius,
		showHUD: true,
	}, nil
}

// Dispose releases the renderer's unit texture. Call once after the game
// loop exits.
func (g *Game) Dispose() error {
	return g.shapes.Dispose()
}

// Update handles per-frame input and advances the animation phase.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.phase = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sides = clampInt(g.sides+1, minSides, maxSides)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sides = clampInt(g.sides-1, minSides, maxSides)
	}
	maxRadius := math.Min(float64(g.cfg.Width), float64(g.cfg.Height))/2 - 24
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.radius = math.Min(g.radius+5, maxRadius)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.radius = math.Max(g.radius-5, minRadius)
	}

	if !g.paused {
		g.phase += spinStep
		// The arc start angle runs at phase/3; wrapping at 6π keeps both the
		// hand and the arc continuous.
		if g.phase >= 6*math.Pi {
			g.phase -= 6 * math.Pi
		}
	}
	return nil
}

// Draw renders the showcase scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.batch.Begin(screen)

	w := float64(g.cfg.Width)
	h := float64(g.cfg.Height)
	center := geom.Vec{X: w / 2, Y: h / 2}

	// Crosshair.
	g.warn(g.shapes.Line(geom.Vec{X: 0, Y: center.Y}, geom.Vec{X: w, Y: center.Y}, gridColor, 1))
	g.warn(g.shapes.Line(geom.Vec{X: center.X, Y: 0}, geom.Vec{X: center.X, Y: h}, gridColor, 1))

	// Concentric rings at descending side counts.
	g.warn(g.shapes.Circle(center, g.radius, g.sides, ringColor, 2))
	g.warn(g.shapes.Circle(center, g.radius*0.66, max(minSides, g.sides/2), innerColor, 1.5))
	g.warn(g.shapes.Circle(center, g.radius*0.4, 6, hexColor, 1))

	// Sweeping arc just outside the main ring.
	start := g.phase / 3
	sweep := math.Mod(g.phase, 2*math.Pi)
	g.warn(g.shapes.Arc(center, g.radius+14, g.sides, start, sweep, arcColor, 3))

	// Rotating radius hand.
	tip := geom.Vec{X: center.X + math.Cos(g.phase)*g.radius, Y: center.Y + math.Sin(g.phase)*g.radius}
	g.warn(g.shapes.Line(center, tip, handColor, 2))

	// Sine polyline along the bottom edge.
	g.warn(g.shapes.Points(geom.Vec{X: 0, Y: h - 48}, g.wavePoints(w), waveColor, 1.5))

	if g.showHUD {
		g.hud.Draw(screen, g.hudLines())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) wavePoints(width float64) []geom.Vec {
	g.wave = g.wave[:0]
	for x := 0.0; x <= width; x += 8 {
		g.wave = append(g.wave, geom.Vec{X: x, Y: math.Sin(x/32+g.phase) * 16})
	}
	return g.wave
}

func (g *Game) hudLines() []string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("sides: %d  radius: %.0f  %s", g.sides, g.radius, state),
		"[space] pause  [r] reset  [h] hud  [q] quit",
		"[left/right] sides  [up/down] radius",
	}
}

// warn logs renderer errors without spamming the log every frame.
func (g *Game) warn(err error) {
	if err == nil {
		return
	}
	if msg := err.Error(); msg != g.lastErr {
		g.lastErr = msg
		log.Printf("draw: %v", err)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
