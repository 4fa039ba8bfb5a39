// Package game hosts the frame loop on ebiten.
//
// ebiten's Update is the frame-scheduling primitive: each tick flushes the
// frames requested since the previous tick. Draw copies the drawing surface
// scenes render into onto the screen.
package game

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Failer reports the error that ended the frame loop, if any.
// *loop.Controller and *scene.Manager implement it.
type Failer interface {
	Err() error
}

// Frames is the scheduler the host flushes every tick.
// *loop.Queue implements it.
type Frames interface {
	Flush() int
}

// Game implements ebiten.Game on top of a frame queue.
type Game struct {
	frames  Frames
	loop    Failer
	surface *gg.Context
	canvas  *ebiten.Image
	screenW int
	screenH int
	ticks   int
}

// New creates a Game flushing frames every tick and showing surface.
// The logical screen size is the surface size.
func New(frames Frames, loop Failer, surface *gg.Context) *Game {
	return &Game{
		frames:  frames,
		loop:    loop,
		surface: surface,
		screenW: surface.Width(),
		screenH: surface.Height(),
	}
}

// Update runs the frames requested since the last tick.
// A step failure terminates the game.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames.Flush()
	g.ticks++
	return g.loop.Err()
}

// Draw uploads the surface and draws it to the screen.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.screenW, g.screenH)
	}

	if rgba, ok := g.surface.Image().(*image.RGBA); ok {
		g.canvas.WritePixels(rgba.Pix)
	} else {
		g.canvas.Clear()
		g.canvas.DrawImage(ebiten.NewImageFromImage(g.surface.Image()), nil)
	}

	screen.DrawImage(g.canvas, nil)
}

// Layout returns the surface dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Ticks returns how many times Update ran.
func (g *Game) Ticks() int {
	return g.ticks
}
