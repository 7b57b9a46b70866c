// Package draw rasterizes lines, boxes, fractal trees and flood fills onto a
// canvas.Grid.
//
// Every cell write goes through a single step function. When Animate is
// set the step is also plotted on a Surface and followed by a pause, so the
// user can watch the shape being built.
package draw

import (
	"time"

	"textart/canvas"
	"textart/core"
)

// DefaultStepDelay is the pause after each animated cell write.
const DefaultStepDelay = 50 * time.Millisecond

// Surface is the part of a screen the drawing tools need to show single
// steps while animating.
type Surface interface {
	Plot(p core.Point, ch rune)
	Show()
}

// Glyphs are the characters used to stroke shapes.
type Glyphs struct {
	Vertical   rune // steep or vertical strokes
	Falling    rune // slope between 0.08 and 1.8 (row grows with col)
	Horizontal rune
	Rising     rune // slope between -1.8 and -0.08
	Corner     rune
}

// DefaultGlyphs returns the classic stroke set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Vertical:   '|',
		Falling:    '`',
		Horizontal: '-',
		Rising:     '\'',
		Corner:     '+',
	}
}

// ForSlope picks a stroke glyph for a line of the given slope (rows per
// column).
func (g Glyphs) ForSlope(slope float64) rune {
	switch {
	case slope > 1.8:
		return g.Vertical
	case slope > 0.08:
		return g.Falling
	case slope > -0.08:
		return g.Horizontal
	case slope > -1.8:
		return g.Rising
	default:
		return g.Vertical
	}
}

// Drawer draws onto a grid.
type Drawer struct {
	Grid    *canvas.Grid
	Glyphs  Glyphs
	Animate bool

	// Surface receives each step when Animate is set. A nil Surface turns
	// animation into plain pacing.
	Surface   Surface
	StepDelay time.Duration
	Sleep     func(time.Duration)

	// Cancel is polled before each animated step. Once it reports true the
	// remaining steps are written without plotting or pausing so the shape
	// still completes.
	Cancel core.CancelProbe

	skipping bool
}

// New returns a Drawer for g with the default glyphs and pacing.
func New(g *canvas.Grid) *Drawer {
	return &Drawer{
		Grid:      g,
		Glyphs:    DefaultGlyphs(),
		StepDelay: DefaultStepDelay,
		Sleep:     time.Sleep,
	}
}

// Skipped reports whether the current animation was cut short by the cancel
// probe. It resets when a new top-level shape starts.
func (d *Drawer) Skipped() bool {
	return d.skipping
}

func (d *Drawer) begin() {
	d.skipping = false
}

// step writes one cell. Out of bounds points are silently ignored.
func (d *Drawer) step(p core.Point, ch rune) {
	if !d.Grid.Set(p, ch) {
		return
	}
	if !d.Animate || d.skipping {
		return
	}
	if d.Cancel != nil && d.Cancel.Cancelled() {
		d.skipping = true
		return
	}
	if d.Surface != nil {
		d.Surface.Plot(p, ch)
		d.Surface.Show()
	}
	if d.Sleep != nil && d.StepDelay > 0 {
		d.Sleep(d.StepDelay)
	}
}
