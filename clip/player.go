package clip

import (
	"time"

	"textart/canvas"
	"textart/core"
	"textart/draw"
)

// DefaultFrameDelay is the pause after each frame.
const DefaultFrameDelay = 100 * time.Millisecond

// Frame is one clip as handed to a Display.
type Frame struct {
	Grid   *canvas.Grid
	Number int // 1-based position in recording order
	Total  int
}

// Remaining returns how many frames are left in the pass, this one included.
func (f Frame) Remaining() int {
	return f.Total - f.Number + 1
}

// Display shows whole frames together with their counter.
type Display interface {
	ShowFrame(f Frame)
}

// Player loops over a clip list until cancelled.
type Player struct {
	Display Display
	Cancel  core.CancelProbe

	FrameDelay time.Duration
	Sleep      func(time.Duration)

	// Animate reveals each frame cell by cell on Surface, pausing StepDelay
	// between cells and checking Cancel before every cell.
	Animate   bool
	Surface   draw.Surface
	StepDelay time.Duration

	// MaxPasses stops playback after that many passes. Zero plays until
	// Cancel reports true.
	MaxPasses int

	// OnFrame, when set, is called after each frame is shown.
	OnFrame func(Frame)
}

// NewPlayer creates a player with the default pacing.
func NewPlayer(d Display, cancel core.CancelProbe) *Player {
	if cancel == nil {
		cancel = core.NeverCancel
	}
	return &Player{
		Display:    d,
		Cancel:     cancel,
		FrameDelay: DefaultFrameDelay,
		StepDelay:  draw.DefaultStepDelay,
		Sleep:      time.Sleep,
	}
}

// Play shows the clips in recording order, one pass after another, until
// the cancel probe fires or MaxPasses is reached. Lists with fewer than
// MinPlayable clips are ignored. It returns the number of frames shown.
func (p *Player) Play(l *List) int {
	if !l.Playable() {
		return 0
	}
	passes := p.MaxPasses
	if passes <= 0 && p.Cancel == nil {
		// Without a way to stop, play a single pass.
		passes = 1
	}

	frames := l.Frames()
	shown := 0
	var prev *canvas.Grid

	for pass := 0; passes <= 0 || pass < passes; pass++ {
		for i, g := range frames {
			if p.cancelled() {
				return shown
			}
			if p.Animate && prev != nil {
				if !p.reveal(prev, g) {
					return shown
				}
			}

			f := Frame{Grid: g, Number: i + 1, Total: len(frames)}
			p.Display.ShowFrame(f)
			shown++
			prev = g
			if p.OnFrame != nil {
				p.OnFrame(f)
			}

			if p.cancelled() {
				return shown
			}
			p.pause(p.FrameDelay)
		}
	}
	return shown
}

// reveal plots the cells that differ between two frames. It returns false
// when cancelled part way.
func (p *Player) reveal(from, to *canvas.Grid) bool {
	rows, cols := to.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pt := core.Point{Row: row, Col: col}
			ch := to.Get(pt)
			if from.Get(pt) == ch {
				continue
			}
			if p.cancelled() {
				return false
			}
			if p.Surface != nil {
				p.Surface.Plot(pt, ch)
				p.Surface.Show()
			}
			p.pause(p.StepDelay)
		}
	}
	return true
}

func (p *Player) cancelled() bool {
	return p.Cancel != nil && p.Cancel.Cancelled()
}

func (p *Player) pause(d time.Duration) {
	if p.Sleep != nil && d > 0 {
		p.Sleep(d)
	}
}
