// Package terminal drives a real terminal through tcell.
//
// A Screen draws the canvas in the top-left corner of the terminal with a
// border on its right and bottom edges and uses the line below the border
// for menus and prompts. It also serves as the editor's key source and
// cancel probe.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"textart/canvas"
	"textart/clip"
	"textart/core"
)

// Border glyphs.
const (
	BorderRight  = '|'
	BorderBottom = '-'
	BorderCorner = '+'
)

// Screen adapts a tcell.Screen to the editor.
type Screen struct {
	screen tcell.Screen
	cfg    core.GridConfig
	style  tcell.Style
	border tcell.Style
}

// New wraps an initialized tcell screen for a canvas of the given size.
func New(s tcell.Screen, cfg core.GridConfig) *Screen {
	return &Screen{
		screen: s,
		cfg:    cfg,
		style:  tcell.StyleDefault,
		border: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Open creates and initializes a screen on the controlling terminal.
func Open(cfg core.GridConfig) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.Clear()
	return New(s, cfg), nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// StatusRow is the terminal row used for menus and prompts.
func (s *Screen) StatusRow() int {
	return s.cfg.Rows + 1
}

// Plot draws one canvas cell.
func (s *Screen) Plot(p core.Point, ch rune) {
	if !s.cfg.Contains(p) {
		return
	}
	s.screen.SetContent(p.Col, p.Row, ch, nil, s.style)
}

// Show flushes pending changes to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// DrawCanvas paints every cell of g and the border around it.
func (s *Screen) DrawCanvas(g *canvas.Grid) {
	rows, cols := g.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := core.Point{Row: row, Col: col}
			s.screen.SetContent(col, row, g.Get(p), nil, s.style)
		}
		s.screen.SetContent(cols, row, BorderRight, nil, s.border)
	}
	for col := 0; col < cols; col++ {
		s.screen.SetContent(col, rows, BorderBottom, nil, s.border)
	}
	s.screen.SetContent(cols, rows, BorderCorner, nil, s.border)
}

// MoveCursor shows the cursor on a canvas cell.
func (s *Screen) MoveCursor(p core.Point) {
	s.screen.ShowCursor(p.Col, p.Row)
}

// Status replaces the status line and leaves the cursor after the text, where
// typed input appears.
func (s *Screen) Status(msg string) {
	col := s.text(s.StatusRow(), msg)
	s.screen.ShowCursor(col, s.StatusRow())
}

// ShowFrame draws a clip frame with its counter on the status line.
func (s *Screen) ShowFrame(f clip.Frame) {
	s.DrawCanvas(f.Grid)
	s.text(s.StatusRow(), fmt.Sprintf("Clip: %d of %d, press <ESC> to stop", f.Number, f.Total))
	s.screen.HideCursor()
	s.screen.Show()
}

// text clears row and writes msg from its first column. It returns the
// column after the last character written.
func (s *Screen) text(row int, msg string) int {
	width, _ := s.screen.Size()
	col := 0
	for _, r := range msg {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		s.screen.SetContent(col, row, r, nil, s.style)
		col += w
	}
	for x := col; x < width; x++ {
		s.screen.SetContent(x, row, ' ', nil, s.style)
	}
	return col
}
