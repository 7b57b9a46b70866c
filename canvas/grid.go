package canvas

import (
	"fmt"
	"strings"

	"textart/core"
)

// Grid is a rectangular character canvas backed by one contiguous buffer.
//
// The dimensions are fixed when the grid is created. Every accessor is
// bounds checked: writes outside the grid are ignored and reads outside
// the grid return Blank.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - Row increases downward
//   - Col increases rightward
//
// A Grid is not safe for concurrent use.
type Grid struct {
	cells []rune
	rows  int
	cols  int
}

// New creates a blank grid with the configured dimensions.
func New(cfg core.GridConfig) (*Grid, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Rows, cfg.Cols)
	}
	g := &Grid{
		cells: make([]rune, cfg.Rows*cfg.Cols),
		rows:  cfg.Rows,
		cols:  cfg.Cols,
	}
	g.Init()
	return g, nil
}

// MustNew is like New but panics on an invalid configuration. It is meant
// for tests and package-level fixtures.
func MustNew(cfg core.GridConfig) *Grid {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// FromLines builds a grid of the given size and fills it from text rows,
// padding short rows with Blank and ignoring anything past the grid.
func FromLines(cfg core.GridConfig, lines ...string) (*Grid, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		g.SetRow(row, line)
	}
	return g, nil
}

// Config returns the grid dimensions.
func (g *Grid) Config() core.GridConfig {
	return core.GridConfig{Rows: g.rows, Cols: g.cols}
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Init resets every cell to Blank.
func (g *Grid) Init() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

// Get returns the character at p, or Blank when p is out of bounds.
func (g *Grid) Get(p core.Point) rune {
	if !g.InBounds(p) {
		return Blank
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// Set writes ch at p. It reports whether the write landed on the grid.
func (g *Grid) Set(p core.Point, ch rune) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Row*g.cols+p.Col] = ch
	return true
}

// SetRow overwrites one row from text. Characters past the last column are
// dropped and missing ones become Blank.
func (g *Grid) SetRow(row int, text string) {
	if row < 0 || row >= g.rows {
		return
	}
	line := g.cells[row*g.cols : (row+1)*g.cols]
	col := 0
	for _, r := range text {
		if col == g.cols {
			break
		}
		line[col] = r
		col++
	}
	for ; col < g.cols; col++ {
		line[col] = Blank
	}
}

// Row returns a copy of one row as a string.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Clone returns an independent snapshot of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, rows: g.rows, cols: g.cols}
}

// CopyFrom overwrites g with the contents of src. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.rows != g.rows || src.cols != g.cols {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.rows, src.cols, g.rows, g.cols)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, r := range g.cells {
		if other.cells[i] != r {
			return false
		}
	}
	return true
}

// Replace swaps every occurrence of oldCh for newCh and returns how many
// cells changed.
func (g *Grid) Replace(oldCh, newCh rune) int {
	if oldCh == newCh {
		return 0
	}
	n := 0
	for i, r := range g.cells {
		if r == oldCh {
			g.cells[i] = newCh
			n++
		}
	}
	return n
}

// Move shifts the whole drawing by dRow rows and dCol columns. Positive
// values move down and right. Cells pushed past an edge are lost and cells
// uncovered by the shift become Blank.
func (g *Grid) Move(dRow, dCol int) {
	shifted := make([]rune, len(g.cells))
	for i := range shifted {
		shifted[i] = Blank
	}
	for row := 0; row < g.rows; row++ {
		toRow := row + dRow
		if toRow < 0 || toRow >= g.rows {
			continue
		}
		for col := 0; col < g.cols; col++ {
			toCol := col + dCol
			if toCol < 0 || toCol >= g.cols {
				continue
			}
			shifted[toRow*g.cols+toCol] = g.cells[row*g.cols+col]
		}
	}
	g.cells = shifted
}

// Count returns how many cells hold ch.
func (g *Grid) Count(ch rune) int {
	n := 0
	for _, r := range g.cells {
		if r == ch {
			n++
		}
	}
	return n
}

// Lines returns the grid as one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for row := range lines {
		lines[row] = g.Row(row)
	}
	return lines
}

// String returns the canvas as a string with newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		sb.WriteString(string(g.cells[row*g.cols : (row+1)*g.cols]))
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
