// Package core contains the fundamental types shared by the textart packages.
package core

import "math"

// Default grid dimensions. A 80x24 console leaves two rows below the canvas
// for the border and the status line.
const (
	DefaultRows = 22
	DefaultCols = 80
)

// GridConfig describes the fixed dimensions of a canvas.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// DefaultGridConfig returns the console-sized grid used by the editor.
func DefaultGridConfig() GridConfig {
	return GridConfig{Rows: DefaultRows, Cols: DefaultCols}
}

// Valid reports whether both dimensions are positive.
func (c GridConfig) Valid() bool {
	return c.Rows > 0 && c.Cols > 0
}

// Contains checks if a point lies inside a grid of this size.
func (c GridConfig) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
}

// Center returns the middle cell of the grid.
func (c GridConfig) Center() Point {
	return Point{Row: c.Rows / 2, Col: c.Cols / 2}
}

// BottomCenter returns the middle cell of the last row.
func (c GridConfig) BottomCenter() Point {
	return Point{Row: c.Rows - 1, Col: c.Cols / 2}
}

// Aspect is the number of columns per row. Drawing tools use it to make
// shapes look square on non-square character cells.
func (c GridConfig) Aspect() float64 {
	return float64(c.Cols) / float64(c.Rows)
}

// Point is an integer cell coordinate on the canvas.
type Point struct {
	Row, Col int
}

// Add returns the point offset by the given row and column deltas.
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// DrawPoint returns the point as a floating drawing coordinate.
func (p Point) DrawPoint() DrawPoint {
	return DrawPoint{Row: float64(p.Row), Col: float64(p.Col)}
}

// DrawPoint is a floating-point coordinate used for angle and length math.
type DrawPoint struct {
	Row, Col float64
}

// Round converts the point to the nearest grid cell.
func (p DrawPoint) Round() Point {
	return Point{Row: int(math.Round(p.Row)), Col: int(math.Round(p.Col))}
}

// Direction represents a cardinal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the row and column step for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}
