// Package geometry holds the small amount of trigonometry the drawing tools
// need.
package geometry

import (
	"math"

	"textart/core"
)

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// EndPoint projects a segment of the given length from start at angle
// degrees. Angles are measured clockwise from east because rows grow
// downward: 0 is east, 90 is south, 180 is west and 270 is north.
func EndPoint(start core.DrawPoint, length, angle float64) core.DrawPoint {
	rad := Radians(angle)
	return core.DrawPoint{
		Row: start.Row + length*math.Sin(rad),
		Col: start.Col + length*math.Cos(rad),
	}
}

// RoundInt rounds half away from zero and converts to int.
func RoundInt(x float64) int {
	return int(math.Round(x))
}
