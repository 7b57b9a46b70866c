package editor

import (
	"textart/canvas"
	"textart/clip"
	"textart/core"
	"textart/draw"
)

// Screen is everything the editor needs from a display.
type Screen interface {
	draw.Surface
	clip.Display

	// DrawCanvas repaints the whole canvas with its border.
	DrawCanvas(g *canvas.Grid)
	// MoveCursor places the visible cursor on a canvas cell.
	MoveCursor(p core.Point)
	// Status replaces the text of the line under the canvas.
	Status(msg string)
}
