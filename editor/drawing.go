package editor

import (
	"unicode"

	"textart/draw"
)

// drawMenu runs the drawing tools menu until <M> or ESC.
func (e *Editor) drawMenu() {
	for {
		e.mode = ModeDraw
		e.render(drawMenu(e.animate))

		key := e.keys.ReadKey()
		if key.IsSpecial() {
			continue
		}
		if key.IsEscape() {
			return
		}
		switch unicode.ToLower(key.Rune) {
		case 'm':
			return
		case 'a':
			e.animate = !e.animate
		case 'b':
			e.drawBox(promptBoxSize, false)
		case 'n':
			e.drawBox(promptNestedSize, true)
		case 'l':
			e.drawLine()
		case 't':
			e.drawTree()
		case 'f':
			e.fill()
		}
	}
}

// drawer returns a Drawer over the live canvas using the current
// animation settings.
func (e *Editor) drawer() *draw.Drawer {
	d := draw.New(e.canvas)
	d.Animate = e.animate
	d.Surface = e.screen
	d.StepDelay = e.stepDelay
	d.Sleep = e.sleep
	d.Cancel = e.cancel
	return d
}

func (e *Editor) finishDraw(d *draw.Drawer) {
	if d.Skipped() {
		e.notify("Animation skipped")
	}
}

func isCenterKey(r rune) bool {
	return r == 'c' || r == 'C'
}

func (e *Editor) drawBox(sizePrompt string, nested bool) {
	size, ok := e.readInt(sizePrompt)
	if !ok {
		return
	}
	center, ch, ok := e.pickPoint(promptBoxCenter)
	if !ok {
		return
	}
	if isCenterKey(ch) {
		center = e.cfg.Center()
	}

	e.history.Snapshot(e.canvas)
	d := e.drawer()
	if nested {
		n := d.NestedBoxes(center, size)
		e.log.Debug("nested boxes drawn", "center", center, "size", size, "boxes", n)
	} else {
		d.Box(center, size)
	}
	e.finishDraw(d)
}

func (e *Editor) drawLine() {
	start, _, ok := e.pickPoint(promptLineStart)
	if !ok {
		return
	}
	end, _, ok := e.pickPoint(promptLineEnd)
	if !ok {
		return
	}

	e.history.Snapshot(e.canvas)
	d := e.drawer()
	d.Line(start.DrawPoint(), end.DrawPoint())
	e.finishDraw(d)
}

func (e *Editor) drawTree() {
	height, ok := e.readInt(promptTreeHeight)
	if !ok {
		return
	}
	angle, ok := e.readInt(promptTreeAngle)
	if !ok {
		return
	}
	start, ch, ok := e.pickPoint(promptTreeStart)
	if !ok {
		return
	}
	if isCenterKey(ch) {
		start = e.cfg.BottomCenter()
	}

	e.history.Snapshot(e.canvas)
	d := e.drawer()
	n := d.Tree(start.DrawPoint(), height, draw.TrunkAngle, float64(angle))
	e.log.Debug("tree drawn", "start", start, "height", height, "angle", angle, "segments", n)
	e.finishDraw(d)
}

// fill floods the region under the picked cell with the typed character.
func (e *Editor) fill() {
	p, ch, ok := e.pickPoint(promptFill)
	if !ok {
		return
	}
	target := e.canvas.Get(p)
	if target == ch {
		return
	}

	e.history.Snapshot(e.canvas)
	d := e.drawer()
	n := d.FloodFill(p, target, ch)
	e.notify("Filled %d", n)
	e.finishDraw(d)
}

