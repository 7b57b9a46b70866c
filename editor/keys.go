package editor

import (
	"strconv"
	"strings"

	"textart/canvas"
	"textart/core"
)

// readLine collects a line of text on the status line. ok is false when the
// user pressed ESC.
func (e *Editor) readLine(prompt string) (string, bool) {
	prev := e.mode
	e.mode = ModePrompt
	defer func() { e.mode = prev }()

	var buf []rune
	for {
		e.screen.Status(prompt + string(buf))
		e.screen.Show()

		key := e.keys.ReadKey()
		switch {
		case key.IsEscape():
			return "", false
		case key.IsEnter():
			return string(buf), true
		case key.IsBackspace():
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case key.IsSpecial():
		case canvas.Printable(key.Rune):
			buf = append(buf, key.Rune)
		}
	}
}

// readInt reads a whole number. A line that does not parse is reported and
// counts as cancelled.
func (e *Editor) readInt(prompt string) (int, bool) {
	line, ok := e.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		e.fail("Not a whole number: %q", line)
		return 0, false
	}
	return n, true
}

// readChar waits for a single printable character.
func (e *Editor) readChar(prompt string) (rune, bool) {
	prev := e.mode
	e.mode = ModePrompt
	defer func() { e.mode = prev }()

	e.screen.Status(prompt)
	e.screen.Show()
	for {
		key := e.keys.ReadKey()
		switch {
		case key.IsEscape():
			return 0, false
		case key.IsSpecial():
		case canvas.Printable(key.Rune):
			return key.Rune, true
		}
	}
}

// pickPoint lets the user walk the cursor over the canvas with the arrow
// keys. Typing a printable character selects the cell under the cursor and
// returns that character.
func (e *Editor) pickPoint(prompt string) (core.Point, rune, bool) {
	prev := e.mode
	e.mode = ModePick
	defer func() { e.mode = prev }()

	e.screen.Status(prompt)
	for {
		e.screen.MoveCursor(e.cursor)
		e.screen.Show()

		key := e.keys.ReadKey()
		if dir, ok := key.Direction(); ok {
			e.step(dir)
			continue
		}
		switch {
		case key.IsEscape():
			return core.Point{}, 0, false
		case key.IsSpecial():
		case canvas.Printable(key.Rune):
			return e.cursor, key.Rune, true
		}
	}
}

// step moves the cursor one cell, staying on the canvas.
func (e *Editor) step(dir core.Direction) {
	dRow, dCol := dir.Delta()
	if next := e.cursor.Add(dRow, dCol); e.cfg.Contains(next) {
		e.cursor = next
	}
}

// editCanvas types characters straight onto the canvas under the cursor
// until ESC. The canvas is snapshotted before the first write only, so a
// session that changes nothing leaves history alone.
func (e *Editor) editCanvas() {
	prev := e.mode
	e.mode = ModeEdit
	defer func() { e.mode = prev }()

	e.screen.Status(promptEdit)
	snapshotted := false
	for {
		e.screen.MoveCursor(e.cursor)
		e.screen.Show()

		key := e.keys.ReadKey()
		if dir, ok := key.Direction(); ok {
			e.step(dir)
			continue
		}
		switch {
		case key.IsEscape():
			return
		case key.IsSpecial():
		case canvas.Printable(key.Rune):
			if !snapshotted {
				e.history.Snapshot(e.canvas)
				snapshotted = true
			}
			e.canvas.Set(e.cursor, key.Rune)
			e.screen.Plot(e.cursor, key.Rune)
		}
	}
}
