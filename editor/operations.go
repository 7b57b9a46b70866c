package editor

import (
	"errors"

	"textart/canvas"
	"textart/storage"
)

// handleMainKey dispatches a main menu command.
func (e *Editor) handleMainKey(key rune) {
	switch key {
	case 'e':
		e.editCanvas()
	case 'm':
		e.moveCanvas()
	case 'r':
		e.replaceChar()
	case 'd':
		e.drawMenu()
	case 'c':
		e.history.Snapshot(e.canvas)
		e.canvas.Init()
	case 'u':
		e.undo()
	case 'o':
		e.redo()
	case 'l':
		e.loadCanvas()
	case 's':
		e.saveCanvas()
	case 'a':
		e.animationMenu()
	}
}

func (e *Editor) moveCanvas() {
	cols, ok := e.readInt(promptMoveCols)
	if !ok {
		return
	}
	rows, ok := e.readInt(promptMoveRows)
	if !ok {
		return
	}
	e.history.Snapshot(e.canvas)
	e.canvas.Move(rows, cols)
}

func (e *Editor) replaceChar() {
	oldCh, ok := e.readChar(promptOldChar)
	if !ok {
		return
	}
	newCh, ok := e.readChar(promptNewChar)
	if !ok {
		return
	}
	e.history.Snapshot(e.canvas)
	n := e.canvas.Replace(oldCh, newCh)
	e.notify("Replaced %d", n)
}

func (e *Editor) saveCanvas() {
	name, ok := e.readLine(promptSave)
	if !ok {
		return
	}
	if err := e.store.SaveCanvas(name, e.canvas); err != nil {
		e.log.Warn("save failed", "name", name, "error", err)
		e.failStorage(err, "ERROR: File could not be written.")
		return
	}
	e.log.Info("canvas saved", "name", name)
	e.notify("File saved!")
}

// loadCanvas reads a file into a scratch grid so a failed load leaves the
// canvas and history untouched.
func (e *Editor) loadCanvas() {
	name, ok := e.readLine(promptLoad)
	if !ok {
		return
	}
	loaded, err := canvas.New(e.cfg)
	if err != nil {
		e.fail("ERROR: %v", err)
		return
	}
	if err := e.store.LoadCanvas(name, loaded); err != nil {
		e.log.Warn("load failed", "name", name, "error", err)
		e.failStorage(err, "ERROR: File cannot be read.")
		return
	}
	e.history.Snapshot(e.canvas)
	if err := e.canvas.CopyFrom(loaded); err != nil {
		e.fail("ERROR: %v", err)
		return
	}
	e.log.Info("canvas loaded", "name", name)
	e.notify("Loaded %s", name)
}

// failStorage reports a storage error, naming bad filenames specifically.
func (e *Editor) failStorage(err error, msg string) {
	if errors.Is(err, storage.ErrInvalidFilename) {
		e.fail("ERROR: Invalid filename, avoid %s", storage.InvalidChars)
		return
	}
	e.fail("%s", msg)
}
