package editor

func (e *Editor) undo() {
	g, ok := e.history.Undo(e.canvas)
	if !ok {
		e.fail("Nothing to undo")
		return
	}
	e.canvas = g
	e.notifyHistory("Undone")
}

func (e *Editor) redo() {
	g, ok := e.history.Redo(e.canvas)
	if !ok {
		e.fail("Nothing to redo")
		return
	}
	e.canvas = g
	e.notifyHistory("Redone")
}

func (e *Editor) notifyHistory(what string) {
	undo, redo := e.history.Stats()
	e.notify("%s (undo %d, redo %d)", what, undo, redo)
}
