package history

import "textart/canvas"

// DefaultDepth is the number of undo steps kept when no depth is configured.
const DefaultDepth = 100

// Manager implements undo and redo over full canvas snapshots.
//
// Callers take a Snapshot before every change to the canvas. Undo and Redo
// hand back the grid that should become current; the caller owns it from
// then on.
type Manager struct {
	undo *Stack
	redo *Stack
}

// NewManager creates a manager that keeps up to depth undo steps.
// depth <= 0 selects DefaultDepth.
func NewManager(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Manager{
		undo: NewStack(depth),
		redo: NewStack(depth),
	}
}

// Snapshot records current as the state to return to on the next undo and
// forgets every redo step, since a fresh edit forks the timeline.
func (m *Manager) Snapshot(current *canvas.Grid) {
	m.undo.Push(current.Clone())
	m.redo.Clear()
}

// CanUndo returns true if we can undo
func (m *Manager) CanUndo() bool {
	return m.undo.Len() > 0
}

// CanRedo returns true if we can redo
func (m *Manager) CanRedo() bool {
	return m.redo.Len() > 0
}

// Undo steps back one state. current is saved for redo and the previous
// state is returned. ok is false when there is nothing to undo, in which case
// nothing changes.
func (m *Manager) Undo(current *canvas.Grid) (*canvas.Grid, bool) {
	prev, ok := m.undo.Pop()
	if !ok {
		return current, false
	}
	m.redo.Push(current.Clone())
	return prev, true
}

// Redo moves forward one state, the mirror of Undo.
func (m *Manager) Redo(current *canvas.Grid) (*canvas.Grid, bool) {
	next, ok := m.redo.Pop()
	if !ok {
		return current, false
	}
	m.undo.Push(current.Clone())
	return next, true
}

// Clear clears all history
func (m *Manager) Clear() {
	m.undo.Clear()
	m.redo.Clear()
}

// Stats returns how many undo and redo steps are available.
func (m *Manager) Stats() (undo, redo int) {
	return m.undo.Len(), m.redo.Len()
}
