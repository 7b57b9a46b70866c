// Package history keeps undo and redo snapshots of the canvas.
package history

import "textart/canvas"

// Stack is a LIFO list of canvas snapshots. The newest entry sits at the end
// of the slice so push and pop are O(1).
type Stack struct {
	items []*canvas.Grid
	max   int // 0 means unbounded
}

// NewStack creates a stack that keeps at most max entries. When full, the
// oldest entry is dropped. max <= 0 disables the limit.
func NewStack(max int) *Stack {
	if max < 0 {
		max = 0
	}
	return &Stack{max: max}
}

// Push adds g as the newest entry. The stack takes ownership of g.
func (s *Stack) Push(g *canvas.Grid) {
	s.items = append(s.items, g)
	if s.max > 0 && len(s.items) > s.max {
		s.items[0] = nil
		s.items = s.items[1:]
	}
}

// Pop removes and returns the newest entry. ok is false when the stack is
// empty.
func (s *Stack) Pop() (g *canvas.Grid, ok bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	last := len(s.items) - 1
	g = s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return g, true
}

// Peek returns the newest entry without removing it.
func (s *Stack) Peek() (*canvas.Grid, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.items)
}

// Clear drops every entry.
func (s *Stack) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
