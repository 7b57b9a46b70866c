package terminal

import (
	"github.com/gdamore/tcell/v2"

	"textart/core"
)

// ReadKey blocks until a key is pressed. Resize events repaint the terminal
// and are otherwise ignored. A screen that has been closed reads as Ctrl-C
// so every menu unwinds.
func (s *Screen) ReadKey() core.KeyEvent {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return core.Key(core.KeyCtrlC)
		}
		if key, ok := s.translate(ev); ok {
			return key
		}
	}
}

// Cancelled drains the pending events without blocking and reports whether
// ESC or Ctrl-C was among them. Other keys pressed during an animation are
// discarded.
func (s *Screen) Cancelled() bool {
	cancelled := false
	for s.screen.HasPendingEvent() {
		key, ok := s.translate(s.screen.PollEvent())
		if ok && key.IsEscape() {
			cancelled = true
		}
	}
	return cancelled
}

func (s *Screen) translate(ev tcell.Event) (core.KeyEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return core.KeyEvent{}, false
}

// KeyEvent converts a tcell key event. ok is false for keys the editor has
// no use for.
func KeyEvent(ev *tcell.EventKey) (key core.KeyEvent, ok bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.Key(ev.Rune()), true
	case tcell.KeyUp:
		return core.Special(core.KeyArrowUp), true
	case tcell.KeyDown:
		return core.Special(core.KeyArrowDown), true
	case tcell.KeyLeft:
		return core.Special(core.KeyArrowLeft), true
	case tcell.KeyRight:
		return core.Special(core.KeyArrowRight), true
	case tcell.KeyHome:
		return core.Special(core.KeyHome), true
	case tcell.KeyEnd:
		return core.Special(core.KeyEnd), true
	case tcell.KeyPgUp:
		return core.Special(core.KeyPageUp), true
	case tcell.KeyPgDn:
		return core.Special(core.KeyPageDown), true
	case tcell.KeyEscape:
		return core.Key(core.KeyEsc), true
	case tcell.KeyEnter:
		return core.Key(core.KeyEnter), true
	case tcell.KeyTab:
		return core.Key(core.KeyTab), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.Key(core.KeyDelete), true
	case tcell.KeyCtrlC:
		return core.Key(core.KeyCtrlC), true
	}
	return core.KeyEvent{}, false
}
