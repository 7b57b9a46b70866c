package core

// Control runes delivered by key sources.
const (
	KeyEsc       rune = 27
	KeyEnter     rune = 13
	KeyNewline   rune = 10
	KeyTab       rune = 9
	KeyBackspace rune = 8
	KeyDelete    rune = 127
	KeyCtrlC     rune = 3
)

// SpecialKey represents special keys like arrows, home, end, etc.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyEvent represents either a regular character or a special key
type KeyEvent struct {
	Rune       rune
	SpecialKey SpecialKey
}

// Key builds a KeyEvent for a plain rune.
func Key(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Special builds a KeyEvent for a special key.
func Special(k SpecialKey) KeyEvent {
	return KeyEvent{SpecialKey: k}
}

// IsSpecial returns true if this is a special key event
func (k KeyEvent) IsSpecial() bool {
	return k.SpecialKey != KeyNone
}

// IsEscape reports whether the event cancels the current action.
func (k KeyEvent) IsEscape() bool {
	return !k.IsSpecial() && (k.Rune == KeyEsc || k.Rune == KeyCtrlC)
}

// IsEnter reports whether the event confirms a line of input.
func (k KeyEvent) IsEnter() bool {
	return !k.IsSpecial() && (k.Rune == KeyEnter || k.Rune == KeyNewline)
}

// IsBackspace reports whether the event erases the previous character.
func (k KeyEvent) IsBackspace() bool {
	return !k.IsSpecial() && (k.Rune == KeyBackspace || k.Rune == KeyDelete)
}

// Direction maps arrow keys to a direction. ok is false for other keys.
func (k KeyEvent) Direction() (d Direction, ok bool) {
	switch k.SpecialKey {
	case KeyArrowUp:
		return North, true
	case KeyArrowDown:
		return South, true
	case KeyArrowLeft:
		return West, true
	case KeyArrowRight:
		return East, true
	}
	return 0, false
}

// KeySource delivers key events one at a time, blocking until one is
// available.
type KeySource interface {
	ReadKey() KeyEvent
}

// CancelProbe reports whether the user has asked to stop a running loop.
// Implementations must not block.
type CancelProbe interface {
	Cancelled() bool
}

// CancelFunc adapts a function to CancelProbe.
type CancelFunc func() bool

// Cancelled calls f.
func (f CancelFunc) Cancelled() bool {
	if f == nil {
		return false
	}
	return f()
}

// NeverCancel is a probe that never reports cancellation.
var NeverCancel CancelProbe = CancelFunc(func() bool { return false })
