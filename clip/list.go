// Package clip records canvas snapshots as animation frames and plays them
// back.
package clip

import (
	"errors"
	"fmt"

	"textart/canvas"
	"textart/core"
	"textart/storage"
)

// MinPlayable is the smallest number of clips that makes an animation.
const MinPlayable = 2

// ErrNoClips is returned when saving an empty list or when loading finds no
// frames at all.
var ErrNoClips = errors.New("no clips")

// List holds clips in recording order: index 0 is the first clip recorded.
type List struct {
	frames []*canvas.Grid
}

// NewList creates an empty clip list.
func NewList() *List {
	return &List{}
}

// Add records a snapshot of g as the newest clip.
func (l *List) Add(g *canvas.Grid) {
	l.frames = append(l.frames, g.Clone())
}

// Len returns the number of clips.
func (l *List) Len() int {
	return len(l.frames)
}

// Playable reports whether the list holds enough clips to animate.
func (l *List) Playable() bool {
	return len(l.frames) >= MinPlayable
}

// Frame returns clip i (0-based, recording order).
func (l *List) Frame(i int) (*canvas.Grid, bool) {
	if i < 0 || i >= len(l.frames) {
		return nil, false
	}
	return l.frames[i], true
}

// Frames returns the clips in recording order. The slice is a copy; the
// grids are shared and must not be modified.
func (l *List) Frames() []*canvas.Grid {
	out := make([]*canvas.Grid, len(l.frames))
	copy(out, l.frames)
	return out
}

// Clear drops every clip.
func (l *List) Clear() {
	for i := range l.frames {
		l.frames[i] = nil
	}
	l.frames = l.frames[:0]
}

// Save writes every clip to its own numbered file, the oldest as frame 1.
// Frames left over from an earlier, longer save under the same name are
// removed so the series on disk matches the list. Files already written are
// kept when a later one fails; all failures are returned together.
func (l *List) Save(s *storage.Store, name string) error {
	if len(l.frames) == 0 {
		return ErrNoClips
	}
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	var errs []error
	for i, g := range l.frames {
		if err := s.SaveFrame(name, i+1, g); err != nil {
			errs = append(errs, fmt.Errorf("clip %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if _, err := s.RemoveFrames(name, len(l.frames)+1); err != nil {
		return err
	}
	return nil
}

// Load replaces the list with the frames stored under name, reading frame 1,
// 2, ... until the first one that is missing or unreadable. It returns the
// number of clips loaded; loading zero clips is an error.
func (l *List) Load(s *storage.Store, name string, cfg core.GridConfig) (int, error) {
	if err := storage.ValidateName(name); err != nil {
		return 0, err
	}
	l.Clear()
	for n := 1; ; n++ {
		g, err := s.LoadFrame(name, n, cfg)
		if err != nil {
			break
		}
		l.frames = append(l.frames, g)
	}
	if len(l.frames) == 0 {
		return 0, fmt.Errorf("%w: nothing stored as %q", ErrNoClips, name)
	}
	return len(l.frames), nil
}
