package editor

import (
	"errors"
	"unicode"

	"textart/clip"
)

// animationMenu runs the clip menu until <M> or ESC.
func (e *Editor) animationMenu() {
	for {
		e.mode = ModeAnimation
		e.render(animationMenu(e.clips.Len()))

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
			e.clips.Add(e.canvas)
			e.notify("Clip %d added", e.clips.Len())
		case 'p':
			e.playClips()
		case 's':
			e.saveClips()
		case 'l':
			e.loadClips()
		case 'x':
			e.clips.Clear()
			e.notify("Clips cleared")
		}
	}
}

// player returns a clip player wired to the screen and cancel probe.
func (e *Editor) player() *clip.Player {
	p := clip.NewPlayer(e.screen, e.cancel)
	p.FrameDelay = e.frameDelay
	p.StepDelay = e.stepDelay
	p.Sleep = e.sleep
	p.Animate = e.animate
	p.Surface = e.screen
	p.MaxPasses = e.playPasses
	p.OnFrame = func(clip.Frame) { e.sound.Tick() }
	return p
}

func (e *Editor) playClips() {
	if !e.clips.Playable() {
		e.fail("Need at least %d clips to play", clip.MinPlayable)
		return
	}
	prev := e.mode
	e.mode = ModePlay
	defer func() { e.mode = prev }()

	e.screen.Status(promptPlaying)
	shown := e.player().Play(e.clips)
	e.log.Debug("playback stopped", "frames", shown)
}

func (e *Editor) saveClips() {
	if e.clips.Len() == 0 {
		e.fail("No clips to save")
		return
	}
	name, ok := e.readLine(promptClipSave)
	if !ok {
		return
	}
	if err := e.clips.Save(e.store, name); err != nil {
		e.log.Warn("clip save failed", "name", name, "clips", e.clips.Len(), "error", err)
		e.failStorage(err, "ERROR: Clips could not be written.")
		return
	}
	e.log.Info("clips saved", "name", name, "clips", e.clips.Len())
	e.notify("Saved %d clips", e.clips.Len())
}

func (e *Editor) loadClips() {
	name, ok := e.readLine(promptClipLoad)
	if !ok {
		return
	}
	n, err := e.clips.Load(e.store, name, e.cfg)
	if err != nil {
		e.log.Warn("clip load failed", "name", name, "error", err)
		if errors.Is(err, clip.ErrNoClips) {
			e.fail("ERROR: No clips named %s", name)
			return
		}
		e.failStorage(err, "ERROR: Clips cannot be read.")
		return
	}
	e.log.Info("clips loaded", "name", name, "clips", n)
	e.notify("Loaded %d clips", n)
}

