// Package editor runs an interactive editing session over a canvas.
//
// The editor is headless: it reads keys from a core.KeySource, shows
// everything through a Screen and asks a core.CancelProbe whether a running
// animation should stop. The terminal package supplies all three for a real
// terminal; tests and demos supply scripted ones.
package editor

import (
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"textart/audio"
	"textart/canvas"
	"textart/clip"
	"textart/core"
	"textart/draw"
	"textart/history"
	"textart/storage"
)

// Options configures an Editor. Zero values fall back to defaults.
type Options struct {
	Grid         core.GridConfig
	Store        *storage.Store
	HistoryDepth int
	Animate      bool
	StepDelay    time.Duration
	FrameDelay   time.Duration

	// PlayPasses limits clip playback to that many passes. Zero loops until
	// cancelled.
	PlayPasses int

	Sound  audio.Player
	Logger *slog.Logger
	Sleep  func(time.Duration)
}

// Editor is an interactive canvas editing session
type Editor struct {
	cfg     core.GridConfig
	canvas  *canvas.Grid
	history *history.Manager
	clips   *clip.List
	store   *storage.Store

	screen Screen
	keys   core.KeySource
	cancel core.CancelProbe
	sound  audio.Player
	log    *slog.Logger

	animate    bool
	stepDelay  time.Duration
	frameDelay time.Duration
	playPasses int
	sleep      func(time.Duration)

	mode   Mode
	cursor core.Point
	notice string // shown once in front of the next menu line
}

// New creates an editor with a blank canvas.
func New(screen Screen, keys core.KeySource, cancel core.CancelProbe, opts Options) (*Editor, error) {
	if opts.Grid == (core.GridConfig{}) {
		opts.Grid = core.DefaultGridConfig()
	}
	g, err := canvas.New(opts.Grid)
	if err != nil {
		return nil, err
	}
	if opts.Store == nil {
		opts.Store = storage.NewStore(storage.DefaultDir)
	}
	if opts.StepDelay <= 0 {
		opts.StepDelay = draw.DefaultStepDelay
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = clip.DefaultFrameDelay
	}
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if cancel == nil {
		cancel = core.NeverCancel
	}

	return &Editor{
		cfg:        opts.Grid,
		canvas:     g,
		history:    history.NewManager(opts.HistoryDepth),
		clips:      clip.NewList(),
		store:      opts.Store,
		screen:     screen,
		keys:       keys,
		cancel:     cancel,
		sound:      opts.Sound,
		log:        opts.Logger,
		animate:    opts.Animate,
		stepDelay:  opts.StepDelay,
		frameDelay: opts.FrameDelay,
		playPasses: opts.PlayPasses,
		sleep:      opts.Sleep,
		mode:       ModeMain,
	}, nil
}

// Canvas returns the canvas being edited.
func (e *Editor) Canvas() *canvas.Grid {
	return e.canvas
}

// Clips returns the recorded clip list.
func (e *Editor) Clips() *clip.List {
	return e.clips
}

// History returns the undo/redo manager.
func (e *Editor) History() *history.Manager {
	return e.history
}

// Mode returns the current editor mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Animating reports whether drawing tools animate their strokes.
func (e *Editor) Animating() bool {
	return e.animate
}

// Run shows the main menu and handles commands until the user quits.
func (e *Editor) Run() error {
	e.log.Info("editor started", "rows", e.cfg.Rows, "cols", e.cfg.Cols)
	defer e.log.Info("editor stopped")

	for {
		e.mode = ModeMain
		e.render(mainMenu)

		key := e.keys.ReadKey()
		if key.IsSpecial() {
			continue
		}
		if key.Rune == core.KeyCtrlC || unicode.ToLower(key.Rune) == 'q' {
			return nil
		}
		e.handleMainKey(unicode.ToLower(key.Rune))
	}
}

// render repaints the canvas and shows the menu line, prefixed by any
// pending notice.
func (e *Editor) render(menu string) {
	e.screen.DrawCanvas(e.canvas)
	if e.notice != "" {
		menu = fmt.Sprintf("%s | %s", e.notice, menu)
		e.notice = ""
	}
	e.screen.Status(menu)
	e.screen.Show()
}

// notify queues a message for the next menu line.
func (e *Editor) notify(format string, args ...any) {
	e.notice = fmt.Sprintf(format, args...)
}

// fail queues an error message and buzzes.
func (e *Editor) fail(format string, args ...any) {
	e.notify(format, args...)
	e.sound.Error()
}
