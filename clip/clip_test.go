package clip

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textart/canvas"
	"textart/core"
	"textart/storage"
)

var cfg = core.GridConfig{Rows: 4, Cols: 10}

// frames builds k distinct grids: frame i has its number written along a
// diagonal.
func frames(t *testing.T, k int) []*canvas.Grid {
	t.Helper()
	out := make([]*canvas.Grid, k)
	for i := range out {
		g := canvas.MustNew(cfg)
		for row := 0; row < cfg.Rows; row++ {
			g.Set(core.Point{Row: row, Col: (row + i) % cfg.Cols}, rune('0'+i%10))
		}
		out[i] = g
	}
	return out
}

func listOf(gs []*canvas.Grid) *List {
	l := NewList()
	for _, g := range gs {
		l.Add(g)
	}
	return l
}

func TestAddKeepsRecordingOrderAndSnapshots(t *testing.T) {
	gs := frames(t, 3)
	l := listOf(gs)

	require.Equal(t, 3, l.Len())
	for i, g := range l.Frames() {
		assert.True(t, gs[i].Equal(g), "frame %d", i)
		assert.NotSame(t, gs[i], g)
	}

	gs[0].Init()
	first, ok := l.Frame(0)
	require.True(t, ok)
	assert.False(t, gs[0].Equal(first), "clip must not follow the live canvas")

	_, ok = l.Frame(3)
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, k := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d clips", k), func(t *testing.T) {
			s := storage.NewStore(t.TempDir())
			gs := frames(t, k)
			require.NoError(t, listOf(gs).Save(s, "anim"))

			loaded := NewList()
			n, err := loaded.Load(s, "anim", cfg)
			require.NoError(t, err)
			require.Equal(t, k, n)

			for i, g := range loaded.Frames() {
				assert.Equal(t, gs[i].String(), g.String(), "frame %d", i+1)
			}
		})
	}
}

func TestSaveNumbersFromOne(t *testing.T) {
	s := storage.NewStore(t.TempDir())
	gs := frames(t, 2)
	require.NoError(t, listOf(gs).Save(s, "walk"))

	first, err := os.ReadFile(filepath.Join(s.Dir, "walk-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, gs[0].String()+"\n", string(first))
}

func TestSaveEmptyFails(t *testing.T) {
	s := storage.NewStore(t.TempDir())
	assert.ErrorIs(t, NewList().Save(s, "none"), ErrNoClips)
}

func TestSaveInvalidName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := storage.NewStore(dir)

	err := listOf(frames(t, 2)).Save(s, "a?b")
	assert.ErrorIs(t, err, storage.ErrInvalidFilename)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveRemovesStaleFrames(t *testing.T) {
	s := storage.NewStore(t.TempDir())
	require.NoError(t, listOf(frames(t, 5)).Save(s, "anim"))
	require.NoError(t, listOf(frames(t, 2)).Save(s, "anim"))

	n, err := NewList().Load(s, "anim", cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoadStopsAtFirstGap(t *testing.T) {
	s := storage.NewStore(t.TempDir())
	gs := frames(t, 4)
	require.NoError(t, s.SaveFrame("gap", 1, gs[0]))
	require.NoError(t, s.SaveFrame("gap", 2, gs[1]))
	require.NoError(t, s.SaveFrame("gap", 4, gs[3]))

	l := listOf(frames(t, 3))
	n, err := l.Load(s, "gap", cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, l.Len(), "existing clips are replaced")
}

func TestLoadNothing(t *testing.T) {
	s := storage.NewStore(t.TempDir())
	l := listOf(frames(t, 2))

	n, err := l.Load(s, "missing", cfg)
	assert.ErrorIs(t, err, ErrNoClips)
	assert.Zero(t, n)
	assert.Zero(t, l.Len())
}

type recordingDisplay struct {
	frames []Frame
}

func (d *recordingDisplay) ShowFrame(f Frame) { d.frames = append(d.frames, f) }

// cancelAfter fires once it has been polled more than n times.
func cancelAfter(n int) core.CancelProbe {
	polls := 0
	return core.CancelFunc(func() bool {
		polls++
		return polls > n
	})
}

func TestPlayNeedsTwoClips(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPlayer(d, cancelAfter(100))
	p.Sleep = func(time.Duration) {}

	assert.Zero(t, p.Play(NewList()))
	assert.Zero(t, p.Play(listOf(frames(t, 1))))
	assert.Empty(t, d.frames)
}

func TestPlayRecordingOrderAndPasses(t *testing.T) {
	gs := frames(t, 3)
	d := &recordingDisplay{}
	var slept []time.Duration

	p := NewPlayer(d, core.NeverCancel)
	p.MaxPasses = 2
	p.Sleep = func(dur time.Duration) { slept = append(slept, dur) }

	shown := p.Play(listOf(gs))

	require.Equal(t, 6, shown)
	require.Len(t, d.frames, 6)
	for i, f := range d.frames {
		assert.True(t, gs[i%3].Equal(f.Grid), "frame %d", i)
		assert.Equal(t, i%3+1, f.Number)
		assert.Equal(t, 3, f.Total)
		assert.Equal(t, 3-i%3, f.Remaining())
	}
	assert.Len(t, slept, 6)
	assert.Equal(t, DefaultFrameDelay, slept[0])
}

func TestPlayLoopsUntilCancelled(t *testing.T) {
	d := &recordingDisplay{}
	// Two polls per frame: before showing and before the pause.
	p := NewPlayer(d, cancelAfter(2*7))
	p.Sleep = func(time.Duration) {}

	shown := p.Play(listOf(frames(t, 3)))

	assert.Equal(t, 7, shown, "more than two full passes, cut mid-pass")
	assert.Equal(t, 1, d.frames[6].Number)
}

func TestPlayCancelledBeforeFirstFrame(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPlayer(d, core.CancelFunc(func() bool { return true }))
	p.Sleep = func(time.Duration) { t.Fatal("should not pause") }

	assert.Zero(t, p.Play(listOf(frames(t, 2))))
}

type countingSurface struct{ plots int }

func (s *countingSurface) Plot(core.Point, rune) { s.plots++ }
func (s *countingSurface) Show()                 {}

func TestPlayAnimateRevealsChangedCells(t *testing.T) {
	gs := frames(t, 2)
	d := &recordingDisplay{}
	surface := &countingSurface{}

	p := NewPlayer(d, core.NeverCancel)
	p.MaxPasses = 1
	p.Animate = true
	p.Surface = surface
	p.Sleep = func(time.Duration) {}

	assert.Equal(t, 2, p.Play(listOf(gs)))
	// Frame 2 moves every one of the four marks and changes their glyph.
	assert.Equal(t, 8, surface.plots)
}

func TestPlayAnimateCancelsMidFrame(t *testing.T) {
	gs := frames(t, 2)
	d := &recordingDisplay{}
	surface := &countingSurface{}

	// Polls: before frame 1, after frame 1, before frame 2, then per cell.
	p := NewPlayer(d, cancelAfter(3+2))
	p.Animate = true
	p.Surface = surface
	p.Sleep = func(time.Duration) {}

	assert.Equal(t, 1, p.Play(listOf(gs)))
	assert.Equal(t, 2, surface.plots)
}

func TestOnFrameHook(t *testing.T) {
	var seen []int
	p := NewPlayer(&recordingDisplay{}, core.NeverCancel)
	p.MaxPasses = 1
	p.Sleep = func(time.Duration) {}
	p.OnFrame = func(f Frame) { seen = append(seen, f.Number) }

	p.Play(listOf(frames(t, 3)))
	assert.Equal(t, []int{1, 2, 3}, seen)
}
