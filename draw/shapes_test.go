package draw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textart/canvas"
	"textart/core"
)

func newDrawer(t *testing.T, rows, cols int) *Drawer {
	t.Helper()
	g, err := canvas.New(core.GridConfig{Rows: rows, Cols: cols})
	require.NoError(t, err)
	return New(g)
}

func dp(row, col float64) core.DrawPoint {
	return core.DrawPoint{Row: row, Col: col}
}

func TestGlyphsForSlope(t *testing.T) {
	g := DefaultGlyphs()
	tests := []struct {
		slope float64
		want  rune
	}{
		{5, '|'},
		{1.81, '|'},
		{1.8, '`'},
		{0.5, '`'},
		{0.08, '-'},
		{0, '-'},
		{-0.08, '\''},
		{-1, '\''},
		{-1.8, '|'},
		{-9, '|'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.ForSlope(tt.slope), "slope %v", tt.slope)
	}
}

func TestLine(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(2, 1), dp(2, 5))
		assert.Equal(t, " -----    ", d.Grid.Row(2))
		assert.Equal(t, 5, d.Grid.Count('-'))
	})

	t.Run("horizontal right to left", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(2, 5), dp(2, 1))
		assert.Equal(t, " -----    ", d.Grid.Row(2))
	})

	t.Run("vertical", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(4, 3), dp(0, 3))
		for row := 0; row < 5; row++ {
			assert.Equal(t, '|', d.Grid.Get(core.Point{Row: row, Col: 3}))
		}
		assert.Equal(t, 5, d.Grid.Count('|'))
	})

	t.Run("diagonal fills row gaps", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(0, 0), dp(4, 4))

		assert.Equal(t, '`', d.Grid.Get(core.Point{Row: 0, Col: 0}))
		for col := 1; col <= 4; col++ {
			assert.Equal(t, '`', d.Grid.Get(core.Point{Row: col - 1, Col: col}))
			assert.Equal(t, '`', d.Grid.Get(core.Point{Row: col, Col: col}))
		}
		assert.Equal(t, 9, d.Grid.Count('`'))
	})

	t.Run("steep rising uses vertical glyph", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(4, 0), dp(0, 1))

		assert.Equal(t, '|', d.Grid.Get(core.Point{Row: 4, Col: 0}))
		for row := 0; row < 5; row++ {
			assert.Equal(t, '|', d.Grid.Get(core.Point{Row: row, Col: 1}))
		}
	})

	t.Run("shallow rising", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(3, 0), dp(1, 8))
		assert.Positive(t, d.Grid.Count('\''))
		assert.Zero(t, d.Grid.Count('`'))
	})

	t.Run("clipped at the edge", func(t *testing.T) {
		d := newDrawer(t, 5, 10)
		d.Line(dp(2, -5), dp(2, 20))
		assert.Equal(t, "----------", d.Grid.Row(2))
	})
}

func TestBox(t *testing.T) {
	d := newDrawer(t, 20, 40)
	center := core.Point{Row: 10, Col: 20}

	corners := d.BoxCorners(center, 6)
	assert.Equal(t, [4]core.DrawPoint{dp(7, 14), dp(7, 26), dp(13, 26), dp(13, 14)}, corners)

	d.Box(center, 6)

	assert.Equal(t, 4, d.Grid.Count('+'))
	for _, c := range corners {
		assert.Equal(t, '+', d.Grid.Get(c.Round()))
	}
	assert.Equal(t, 22, d.Grid.Count('-'), "top and bottom edges")
	assert.Equal(t, 10, d.Grid.Count('|'), "left and right edges")
	assert.Equal(t, "+-----------+", d.Grid.Row(7)[14:27])
	assert.Equal(t, "|           |", d.Grid.Row(10)[14:27])
}

func TestNestedBoxes(t *testing.T) {
	d := newDrawer(t, 20, 40)

	assert.Equal(t, 3, d.NestedBoxes(core.Point{Row: 10, Col: 20}, 6))
	assert.Equal(t, 12, d.Grid.Count('+'))

	d.Grid.Init()
	assert.Zero(t, d.NestedBoxes(core.Point{Row: 10, Col: 20}, 1))
	assert.Equal(t, 20*40, d.Grid.Count(canvas.Blank))
}

func TestTree(t *testing.T) {
	tests := []struct {
		height int
		levels int
	}{
		{2, 0},
		{3, 1},
		{6, 2},
		{9, 4},
		{10, 4},
	}

	for _, tt := range tests {
		d := newDrawer(t, 60, 200)
		segments := d.Tree(dp(50, 100), tt.height, TrunkAngle, 30)

		assert.Equal(t, tt.levels, TreeLevels(tt.height), "height %d", tt.height)
		assert.Equal(t, 1<<tt.levels-1, segments, "height %d", tt.height)
	}
}

func TestTreeStopsOffCanvas(t *testing.T) {
	d := newDrawer(t, 10, 10)

	assert.Zero(t, d.Tree(dp(-1, 5), 20, TrunkAngle, 45))
	assert.Zero(t, d.Tree(dp(5, 10), 20, TrunkAngle, 45))

	// The trunk leaves through the top edge so no branch can start.
	assert.Equal(t, 1, d.Tree(dp(1, 5), 12, TrunkAngle, 45))
}

func TestTreeTrunk(t *testing.T) {
	d := newDrawer(t, 20, 20)
	d.Tree(dp(19, 10), 3, TrunkAngle, 45)

	assert.Equal(t, '|', d.Grid.Get(core.Point{Row: 19, Col: 10}))
	assert.Equal(t, '|', d.Grid.Get(core.Point{Row: 18, Col: 10}))
	assert.Equal(t, 2, d.Grid.Count('|'))
}

func TestFloodFill(t *testing.T) {
	t.Run("blank grid fills completely", func(t *testing.T) {
		d := newDrawer(t, 10, 20)
		n := d.FloodFill(core.Point{}, canvas.Blank, 'X')

		assert.Equal(t, 200, n)
		assert.Equal(t, 200, d.Grid.Count('X'))
	})

	t.Run("stays inside a box", func(t *testing.T) {
		d := newDrawer(t, 20, 40)
		d.Box(core.Point{Row: 10, Col: 20}, 6)

		n := d.FloodFill(core.Point{Row: 10, Col: 20}, canvas.Blank, '.')

		assert.Equal(t, 5*11, n)
		assert.Equal(t, canvas.Blank, d.Grid.Get(core.Point{Row: 0, Col: 0}))
	})

	t.Run("same glyph is a no-op", func(t *testing.T) {
		d := newDrawer(t, 5, 5)
		before := d.Grid.Clone()

		assert.Zero(t, d.FloodFill(core.Point{Row: 2, Col: 2}, canvas.Blank, canvas.Blank))
		assert.True(t, before.Equal(d.Grid))
	})

	t.Run("start outside or on other glyph", func(t *testing.T) {
		d := newDrawer(t, 5, 5)
		d.Grid.Set(core.Point{Row: 1, Col: 1}, '#')

		assert.Zero(t, d.FloodFill(core.Point{Row: -1, Col: 0}, canvas.Blank, 'X'))
		assert.Zero(t, d.FloodFill(core.Point{Row: 1, Col: 1}, canvas.Blank, 'X'))
		assert.Zero(t, d.Grid.Count('X'))
	})
}

type recordingSurface struct {
	plots []core.Point
	shows int
}

func (s *recordingSurface) Plot(p core.Point, ch rune) { s.plots = append(s.plots, p) }
func (s *recordingSurface) Show()                      { s.shows++ }

func TestAnimatePlotsEachStep(t *testing.T) {
	d := newDrawer(t, 5, 10)
	surface := &recordingSurface{}
	var slept []time.Duration

	d.Animate = true
	d.Surface = surface
	d.Sleep = func(dur time.Duration) { slept = append(slept, dur) }

	d.Line(dp(1, 0), dp(1, 3))

	assert.Equal(t, []core.Point{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, surface.plots)
	assert.Equal(t, 4, surface.shows)
	assert.Len(t, slept, 4)
	assert.Equal(t, DefaultStepDelay, slept[0])
}

func TestAnimateCancelCompletesShape(t *testing.T) {
	plain := newDrawer(t, 20, 40)
	plain.Box(core.Point{Row: 10, Col: 20}, 6)

	d := newDrawer(t, 20, 40)
	surface := &recordingSurface{}
	polls := 0
	d.Animate = true
	d.Surface = surface
	d.Sleep = func(time.Duration) {}
	d.Cancel = core.CancelFunc(func() bool {
		polls++
		return polls > 3
	})

	d.Box(core.Point{Row: 10, Col: 20}, 6)

	assert.True(t, d.Skipped())
	assert.Len(t, surface.plots, 3)
	assert.True(t, plain.Grid.Equal(d.Grid))
}
