package draw

import (
	"math"

	"textart/core"
	"textart/geometry"
)

// Tree and box recursion constants.
const (
	treeDecrement = 2
	treeMinHeight = 2
	boxDecrement  = 2
	boxMinHeight  = 1

	// TrunkAngle points a tree straight up.
	TrunkAngle = 270
)

// Line strokes a segment from start to end.
//
// The glyph is chosen once from the slope. Columns are walked from start to
// end and every row between the previous and current computed row is filled
// at each column, which closes the gaps left by steep lines on a grid whose
// rows are much taller than its columns are wide.
func (d *Drawer) Line(start, end core.DrawPoint) {
	d.begin()
	d.line(start, end)
}

func (d *Drawer) line(start, end core.DrawPoint) {
	from, to := start.Round(), end.Round()

	if from.Col == to.Col {
		d.fillColumn(from.Col, from.Row, to.Row, d.Glyphs.Vertical)
		return
	}

	slope := (start.Row - end.Row) / (start.Col - end.Col)
	ch := d.Glyphs.ForSlope(slope)

	dir := geometry.Sign(to.Col - from.Col)
	prev := 0
	for col := from.Col; ; col += dir {
		row := geometry.RoundInt(slope*(float64(col)-start.Col) + start.Row)
		if col == from.Col {
			prev = row
		}
		d.fillColumn(col, prev, row, ch)
		prev = row
		if col == to.Col {
			break
		}
	}
}

// fillColumn writes ch on every row from startRow to endRow inclusive, in
// that order.
func (d *Drawer) fillColumn(col, startRow, endRow int, ch rune) {
	dir := 1
	if endRow < startRow {
		dir = -1
	}
	for row := startRow; ; row += dir {
		d.step(core.Point{Row: row, Col: col}, ch)
		if row == endRow {
			return
		}
	}
}

// BoxCorners returns the four corners of a box of the given height around
// center, clockwise from top-left. The half width is scaled by the grid's
// columns-per-row ratio so the box looks square on screen.
func (d *Drawer) BoxCorners(center core.Point, height int) [4]core.DrawPoint {
	half := height / 2
	ratio := geometry.RoundInt(d.Grid.Config().Aspect() * float64(half))

	r, c := float64(center.Row), float64(center.Col)
	h, w := float64(half), float64(ratio)
	return [4]core.DrawPoint{
		{Row: r - h, Col: c - w},
		{Row: r - h, Col: c + w},
		{Row: r + h, Col: c + w},
		{Row: r + h, Col: c - w},
	}
}

// Box draws a single box around center.
func (d *Drawer) Box(center core.Point, height int) {
	d.begin()
	d.box(center, height)
}

func (d *Drawer) box(center core.Point, height int) {
	corners := d.BoxCorners(center, height)
	for i := range corners {
		d.line(corners[i], corners[(i+1)%len(corners)])
	}
	for _, p := range corners {
		d.step(p.Round(), d.Glyphs.Corner)
	}
}

// NestedBoxes draws a box and keeps drawing smaller boxes inside it until
// they would be too small to see. It returns the number of boxes drawn.
func (d *Drawer) NestedBoxes(center core.Point, height int) int {
	d.begin()
	return d.nestedBoxes(center, height)
}

func (d *Drawer) nestedBoxes(center core.Point, height int) int {
	if height <= boxMinHeight {
		return 0
	}
	d.box(center, height)
	return 1 + d.nestedBoxes(center, height-boxDecrement)
}

// Tree draws a binary fractal tree rooted at start.
//
// height is the approximate height of the whole tree; each branch is a third
// of the remaining height long. startAngle is the trunk direction (see
// geometry.EndPoint) and branchAngle the angle between a branch and its
// parent. Recursion stops once the height is used up or a branch starts off
// the canvas. It returns the number of segments drawn.
func (d *Drawer) Tree(start core.DrawPoint, height int, startAngle, branchAngle float64) int {
	d.begin()
	return d.tree(start, height, startAngle, branchAngle)
}

func (d *Drawer) tree(start core.DrawPoint, height int, angle, branch float64) int {
	if height <= treeMinHeight || !d.inside(start) {
		return 0
	}
	end := geometry.EndPoint(start, float64(height/3), angle)
	d.line(start, end)

	n := 1
	n += d.tree(end, height-treeDecrement, angle+branch, branch)
	n += d.tree(end, height-treeDecrement, angle-branch, branch)
	return n
}

func (d *Drawer) inside(p core.DrawPoint) bool {
	rows, cols := d.Grid.Size()
	return p.Row >= 0 && p.Row < float64(rows) && p.Col >= 0 && p.Col < float64(cols)
}

// TreeLevels returns how many levels of branches a tree of the given height
// has when no branch leaves the canvas.
func TreeLevels(height int) int {
	if height <= treeMinHeight {
		return 0
	}
	return int(math.Ceil(float64(height-treeMinHeight) / treeDecrement))
}

// FloodFill replaces the 4-connected region of target characters around p
// with replacement and returns the number of cells changed. Filling with the
// character already there does nothing.
func (d *Drawer) FloodFill(p core.Point, target, replacement rune) int {
	d.begin()
	if target == replacement {
		return 0
	}
	return d.fill(p, target, replacement)
}

func (d *Drawer) fill(p core.Point, target, replacement rune) int {
	if !d.Grid.InBounds(p) || d.Grid.Get(p) != target {
		return 0
	}
	d.step(p, replacement)

	n := 1
	n += d.fill(p.Add(1, 0), target, replacement)
	n += d.fill(p.Add(-1, 0), target, replacement)
	n += d.fill(p.Add(0, 1), target, replacement)
	n += d.fill(p.Add(0, -1), target, replacement)
	return n
}
