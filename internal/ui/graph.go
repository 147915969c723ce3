package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumant1122/xtop/internal/monitor"
)

// Braille patterns give each cell a 2x4 dot matrix:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// U+2800 is the empty pattern; bit n sets dot n+1.
const brailleBase = '⠀'

// brailleDots maps [row][col] inside a cell to the pattern bit.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// brailleCanvas is a width x height cell grid addressed in dots.
type brailleCanvas struct {
	width, height int
	cells         [][]rune
}

func newBrailleCanvas(width, height int) *brailleCanvas {
	c := &brailleCanvas{width: width, height: height, cells: make([][]rune, height)}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(string(brailleBase), width))
	}
	return c
}

// set lights the dot at (x, y); (0, 0) is the top left dot.
func (c *brailleCanvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.width*2 || y >= c.height*4 {
		return
	}
	c.cells[y/4][x/2] |= rune(1) << brailleDots[y%4][x%2]
}

// line draws between two dots with Bresenham's algorithm.
func (c *brailleCanvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *brailleCanvas) rows() []string {
	out := make([]string, c.height)
	for i, r := range c.cells {
		out[i] = string(r)
	}
	return out
}

// plotBounds is the data window mapped onto a canvas.
type plotBounds struct {
	minX, maxX float64
	minY, maxY float64
}

func (b plotBounds) dot(p monitor.Point, dotsX, dotsY int) (int, int, bool) {
	if b.maxX <= b.minX || b.maxY <= b.minY {
		return 0, 0, false
	}
	if p.X < b.minX || p.X > b.maxX || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	y := min(max(p.Y, b.minY), b.maxY)
	dx := int(math.Round((p.X - b.minX) / (b.maxX - b.minX) * float64(dotsX-1)))
	dy := int(math.Round((y - b.minY) / (b.maxY - b.minY) * float64(dotsY-1)))
	return dx, dotsY - 1 - dy, true
}

// lineChart renders points as a braille line inside bounds. Consecutive
// visible points are joined.
func lineChart(points []monitor.Point, bounds plotBounds, width, height int, style lipgloss.Style) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	c := newBrailleCanvas(width, height)
	dotsX, dotsY := width*2, height*4

	havePrev := false
	var px, py int
	for _, p := range points {
		x, y, ok := bounds.dot(p, dotsX, dotsY)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			c.line(px, py, x, y)
		} else {
			c.set(x, y)
		}
		px, py, havePrev = x, y, true
	}

	rows := c.rows()
	for i, r := range rows {
		rows[i] = style.Render(r)
	}
	return rows
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
