package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/vmath"
)

// Glyphs by stroke width, heaviest first
const (
	GlyphHeavy = '●'
	GlyphMid   = '•'
	GlyphLight = '·'
	GlyphEmpty = ' '
)

// fadeCutoff is the RGB distance below which a faded glyph is dropped
// 8-bit rounding stalls the wash about 5 levels short of the background, this must sit above that
const fadeCutoff = 0.05

// Cell is one terminal cell of the composited frame
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// visible returns the color currently shown by the cell
func (c *Cell) visible() core.RGB {
	if c.Rune == GlyphEmpty || c.Rune == 0 {
		return c.Bg
	}
	return c.Fg
}

// Canvas is a persistent cell buffer mapping world coordinates onto terminal cells
// The frame is never cleared between ticks; Fade washes it toward the background
type Canvas struct {
	cells  []Cell
	width  int
	height int

	scaleX float64 // World units per cell column
	scaleY float64 // World units per cell row
}

// NewCanvas creates a canvas of width x height cells
func NewCanvas(width, height int, scaleX, scaleY float64) *Canvas {
	c := &Canvas{
		scaleX: scaleX,
		scaleY: scaleY,
	}
	c.Resize(width, height)
	return c
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = width
	c.height = height
	c.Clear(core.RGBBlack)
}

// Clear resets all cells to bg using exponential copy
func (c *Canvas) Clear(bg core.RGB) {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{Rune: GlyphEmpty, Fg: bg, Bg: bg}
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Bounds returns the size in cells
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// WorldSize returns the size in world units
func (c *Canvas) WorldSize() (float64, float64) {
	return float64(c.width) * c.scaleX, float64(c.height) * c.scaleY
}

// Cell returns a copy of the cell at (x, y); out of bounds yields the zero cell
func (c *Canvas) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// toCell maps world coordinates to a cell
func (c *Canvas) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.scaleX)), int(math.Floor(y / c.scaleY))
}

// Fade blends every cell toward bg and drops glyphs that have dissolved into it
func (c *Canvas) Fade(bg core.RGB, alpha float64) {
	alpha = clampAlpha(alpha)
	bgc := bg.Colorful()
	for i := range c.cells {
		cell := &c.cells[i]
		cell.Bg = cell.Bg.BlendAlpha255(bg, alpha)
		if cell.Rune == GlyphEmpty || cell.Rune == 0 {
			cell.Fg = cell.Bg
			continue
		}
		cell.Fg = cell.Fg.BlendAlpha255(bg, alpha)
		if cell.Fg.Colorful().DistanceRgb(bgc) < fadeCutoff {
			cell.Rune = GlyphEmpty
			cell.Fg = cell.Bg
		}
	}
}

// Point composites color c over the cell containing (x, y)
func (c *Canvas) Point(x, y float64, col core.RGB, alpha, width float64) {
	alpha = clampAlpha(alpha)
	if alpha == 0 {
		return
	}
	cx, cy := c.toCell(x, y)
	c.plot(cx, cy, col, alpha, glyphFor(width))
}

// Polyline draws connected segments between consecutive points
func (c *Canvas) Polyline(pts []vmath.Vec2F, col core.RGB, alpha, width float64) {
	alpha = clampAlpha(alpha)
	if alpha == 0 || len(pts) == 0 {
		return
	}
	glyph := glyphFor(width)

	// Each cell is composited once per call so overlapping segments do not stack alpha
	seen := make(map[int]struct{}, len(pts))
	visit := func(x, y int) {
		if !c.inBounds(x, y) {
			return
		}
		idx := y*c.width + x
		if _, ok := seen[idx]; ok {
			return
		}
		seen[idx] = struct{}{}
		c.plot(x, y, col, alpha, glyph)
	}

	x0, y0 := c.toCell(pts[0].X, pts[0].Y)
	visit(x0, y0)
	for _, p := range pts[1:] {
		x1, y1 := c.toCell(p.X, p.Y)
		bresenham(x0, y0, x1, y1, visit)
		x0, y0 = x1, y1
	}
}

// plot blends col over whatever the cell currently shows
func (c *Canvas) plot(x, y int, col core.RGB, alpha float64, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.Fg = cell.visible().BlendAlpha255(col, alpha)
	if glyphWeight(glyph) >= glyphWeight(cell.Rune) || alpha >= core.MaxAlpha/2 {
		cell.Rune = glyph
	}
}

// Flush writes the frame to the screen and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for x := range row {
			cell := &row[x]
			r := cell.Rune
			if r == 0 {
				r = GlyphEmpty
			}
			screen.SetContent(x, y, r, nil, StyleFor(cell.Fg, cell.Bg))
		}
	}
	screen.Show()
}

// StyleFor converts a color pair into a tcell style
func StyleFor(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}

// ToTcell converts a color for tcell
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampAlpha(a float64) float64 {
	if a <= 0 || math.IsNaN(a) {
		return 0
	}
	if a >= core.MaxAlpha {
		return core.MaxAlpha
	}
	return a
}

func glyphFor(width float64) rune {
	switch {
	case width >= 5:
		return GlyphHeavy
	case width >= 3:
		return GlyphMid
	default:
		return GlyphLight
	}
}

func glyphWeight(r rune) int {
	switch r {
	case GlyphHeavy:
		return 3
	case GlyphMid:
		return 2
	case GlyphLight:
		return 1
	default:
		return 0
	}
}

// bresenham visits every cell on the segment, including both endpoints
func bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
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
		visit(x0, y0)
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
