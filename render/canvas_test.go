package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/vmath"
)

var testBg = core.RGB{R: 10, G: 10, B: 30}

func TestCanvasPointMapsWorldToCell(t *testing.T) {
	c := NewCanvas(20, 10, 5, 10)
	c.Clear(testBg)

	c.Point(52, 37, core.RGB{R: 255}, core.MaxAlpha, 5)

	cell := c.Cell(10, 3)
	if cell.Rune != GlyphHeavy {
		t.Errorf("Expected heavy glyph at (10,3), got %q", cell.Rune)
	}
	if cell.Fg != (core.RGB{R: 255}) {
		t.Errorf("Expected opaque red, got %v", cell.Fg)
	}
}

func TestCanvasPointAlpha(t *testing.T) {
	c := NewCanvas(4, 4, 1, 1)
	c.Clear(core.RGBBlack)

	c.Point(1, 1, core.RGBWhite, 0, 3)
	if c.Cell(1, 1).Rune != GlyphEmpty {
		t.Error("Expected zero alpha to draw nothing")
	}

	c.Point(2, 2, core.RGBWhite, -40, 3)
	if c.Cell(2, 2).Rune != GlyphEmpty {
		t.Error("Expected negative alpha to draw nothing")
	}

	c.Point(3, 3, core.RGBWhite, 51, 3)
	got := c.Cell(3, 3)
	if got.Rune != GlyphMid {
		t.Errorf("Expected mid glyph, got %q", got.Rune)
	}
	if got.Fg.R < 45 || got.Fg.R > 56 {
		t.Errorf("Expected ~20%% white, got %v", got.Fg)
	}
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(4, 4, 1, 1)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Out of bounds draw panicked: %v", r)
		}
	}()
	c.Point(-1, 2, core.RGBWhite, 255, 5)
	c.Point(2, 400, core.RGBWhite, 255, 5)
	c.Polyline([]vmath.Vec2F{{X: -10, Y: -10}, {X: 10, Y: 10}}, core.RGBWhite, 255, 2)
}

func TestCanvasPolylineConnectsPoints(t *testing.T) {
	c := NewCanvas(10, 10, 1, 1)
	c.Clear(core.RGBBlack)

	c.Polyline([]vmath.Vec2F{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4}}, core.RGBWhite, 255, 2)

	for x := 0; x <= 5; x++ {
		if c.Cell(x, 0).Rune != GlyphLight {
			t.Errorf("Expected line glyph at (%d,0), got %q", x, c.Cell(x, 0).Rune)
		}
	}
	for y := 0; y <= 4; y++ {
		if c.Cell(5, y).Rune != GlyphLight {
			t.Errorf("Expected line glyph at (5,%d), got %q", y, c.Cell(5, y).Rune)
		}
	}
	if c.Cell(3, 3).Rune != GlyphEmpty {
		t.Error("Expected cells off the path untouched")
	}
}

func TestCanvasPolylineRepeatedPointsCompositeOnce(t *testing.T) {
	c := NewCanvas(4, 4, 1, 1)
	c.Clear(core.RGBBlack)

	pts := make([]vmath.Vec2F, 10)
	for i := range pts {
		pts[i] = vmath.Vec2F{X: 1, Y: 1}
	}
	c.Polyline(pts, core.RGBWhite, 51, 2)

	once := NewCanvas(4, 4, 1, 1)
	once.Clear(core.RGBBlack)
	once.Point(1, 1, core.RGBWhite, 51, 2)

	if c.Cell(1, 1).Fg != once.Cell(1, 1).Fg {
		t.Errorf("Expected stacked anchor points to blend once, got %v want %v", c.Cell(1, 1).Fg, once.Cell(1, 1).Fg)
	}
}

func TestCanvasFadeDissolvesGlyphs(t *testing.T) {
	c := NewCanvas(3, 3, 1, 1)
	c.Clear(testBg)
	c.Point(1, 1, core.RGBWhite, 255, 5)

	frames := 0
	for c.Cell(1, 1).Rune != GlyphEmpty {
		c.Fade(testBg, 25)
		frames++
		if frames > 200 {
			t.Fatal("Glyph never faded")
		}
	}
	if frames < 5 {
		t.Errorf("Expected a visible motion-blur tail, faded in %d frames", frames)
	}
	if got := c.Cell(1, 1).Bg; got != testBg {
		t.Errorf("Expected background %v, got %v", testBg, got)
	}
}

func TestCanvasResizeKeepsCapacity(t *testing.T) {
	c := NewCanvas(10, 10, 2, 4)
	c.Resize(5, 5)
	if w, h := c.Bounds(); w != 5 || h != 5 {
		t.Errorf("Expected 5x5, got %dx%d", w, h)
	}
	if cap(c.cells) < 100 {
		t.Errorf("Expected capacity retained, got %d", cap(c.cells))
	}
	if w, h := c.WorldSize(); w != 10 || h != 20 {
		t.Errorf("Expected world size 10x20, got %fx%f", w, h)
	}
}

func TestCanvasFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 4)

	c := NewCanvas(8, 4, 1, 1)
	c.Clear(testBg)
	c.Point(2, 1, core.RGB{R: 200, G: 100, B: 50}, 255, 3)
	c.Flush(screen)

	r, _, style, _ := screen.GetContent(2, 1)
	if r != GlyphMid {
		t.Errorf("Expected %q on screen, got %q", GlyphMid, r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(200, 100, 50) {
		t.Errorf("Expected spark foreground, got %v", fg)
	}
	if bg != ToTcell(testBg) {
		t.Errorf("Expected background %v, got %v", ToTcell(testBg), bg)
	}

	r, _, _, _ = screen.GetContent(0, 0)
	if r != GlyphEmpty {
		t.Errorf("Expected blank cell, got %q", r)
	}
}
