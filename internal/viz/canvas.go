package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/particlefield/internal/export"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Drawing coordinates are sub-pixels:
// the canvas is (Width*2) x (Height*4) dots. Each cell remembers the last
// colour drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.NRGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set turns on the dot at (x, y) with colour col.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[cy][cx] = col
}

// Lit reports whether the dot at (x, y) is on.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.NRGBA{}
		}
	}
}

// FillCircle lights every dot whose centre lies within r of (x, y).
// Circles smaller than a dot still light the dot under their centre.
func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	w, h := c.Dots()
	if r < 0.5 {
		c.Set(int(math.Floor(x)), int(math.Floor(y)), col)
		return
	}
	x0 := max(0, int(math.Floor(x-r)))
	x1 := min(w-1, int(math.Ceil(x+r)))
	y0 := max(0, int(math.Floor(y-r)))
	y1 := min(h-1, int(math.Ceil(y+r)))
	r2 := r * r
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				c.Set(px, py, col)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with each lit cell coloured by blending its
// colour over the theme background. Runs of equal colour share one style.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] && (row[j] == blank) == (row[start] == blank) {
				continue
			}
			b.WriteString(c.renderRun(t, string(row[start:j]), row[start] == blank, c.Colors[i][start]))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) renderRun(t Theme, run string, empty bool, col color.NRGBA) string {
	style := lipgloss.NewStyle().Background(t.Background)
	if !empty {
		style = style.Foreground(lipgloss.Color(Hex(export.Over(col, t.BackgroundRGB()))))
	}
	return style.Render(run)
}
