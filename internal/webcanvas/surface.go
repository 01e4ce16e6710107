//go:build js && wasm

package webcanvas

import (
	"image/color"
	"math"
	"syscall/js"

	"github.com/san-kum/particlefield/internal/config"
)

// Surface draws onto a CanvasRenderingContext2D.
type Surface struct {
	canvas js.Value
	ctx    js.Value
	// fill caches fillStyle strings so per-frame drawing does not format.
	fill map[color.NRGBA]string
}

// NewSurface returns nil when canvas has no 2D context.
func NewSurface(canvas js.Value) *Surface {
	if canvas.IsUndefined() || canvas.IsNull() {
		return nil
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil
	}
	return &Surface{canvas: canvas, ctx: ctx, fill: make(map[color.NRGBA]string)}
}

func (s *Surface) Clear() {
	s.ctx.Call("clearRect", 0, 0, s.canvas.Get("width"), s.canvas.Get("height"))
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	style, ok := s.fill[c]
	if !ok {
		style = config.FormatRGBA(c)
		s.fill[c] = style
	}
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	s.ctx.Set("fillStyle", style)
	s.ctx.Call("fill")
}

// SetSize sets the canvas backing store size.
func (s *Surface) SetSize(width, height float64) {
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}
