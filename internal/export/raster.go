package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Raster paints particles onto an RGBA image with source-over blending.
type Raster struct {
	Image      *image.RGBA
	Background color.NRGBA

	z *vector.Rasterizer
}

func NewRaster(width, height int, bg color.NRGBA) *Raster {
	r := &Raster{
		Image:      image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		Background: bg,
		z:          vector.NewRasterizer(0, 0),
	}
	r.z.DrawOp = draw.Src
	r.Clear()
	return r
}

func (r *Raster) Clear() {
	draw.Draw(r.Image, r.Image.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

// FillCircle composites c over the image through an anti-aliased disc mask.
func (r *Raster) FillCircle(x, y, rad float64, c color.NRGBA) {
	if rad <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(x-rad)), int(math.Floor(y-rad)),
		int(math.Ceil(x+rad)), int(math.Ceil(y+rad)),
	)
	clip := box.Intersect(r.Image.Bounds())
	if clip.Empty() {
		return
	}

	w, h := box.Dx(), box.Dy()
	r.z.Reset(w, h)
	cx, cy := float32(x-float64(box.Min.X)), float32(y-float64(box.Min.Y))
	circlePath(r.z, cx, cy, float32(rad))

	m := image.NewAlpha(image.Rect(0, 0, w, h))
	r.z.Draw(m, m.Bounds(), image.Opaque, image.Point{})

	mp := clip.Min.Sub(box.Min)
	draw.DrawMask(r.Image, clip, image.NewUniform(c), image.Point{}, m, mp, draw.Over)
}

// circlePath adds a closed circular path to z.
func circlePath(z *vector.Rasterizer, cx, cy, rad float32) {
	k := rad * kappa
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
}
