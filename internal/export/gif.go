package export

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

var ErrNoFrames = errors.New("export: no frames recorded")

// Recorder captures raster frames into an animated GIF. The palette starts
// with the background and every particle colour composited over it, then
// fills up with web-safe colours for overlaps.
type Recorder struct {
	*Raster
	delay   int
	palette color.Palette
	frames  []*image.Paletted
}

// NewRecorder returns a recorder whose frames last delay hundredths of a
// second.
func NewRecorder(width, height int, bg color.NRGBA, colours []color.NRGBA, delay int) *Recorder {
	bgOpaque := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}
	pal := color.Palette{bgOpaque}
	for _, c := range colours {
		pal = append(pal, Over(c, bgOpaque))
	}
	for _, c := range palette.WebSafe {
		if len(pal) >= 256 {
			break
		}
		pal = append(pal, c)
	}
	return &Recorder{
		Raster:  NewRaster(width, height, bgOpaque),
		delay:   max(delay, 1),
		palette: pal,
	}
}

// Capture snapshots the current raster as a frame.
func (r *Recorder) Capture() {
	b := r.Image.Bounds()
	frame := image.NewPaletted(b, r.palette)
	draw.Draw(frame, b, r.Image, b.Min, draw.Src)
	r.frames = append(r.frames, frame)
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Encode writes every captured frame as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Over composites c over an opaque background.
func Over(c, bg color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(fg, bg uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 0xff}
}
