package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

// SVGSurface records circles and writes them as an SVG document. It is a
// particle.Surface.
type SVGSurface struct {
	Width, Height float64
	Background    color.NRGBA
	circles       []circle
}

func NewSVGSurface(width, height float64, bg color.NRGBA) *SVGSurface {
	return &SVGSurface{Width: width, Height: height, Background: bg}
}

func (s *SVGSurface) Clear() { s.circles = s.circles[:0] }

func (s *SVGSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	s.circles = append(s.circles, circle{x: x, y: y, r: r, c: c})
}

// Len reports how many circles are recorded.
func (s *SVGSurface) Len() int { return len(s.circles) }

func (s *SVGSurface) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height))
	if s.Background.A > 0 {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="rgb(%d,%d,%d)" fill-opacity="%.3f"/>
`, s.Background.R, s.Background.G, s.Background.B, float64(s.Background.A)/255))
	}

	for _, c := range s.circles {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="rgb(%d,%d,%d)" fill-opacity="%.3f"/>
`, c.x, c.y, c.r, c.c.R, c.c.G, c.c.B, float64(c.c.A)/255))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
