package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/mazznoer/csscolorparser"
)

var ErrColor = errors.New("config: invalid colour")

// ParseRGBA accepts any CSS colour: "rgba(r, g, b, a)", "rgb(r, g, b)",
// hex forms and named colours. Alpha in rgba() is a fraction in [0, 1].
func ParseRGBA(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrColor, s, err)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// FormatRGBA renders c in the rgba() form ParseRGBA reads.
func FormatRGBA(c color.NRGBA) string {
	a := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64)
	if len(a) > 5 {
		a = strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}
