package viz

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/particlefield/internal/config"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
}

// Available themes
var (
	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#60a5fa"),
		Border:     lipgloss.Color("#0077be"),
	}

	// ThemeSlate mirrors the light slate gradient behind the pricing cards.
	ThemeSlate = Theme{
		Name:       "slate",
		Background: lipgloss.Color("#f1f5f9"),
		Text:       lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#9333ea"),
		Border:     lipgloss.Color("#cbd5e1"),
	}

	ThemeMidnight = Theme{
		Name:       "midnight",
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ec4899"),
		Border:     lipgloss.Color("#444466"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#cccccc"),
		Border:     lipgloss.Color("#888888"),
	}

	Themes = []Theme{
		ThemeOcean,
		ThemeSlate,
		ThemeMidnight,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BackgroundRGB returns the theme background as an opaque colour.
func (t Theme) BackgroundRGB() color.NRGBA {
	c, err := config.ParseRGBA(string(t.Background))
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	c.A = 0xff
	return c
}

func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
