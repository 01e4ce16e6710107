package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/particlefield/internal/particle"
)

const (
	cardCols   = 24
	cardRows   = 8
	chromeRows = 2
)

type frameMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type layer struct {
	field  *particle.Field
	canvas *Canvas
}

func (l *layer) resize(cols, rows int) {
	l.canvas = NewCanvas(cols, rows)
	w, h := l.canvas.Dots()
	b := particle.Bounds{Width: float64(w), Height: float64(h)}
	if l.field.State() == particle.Uninitialized {
		l.field.Mount(b)
		return
	}
	l.field.Resize(b)
}

// Model shows a hero field filling the terminal with card fields in a row
// underneath it. Each field owns its canvas; nothing is shared.
type Model struct {
	hero     *layer
	cards    []*layer
	interval time.Duration
	theme    Theme
	width    int
	height   int
	paused   bool
	hidden   bool
	ticking  bool
	quitting bool
	frames   uint64
}

// NewModel builds a model driving hero and cards at the given cadence.
func NewModel(hero *particle.Field, cards []*particle.Field, interval time.Duration, theme Theme) Model {
	m := Model{
		hero:     &layer{field: hero, canvas: NewCanvas(0, 0)},
		interval: interval,
		theme:    theme,
		ticking:  true,
	}
	for _, f := range cards {
		m.cards = append(m.cards, &layer{field: f, canvas: NewCanvas(cardCols, cardRows)})
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.dispose()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m.resume()
		case "t":
			m.theme = NextTheme(m.theme)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.BlurMsg:
		m.hidden = true
	case tea.FocusMsg:
		m.hidden = false
		return m.resume()
	case frameMsg:
		if m.quitting || m.paused || m.hidden {
			m.ticking = false
			return m, nil
		}
		m.hero.field.Frame(m.hero.canvas)
		for _, c := range m.cards {
			c.field.Frame(c.canvas)
		}
		m.frames++
		return m, tick(m.interval)
	}
	return m, nil
}

// resume restarts the tick chain if it was dropped while paused or hidden.
func (m Model) resume() (tea.Model, tea.Cmd) {
	if m.ticking || m.paused || m.hidden || m.quitting {
		return m, nil
	}
	m.ticking = true
	return m, tick(m.interval)
}

func (m *Model) layout() {
	heroRows := m.height - chromeRows
	if len(m.cards) > 0 {
		heroRows -= cardRows + 2
	}
	m.hero.resize(m.width, heroRows)
	for _, c := range m.cards {
		if c.field.State() == particle.Uninitialized {
			c.resize(cardCols, cardRows)
		}
	}
}

func (m *Model) dispose() {
	m.quitting = true
	m.hero.field.Dispose()
	for _, c := range m.cards {
		c.field.Dispose()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("PLAYBOOK LABS")
	status := "RUNNING"
	switch {
	case m.hidden:
		status = "HIDDEN"
	case m.paused:
		status = "PAUSED"
	}
	header := fmt.Sprintf("%s  %s  %s", title,
		lipgloss.NewStyle().Foreground(m.theme.Text).Render(status),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("frame %d  theme %s", m.frames, m.theme.Name)))

	var s strings.Builder
	s.WriteString(header + "\n")
	s.WriteString(m.hero.canvas.Render(m.theme))

	if len(m.cards) > 0 {
		panel := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border)
		views := make([]string, len(m.cards))
		for i, c := range m.cards {
			views[i] = panel.Render(c.canvas.Render(m.theme))
		}
		s.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}

	s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("space pause  t theme  q quit"))
	return s.String()
}

// Frames reports how many frames the model has drawn.
func (m Model) Frames() uint64 { return m.frames }

// Run starts the terminal host and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
