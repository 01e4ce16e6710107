package viz

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/particlefield/internal/particle"
)

func testModel(cards int) (Model, *particle.Field, []*particle.Field) {
	cfg := particle.Config{
		Count: 6, BounceCount: 2, MaxSpeed: 1, MinSize: 1, MaxSize: 3,
		Palette: []color.NRGBA{pink},
	}
	hero := particle.NewField(cfg, rand.New(rand.NewPCG(1, 2)))
	fields := make([]*particle.Field, cards)
	for i := range fields {
		fields[i] = particle.NewField(cfg, rand.New(rand.NewPCG(uint64(i), 3)))
	}
	return NewModel(hero, fields, time.Second/30, ThemeOcean), hero, fields
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelResizeMountsFields(t *testing.T) {
	m, hero, cards := testModel(2)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	if hero.State() != particle.Running {
		t.Fatalf("hero not mounted: %s", hero.State())
	}
	heroRows := 30 - chromeRows - cardRows - 2
	if got := hero.Bounds(); got != (particle.Bounds{Width: 160, Height: float64(heroRows * 4)}) {
		t.Errorf("unexpected hero bounds %+v", got)
	}
	for i, c := range cards {
		if c.State() != particle.Running {
			t.Errorf("card %d not mounted", i)
		}
		if got := c.Bounds(); got != (particle.Bounds{Width: cardCols * 2, Height: cardRows * 4}) {
			t.Errorf("card %d bounds %+v", i, got)
		}
	}

	before := hero.Particles()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if len(hero.Particles()) != len(before) {
		t.Error("resize changed hero particle count")
	}
	if hero.Bounds().Width != 80 {
		t.Errorf("expected hero width 80 after resize, got %f", hero.Bounds().Width)
	}
}

func TestModelFrames(t *testing.T) {
	m, hero, cards := testModel(1)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})

	m, cmd := update(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next tick to be scheduled")
	}
	if m.Frames() != 1 || hero.Ticks() != 1 || cards[0].Ticks() != 1 {
		t.Errorf("expected one frame on every field, got model %d hero %d card %d", m.Frames(), hero.Ticks(), cards[0].Ticks())
	}
	if !strings.Contains(m.View(), "RUNNING") {
		t.Error("view should report running")
	}
}

func TestModelBlurStopsTicking(t *testing.T) {
	m, hero, _ := testModel(0)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})

	m, _ = update(t, m, tea.BlurMsg{})
	if !strings.Contains(m.View(), "HIDDEN") {
		t.Error("view should report hidden")
	}

	m, cmd := update(t, m, frameMsg(time.Now()))
	if cmd != nil {
		t.Error("hidden model must drop the tick chain")
	}
	if hero.Ticks() != 0 {
		t.Error("hidden model must not tick")
	}

	m, cmd = update(t, m, tea.FocusMsg{})
	if cmd == nil {
		t.Fatal("focus should restart the tick chain")
	}
	_, cmd = update(t, m, tea.FocusMsg{})
	if cmd != nil {
		t.Error("second focus must not start a second tick chain")
	}
}

func TestModelPause(t *testing.T) {
	m, hero, _ := testModel(0)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should report paused")
	}
	m, _ = update(t, m, frameMsg(time.Now()))
	if hero.Ticks() != 0 {
		t.Error("paused model must not tick")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Error("unpause should restart the tick chain")
	}
}

func TestModelQuitDisposes(t *testing.T) {
	m, hero, cards := testModel(2)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if hero.State() != particle.Disposed {
		t.Error("hero not disposed on quit")
	}
	for i, c := range cards {
		if c.State() != particle.Disposed {
			t.Errorf("card %d not disposed on quit", i)
		}
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if _, cmd := update(t, m, frameMsg(time.Now())); cmd != nil {
		t.Error("no ticks after quit")
	}
}

func TestModelCycleTheme(t *testing.T) {
	m, _, _ := testModel(0)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.theme.Name != "slate" {
		t.Errorf("expected slate after ocean, got %s", m.theme.Name)
	}
}
