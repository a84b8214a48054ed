package term

import (
	"errors"
	"strings"
	"testing"

	"mad-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(cols, rows)
	s := NewScreen(sim, tcell.ColorGreen)
	t.Cleanup(s.Close)
	return s, sim
}

func runeAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestRenderDrawsBorderAndCells(t *testing.T) {
	s, sim := newSimScreen(t, 12, 6)
	w, h := GridSize(s.Size())
	if w != 5 || h != 4 {
		t.Fatalf("GridSize = %dx%d, want 5x4", w, h)
	}
	g, err := core.NewGrid(w, h, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 3})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := s.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}

	corners := map[[2]int]rune{
		{0, 0}:  tcell.RuneULCorner,
		{11, 0}: tcell.RuneURCorner,
		{0, 5}:  tcell.RuneLLCorner,
		{11, 5}: tcell.RuneLRCorner,
		{5, 0}:  tcell.RuneHLine,
		{0, 2}:  tcell.RuneVLine,
	}
	for pos, want := range corners {
		if got := runeAt(t, sim, pos[0], pos[1]); got != want {
			t.Fatalf("border at %v = %q, want %q", pos, got, want)
		}
	}

	cells := map[[2]int]rune{
		{1, 1}:  '█',
		{2, 1}:  '█',
		{3, 1}:  ' ',
		{9, 4}:  '█',
		{10, 4}: '█',
		{5, 3}:  ' ',
	}
	for pos, want := range cells {
		if got := runeAt(t, sim, pos[0], pos[1]); got != want {
			t.Fatalf("cell glyph at %v = %q, want %q", pos, got, want)
		}
	}

	contents, cols, _ := sim.GetContents()
	fg, _, _ := contents[1*cols+1].Style.Decompose()
	if fg != tcell.ColorGreen {
		t.Fatalf("foreground = %v, want green", fg)
	}
}

func TestPollQuitIgnoresOtherKeys(t *testing.T) {
	s, sim := newSimScreen(t, 10, 10)

	quit, err := s.PollQuit()
	if err != nil || quit {
		t.Fatalf("PollQuit with no input = %v, %v", quit, err)
	}

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	quit, err = s.PollQuit()
	if err != nil || quit {
		t.Fatalf("PollQuit after non-quit keys = %v, %v", quit, err)
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	quit, err = s.PollQuit()
	if err != nil || !quit {
		t.Fatalf("PollQuit after q = %v, %v", quit, err)
	}
}

func TestPollQuitOnlyAcceptsLowercaseQ(t *testing.T) {
	s, sim := newSimScreen(t, 10, 10)
	sim.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	quit, err := s.PollQuit()
	if err != nil || quit {
		t.Fatalf("PollQuit after Q and Escape = %v, %v", quit, err)
	}
}

func TestPollQuitCtrlCInterrupts(t *testing.T) {
	s, sim := newSimScreen(t, 10, 10)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	quit, err := s.PollQuit()
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("PollQuit after Ctrl-C err = %v, want ErrInterrupted", err)
	}
	if quit {
		t.Fatal("Ctrl-C must not be reported as a normal quit")
	}
}

func TestPollQuitSurfacesInputErrors(t *testing.T) {
	s, sim := newSimScreen(t, 10, 10)
	boom := errors.New("tty gone")
	if err := sim.PostEvent(tcell.NewEventError(boom)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if _, err := s.PollQuit(); err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("PollQuit err = %v, want the input error", err)
	}
}

func TestIsQuitKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), false},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tc := range cases {
		if got := IsQuitKey(tc.ev); got != tc.want {
			t.Fatalf("IsQuitKey(%s) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestClosedScreenFails(t *testing.T) {
	s, _ := newSimScreen(t, 10, 10)
	s.Close()
	s.Close()
	g, _ := core.NewGrid(2, 2)
	if err := s.Render(g); !errors.Is(err, ErrClosed) {
		t.Fatalf("Render after Close err = %v", err)
	}
	if _, err := s.PollQuit(); !errors.Is(err, ErrClosed) {
		t.Fatalf("PollQuit after Close err = %v", err)
	}
}
