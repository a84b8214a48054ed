// Package term draws the simulation into a tcell terminal screen and polls it
// for the quit key.
package term

import (
	"errors"
	"fmt"

	"mad-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrClosed is returned when the screen is used after Close.
	ErrClosed = errors.New("terminal screen closed")
	// ErrInterrupted is returned by PollQuit when Ctrl-C is pressed. Raw mode
	// delivers Ctrl-C as a key instead of SIGINT.
	ErrInterrupted = errors.New("interrupted")
)

// Screen owns a tcell screen for the duration of a run. Open switches the
// terminal to the alternate screen in raw mode; Close restores it.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	closed bool
}

// Open initialises the controlling terminal. Callers must defer Close once
// Open succeeds.
func Open(fg tcell.Color) (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreen(sc, fg), nil
}

// NewScreen wraps an already initialised tcell screen.
func NewScreen(sc tcell.Screen, fg tcell.Color) *Screen {
	sc.HideCursor()
	return &Screen{
		screen: sc,
		style:  tcell.StyleDefault.Foreground(fg),
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// Size returns the terminal size in columns and rows.
func (s *Screen) Size() (int, int) { return s.screen.Size() }

// PollQuit drains pending input without blocking and reports whether q was
// pressed. Ctrl-C yields ErrInterrupted; other input is discarded.
func (s *Screen) PollQuit() (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return false, ErrClosed
		case *tcell.EventError:
			return false, fmt.Errorf("terminal input: %w", ev)
		case *tcell.EventKey:
			if IsQuitKey(ev) {
				return true, nil
			}
			if ev.Key() == tcell.KeyCtrlC {
				return false, ErrInterrupted
			}
		}
	}
	return false, nil
}

// IsQuitKey reports whether ev is the quit key, a lowercase q.
func IsQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

// Render draws g inside a border and flushes the frame to the terminal.
func (s *Screen) Render(g *core.Grid) error {
	if s.closed {
		return ErrClosed
	}
	s.screen.Clear()
	size := g.Size()
	drawBox(s.screen, size.W*CellWidth+1, size.H+1, s.style)
	for y, line := range Frame(g) {
		x := 1
		for _, r := range line {
			s.screen.SetContent(x, y+1, r, nil, s.style)
			x++
		}
	}
	s.screen.Show()
	return nil
}

// drawBox outlines the rectangle from (0,0) to (right,bottom) inclusive.
func drawBox(sc tcell.Screen, right, bottom int, style tcell.Style) {
	for x := 1; x < right; x++ {
		sc.SetContent(x, 0, tcell.RuneHLine, nil, style)
		sc.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		sc.SetContent(0, y, tcell.RuneVLine, nil, style)
		sc.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	sc.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	sc.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	sc.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	sc.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
