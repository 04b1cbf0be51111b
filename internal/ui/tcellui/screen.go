// Package tcellui draws menus on a real terminal with tcell.
package tcellui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Screen implements ui.Terminal. Panels record what was painted on them and
// Flush replays every visible panel bottom to top.
type Screen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	window  *panel
	panels  []*panel
	message string
}

// Open initializes the process terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create terminal screen")
	}
	return New(s)
}

// New takes ownership of an uninitialized tcell screen
func New(screen tcell.Screen) (*Screen, error) {
	if screen == nil {
		return nil, errors.InvalidArgument("screen is required")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal screen")
	}
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, 32),
		quit:   make(chan struct{}),
	}
	// last row belongs to the message bar
	s.window = s.newPanel(h-1, w, 0, 0)
	s.window.visible = true

	go s.poll()
	return s, nil
}

func (s *Screen) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close restores the terminal
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

// Window returns the main menu panel
func (s *Screen) Window() ui.Panel {
	return s.window
}

// NewPanel creates a hidden panel stacked above the existing ones
func (s *Screen) NewPanel(rows, cols, y, x int) ui.Panel {
	return s.newPanel(rows, cols, y, x)
}

func (s *Screen) newPanel(rows, cols, y, x int) *panel {
	p := &panel{owner: s, rows: rows, cols: cols, y: y, x: x}
	s.panels = append(s.panels, p)
	return p
}

// MessageBar replaces the bottom line
func (s *Screen) MessageBar(text string) {
	s.message = text
}

// Flush redraws every visible panel and the message bar
func (s *Screen) Flush() {
	s.screen.Clear()
	for _, p := range s.panels {
		if p.visible {
			p.draw(s.screen)
		}
	}
	_, h := s.screen.Size()
	drawText(s.screen, 1, h-1, s.message, styleFor(ui.StyleNormal))
	s.screen.Show()
}

// ReadKey blocks until a key arrives or ctx is done. Resizes are handled
// here by resyncing the screen.
func (s *Screen) ReadKey(ctx context.Context) (ui.Key, error) {
	for {
		ev, err := s.next(ctx)
		if err != nil {
			return ui.KeyNone, err
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			return translate(e), nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Prompt edits a line of text on the message bar. Escape returns an empty
// answer.
func (s *Screen) Prompt(ctx context.Context, label string, maxLen int) (string, error) {
	var buf []rune
	for {
		s.MessageBar(label + string(buf))
		s.Flush()

		ev, err := s.nextKey(ctx)
		if err != nil {
			return "", err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			return strings.TrimSpace(string(buf)), nil
		case tcell.KeyEscape:
			return "", nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			if maxLen <= 0 || len(buf) < maxLen {
				buf = append(buf, ev.Rune())
			}
		}
	}
}

// Confirm asks a question on the message bar and reads one key
func (s *Screen) Confirm(ctx context.Context, question string) (bool, error) {
	s.MessageBar(question)
	s.Flush()

	ev, err := s.nextKey(ctx)
	if err != nil {
		return false, err
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'), nil
}

func (s *Screen) next(ctx context.Context) (tcell.Event, error) {
	select {
	case <-ctx.Done():
		return nil, errors.Canceled("input canceled")
	case ev := <-s.events:
		return ev, nil
	}
}

func (s *Screen) nextKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		ev, err := s.next(ctx)
		if err != nil {
			return nil, err
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			return key, nil
		}
	}
}

func translate(ev *tcell.EventKey) ui.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return ui.KeyUp
	case tcell.KeyDown:
		return ui.KeyDown
	case tcell.KeyEnter:
		return ui.KeyConfirm
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return ui.KeyDecrement
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'n', 'N':
			return ui.KeyRename
		case 's', 'S':
			return ui.KeySave
		case 'q', 'Q':
			return ui.KeyQuit
		}
	}
	return ui.KeyOther
}

var _ ui.Terminal = (*Screen)(nil)
