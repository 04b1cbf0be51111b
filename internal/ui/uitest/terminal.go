// Package uitest provides a scripted in-memory ui.Terminal for menu tests.
package uitest

import (
	"context"
	"strings"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Cell is one painted string
type Cell struct {
	Text  string
	Style ui.Style
}

type position struct {
	row, col int
}

// Panel records paint calls by position
type Panel struct {
	Rows, Cols, Y, X int
	Visible          bool
	Border           bool
	Raises           int
	Closed           bool
	cells            map[position]Cell
}

func newPanel(rows, cols, y, x int) *Panel {
	return &Panel{Rows: rows, Cols: cols, Y: y, X: x, cells: make(map[position]Cell)}
}

func (p *Panel) PaintText(row, col int, text string, style ui.Style) {
	p.cells[position{row, col}] = Cell{Text: text, Style: style}
}

func (p *Panel) ClearRegion() {
	p.cells = make(map[position]Cell)
	p.Border = false
}

func (p *Panel) DrawBorder() { p.Border = true }
func (p *Panel) Show()       { p.Visible = true }
func (p *Panel) Hide()       { p.Visible = false }
func (p *Panel) Raise()      { p.Raises++ }
func (p *Panel) Close()      { p.Visible = false; p.Closed = true }

// At returns what was painted at row, col
func (p *Panel) At(row, col int) (Cell, bool) {
	c, ok := p.cells[position{row, col}]
	return c, ok
}

// Find returns the first cell whose text contains substr
func (p *Panel) Find(substr string) (Cell, bool) {
	for _, c := range p.cells {
		if strings.Contains(c.Text, substr) {
			return c, true
		}
	}
	return Cell{}, false
}

// Empty reports whether nothing is painted
func (p *Panel) Empty() bool {
	return len(p.cells) == 0
}

// Terminal replays scripted input and records output. When the key script
// runs out ReadKey fails with a Canceled error.
type Terminal struct {
	Keys     []ui.Key
	Prompts  []string
	Confirms []bool

	Messages  []string
	Labels    []string
	Questions []string
	Flushes   int
	Panels    []*Panel

	window *Panel
	// OnKey runs before each scripted key is returned.
	OnKey func(ui.Key)
}

// New creates a terminal with an 80x23 window
func New(keys ...ui.Key) *Terminal {
	return &Terminal{Keys: keys, window: newPanel(23, 80, 0, 0)}
}

// Window returns the main panel
func (t *Terminal) Window() ui.Panel {
	return t.window
}

// Main returns the main panel with its recording methods
func (t *Terminal) Main() *Panel {
	return t.window
}

func (t *Terminal) NewPanel(rows, cols, y, x int) ui.Panel {
	p := newPanel(rows, cols, y, x)
	t.Panels = append(t.Panels, p)
	return p
}

func (t *Terminal) MessageBar(text string) {
	t.Messages = append(t.Messages, text)
}

// LastMessage returns the most recent message bar text
func (t *Terminal) LastMessage() string {
	if len(t.Messages) == 0 {
		return ""
	}
	return t.Messages[len(t.Messages)-1]
}

func (t *Terminal) Prompt(ctx context.Context, label string, maxLen int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Canceled("input canceled")
	}
	t.Labels = append(t.Labels, label)
	if len(t.Prompts) == 0 {
		return "", nil
	}
	answer := t.Prompts[0]
	t.Prompts = t.Prompts[1:]
	if r := []rune(answer); maxLen > 0 && len(r) > maxLen {
		answer = string(r[:maxLen])
	}
	return answer, nil
}

func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Canceled("input canceled")
	}
	t.Questions = append(t.Questions, question)
	if len(t.Confirms) == 0 {
		return false, nil
	}
	answer := t.Confirms[0]
	t.Confirms = t.Confirms[1:]
	return answer, nil
}

func (t *Terminal) ReadKey(ctx context.Context) (ui.Key, error) {
	if err := ctx.Err(); err != nil {
		return ui.KeyNone, errors.Canceled("input canceled")
	}
	if len(t.Keys) == 0 {
		return ui.KeyNone, errors.Canceled("key script exhausted")
	}
	key := t.Keys[0]
	t.Keys = t.Keys[1:]
	if t.OnKey != nil {
		t.OnKey(key)
	}
	return key, nil
}

func (t *Terminal) Flush() {
	t.Flushes++
}

var (
	_ ui.Terminal = (*Terminal)(nil)
	_ ui.Panel    = (*Panel)(nil)
)
