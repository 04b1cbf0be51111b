package menu

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/config"
	"github.com/KirkDiggler/paladin/internal/ui"
)

type optionMenu struct {
	options []config.Option
	side    panelRef
}

// NewOptionMenu creates the game option editor. Changes apply to the
// shared Options immediately.
func NewOptionMenu(deps *Deps) (*State, error) {
	m := &optionMenu{options: config.EditableOptions()}
	// cursor starts on Done
	return newState("options", deps, m, "Done", len(m.options))
}

func (m *optionMenu) PopulateItems(*State) []Item {
	items := make([]Item, 0, len(m.options))
	for _, o := range m.options {
		items = append(items, Item{Label: title(o.String()), Tag: o.String(), Available: true})
	}
	return items
}

func (m *optionMenu) OnEnter(_ context.Context, s *State) error {
	m.side = panelRef{panel: s.NewPanel(12, 32, 2, 40)}
	m.side.panel.Show()
	return nil
}

func (m *optionMenu) Render(s *State) {
	s.window.PaintText(headerRow, margin, "Game Options", ui.StyleHeading)
	for i, o := range m.options {
		s.window.PaintText(s.start+i, valueCol, s.deps.Options.Get(o).String(), s.rowStyle(i))
	}
	if s.cursor < len(m.options) {
		o := m.options[s.cursor]
		m.side.describe(title(o.String()), o.Description())
		return
	}
	m.side.describe("Done", "Return to the previous menu")
}

func (m *optionMenu) ResolveSelection(ctx context.Context, s *State, key ui.Key) (bool, error) {
	if s.cursor >= len(m.options) {
		if key == ui.KeyConfirm {
			return false, nil
		}
		return s.DefaultKeyHandling(ctx, key)
	}

	o := m.options[s.cursor]
	switch key {
	case ui.KeyConfirm:
		return true, m.raise(ctx, s, o)
	case ui.KeyDecrement:
		return true, m.lower(ctx, s, o)
	}

	cont, err := s.DefaultKeyHandling(ctx, key)
	if cont && err == nil && (key == ui.KeyUp || key == ui.KeyDown) {
		s.message = "Hit ENTER / DELETE to toggle this Game Option"
	}
	return cont, err
}

// raise flips a bool or increments an int up to the ceiling
func (m *optionMenu) raise(ctx context.Context, s *State, o config.Option) error {
	opts := s.deps.Options
	v := opts.Get(o)
	switch o.Kind() {
	case config.KindBool:
		if err := opts.SetBool(o, !v.Bool); err != nil {
			return err
		}
	case config.KindInt:
		if v.Int >= config.MaxOptionValue {
			s.message = "Option at max!"
			return nil
		}
		if err := opts.SetInt(o, v.Int+1); err != nil {
			return err
		}
	default:
		return nil
	}
	m.changed(ctx, s, o)
	return nil
}

// lower decrements an int down to zero. Bools ignore it.
func (m *optionMenu) lower(ctx context.Context, s *State, o config.Option) error {
	if o.Kind() != config.KindInt {
		return nil
	}
	opts := s.deps.Options
	v := opts.Get(o)
	if v.Int <= 0 {
		s.message = "Already at 0!"
		return nil
	}
	if err := opts.SetInt(o, v.Int-1); err != nil {
		return err
	}
	m.changed(ctx, s, o)
	return nil
}

func (m *optionMenu) changed(ctx context.Context, s *State, o config.Option) {
	v := s.deps.Options.Get(o).String()
	s.message = fmt.Sprintf("Option: %s, new value: %s", title(o.String()), v)
	s.log.Info("option changed", zap.Stringer("option", o), zap.String("value", v))
	s.publish(ctx, EventOptionChanged)
}

func (m *optionMenu) OnExit(*State) {}
