package menu

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Attribute menu item tags beyond the attribute names
const (
	TagReroll = "reroll"
	TagDone   = "done"
)

const (
	statsCol      = 22
	statsValueCol = 37
)

var attributeActions = map[string]string{
	TagReroll: "Discard every point and\nroll a new sheet",
	TagDone:   "Return to the previous\nmenu once every point\nis spent",
}

type attributeMenu struct {
	attrs []entities.Attribute
	side  panelRef
}

// NewAttributeMenu creates the roll and assignment screen. Running it
// without a chosen class fails with FailedPrecondition.
func NewAttributeMenu(deps *Deps) (*State, error) {
	m := &attributeMenu{attrs: entities.AttributeList()}
	// cursor starts on Done
	return newState("attributes", deps, m, "Done", len(m.attrs)+1)
}

func (m *attributeMenu) PopulateItems(*State) []Item {
	items := make([]Item, 0, len(m.attrs)+1)
	for _, a := range m.attrs {
		items = append(items, Item{Label: title(a.String()), Tag: a.String(), Available: true})
	}
	return append(items, Item{Label: "Re-roll", Tag: TagReroll, Available: true})
}

func (m *attributeMenu) OnEnter(ctx context.Context, s *State) error {
	p := s.deps.Player
	if p.Class == nil {
		return errors.FailedPrecondition("Choose a class before setting attributes")
	}

	result, err := s.deps.Engine.RollBaseline(p, false)
	if err != nil {
		return err
	}
	if !result.Skipped {
		s.log.Info("baseline rolled",
			zap.Int("attempts", result.Attempts),
			zap.Int("remaining", result.Remaining))
		s.publish(ctx, EventAttributesRolled)
	}

	m.side = panelRef{panel: s.NewPanel(12, 24, 2, 48)}
	m.side.panel.Show()
	return nil
}

func (m *attributeMenu) Render(s *State) {
	p := s.deps.Player
	s.window.PaintText(headerRow, margin, fmt.Sprintf("Attributes (%d)", p.UnallocatedPoints()), ui.StyleHeading)
	for i, a := range m.attrs {
		s.window.PaintText(s.start+i, valueCol, fmt.Sprintf("%2d", p.Attribute(a)), s.rowStyle(i))
	}

	row := s.start + len(s.items) + 1
	s.window.PaintText(row, margin, "Resists", ui.StyleHeading)
	for i, r := range entities.ResistList() {
		s.window.PaintText(row+1+i, margin, title(r.String()), ui.StyleNormal)
		s.window.PaintText(row+1+i, valueCol, fmt.Sprintf("%2d", p.Resist(r)), ui.StyleNormal)
	}

	s.window.PaintText(headerRow, statsCol, "Player Stats", ui.StyleHeading)
	for i, st := range p.Stats() {
		s.window.PaintText(s.start+i, statsCol, title(st.Name), ui.StyleStat)
		s.window.PaintText(s.start+i, statsValueCol, fmt.Sprintf("%3d", st.Value), ui.StyleStat)
	}

	m.side.describe(s.Current().Label, m.description(s))
}

func (m *attributeMenu) description(s *State) string {
	if s.cursor < len(m.attrs) {
		return m.attrs[s.cursor].Description()
	}
	return attributeActions[s.Current().Tag]
}

func (m *attributeMenu) ResolveSelection(ctx context.Context, s *State, key ui.Key) (bool, error) {
	if key != ui.KeyConfirm {
		cont, err := s.DefaultKeyHandling(ctx, key)
		if cont && err == nil && (key == ui.KeyUp || key == ui.KeyDown) {
			s.message = m.hint(s)
		}
		return cont, err
	}

	engine, p := s.deps.Engine, s.deps.Player
	switch {
	case s.cursor < len(m.attrs):
		a := m.attrs[s.cursor]
		v, err := engine.Assign(p, a)
		if err != nil {
			return true, s.surface(err)
		}
		s.message = fmt.Sprintf("Attribute: %s, new value: %d", title(a.String()), v)
		s.publish(ctx, EventAttributeAssigned)
		if p.InitializationComplete() {
			s.log.Info("attributes complete", zap.String("player", p.Name))
			s.publish(ctx, EventCreationComplete)
			return false, nil
		}
		return true, nil

	case s.Current().Tag == TagReroll:
		if _, err := engine.Reroll(p); err != nil {
			return false, err
		}
		s.message = "Attributes re-rolled"
		s.publish(ctx, EventAttributesRolled)
		return true, nil

	default:
		if err := engine.Finish(p); err != nil {
			return true, s.surface(err)
		}
		return false, nil
	}
}

func (m *attributeMenu) hint(s *State) string {
	switch {
	case s.cursor < len(m.attrs):
		return "Hit ENTER to increase this attribute"
	case s.Current().Tag == TagReroll:
		return "Hit ENTER to re-roll attributes"
	default:
		return "Hit ENTER to return to the previous menu"
	}
}

func (m *attributeMenu) OnExit(s *State) {
	s.log.Debug("attribute menu closed", zap.Int("remaining", s.deps.Player.UnallocatedPoints()))
}
