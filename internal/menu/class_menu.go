package menu

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

type classMenu struct {
	classes []*entities.PlayerClass
	side    panelRef
}

// NewClassMenu creates the class picker. Choosing a class ends the menu.
func NewClassMenu(deps *Deps) (*State, error) {
	if err := deps.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid deps for class menu")
	}
	m := &classMenu{classes: deps.Catalog.Classes()}
	// cursor starts on the last class
	return newState("class", deps, m, "Done", len(m.classes)-1)
}

func (m *classMenu) PopulateItems(*State) []Item {
	items := make([]Item, 0, len(m.classes))
	for _, c := range m.classes {
		items = append(items, Item{Label: c.Name, Tag: c.Name, Available: true})
	}
	return items
}

func (m *classMenu) OnEnter(_ context.Context, s *State) error {
	m.side = panelRef{panel: s.NewPanel(12, 36, 2, 40)}
	m.side.panel.Show()
	return nil
}

func (m *classMenu) Render(s *State) {
	s.window.PaintText(headerRow, margin, "Choose a class", ui.StyleHeading)
	if s.cursor < len(m.classes) {
		c := m.classes[s.cursor]
		m.side.describe(title(c.Name), c.Description)
		return
	}
	m.side.describe("Done", "Keep the current class")
}

func (m *classMenu) ResolveSelection(ctx context.Context, s *State, key ui.Key) (bool, error) {
	if key != ui.KeyConfirm {
		cont, err := s.DefaultKeyHandling(ctx, key)
		if cont && err == nil {
			s.message = "Hit ENTER to select this class"
		}
		return cont, err
	}
	if s.cursor >= len(m.classes) {
		return false, nil
	}

	chosen := m.classes[s.cursor]
	p := s.deps.Player
	if p.Class != nil && p.Class != chosen {
		// a sheet rolled for another class is discarded
		p.ResetAttributes()
		for _, r := range entities.ResistList() {
			p.SetResist(r, 0)
		}
	}
	p.Class = chosen

	s.message = "Class selected: " + chosen.Name
	s.log.Info("class chosen", zap.String("player", p.Name), zap.String("class", chosen.Name))
	s.publish(ctx, EventClassChosen)
	return false, nil
}

func (m *classMenu) OnExit(*State) {}
