package menu_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/ui"
)

type ClassMenuTestSuite struct {
	menuSuite
}

func TestClassMenuSuite(t *testing.T) {
	suite.Run(t, new(ClassMenuTestSuite))
}

func (s *ClassMenuTestSuite) newMenu() *menu.State {
	m, err := menu.NewClassMenu(s.deps)
	s.Require().NoError(err)
	return m
}

func (s *ClassMenuTestSuite) TestRequiresCatalog() {
	_, err := menu.NewClassMenu(nil)
	s.True(errors.IsInvalidArgument(err))

	s.deps.Catalog = nil
	_, err = menu.NewClassMenu(s.deps)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Catalog")
}

func (s *ClassMenuTestSuite) TestItemsAndStartingCursor() {
	m := s.newMenu()

	var labels []string
	for _, it := range m.Items() {
		labels = append(labels, it.Label)
	}
	s.Equal([]string{"Paladin", "Ranger", "Rogue", "Mage", "Done"}, labels)
	s.Equal(3, m.Cursor())
}

func (s *ClassMenuTestSuite) TestConfirmChoosesAndExits() {
	s.script(ui.KeyUp, ui.KeyConfirm, ui.KeyQuit)
	m := s.newMenu()

	s.Require().NoError(m.Run(s.ctx))
	s.Require().NotNil(s.player.Class)
	s.Equal("Rogue", s.player.Class.Name)
	s.Equal("Class selected: Rogue", m.Message())
	s.Equal([]ui.Key{ui.KeyQuit}, s.term.Keys, "single-shot choice")
	s.Equal([]string{menu.EventClassChosen}, s.published)
}

func (s *ClassMenuTestSuite) TestDoneKeepsClass() {
	s.script(ui.KeyDown, ui.KeyConfirm)
	s.Require().NoError(s.newMenu().Run(s.ctx))
	s.Nil(s.player.Class)
}

func (s *ClassMenuTestSuite) TestSidePanelFollowsCursor() {
	var headings []string
	s.term.OnKey = func(ui.Key) {
		if c, ok := s.term.Panels[0].At(1, 2); ok {
			headings = append(headings, c.Text)
		}
	}
	s.script(ui.KeyUp, ui.KeyDown, ui.KeyDown, ui.KeyQuit)
	s.Require().NoError(s.newMenu().Run(s.ctx))

	s.Equal([]string{"Mage", "Rogue", "Mage", "Done"}, headings)
	s.Contains(s.term.Messages, "Hit ENTER to select this class")
}

func (s *ClassMenuTestSuite) TestSwitchingClassDiscardsSheet() {
	s.player.Class = s.class("Paladin")
	_, err := s.engine.RollBaseline(s.player, false)
	s.Require().NoError(err)
	s.Require().Equal(2, s.player.Resist(entities.Magic))

	s.script(ui.KeyConfirm)
	s.Require().NoError(s.newMenu().Run(s.ctx))

	s.Equal("Mage", s.player.Class.Name)
	s.Equal(66, s.player.UnallocatedPoints())
	s.Equal(0, s.player.Resist(entities.Magic))
	s.False(s.player.InitializationComplete())
}

func (s *ClassMenuTestSuite) TestReselectingSameClassKeepsSheet() {
	s.player.Class = s.class("Mage")
	_, err := s.engine.RollBaseline(s.player, false)
	s.Require().NoError(err)

	s.script(ui.KeyConfirm)
	s.Require().NoError(s.newMenu().Run(s.ctx))
	s.Equal(5, s.player.UnallocatedPoints())
}
