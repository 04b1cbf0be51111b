package menu_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/ui"
)

type MainMenuTestSuite struct {
	menuSuite
}

func TestMainMenuSuite(t *testing.T) {
	suite.Run(t, new(MainMenuTestSuite))
}

func (s *MainMenuTestSuite) TestHintsFollowCursor() {
	s.script(keys(repeat(ui.KeyDown, 4), []ui.Key{ui.KeyQuit})...)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Equal([]string{
		"Hit ENTER to choose this option",
		"Hit ENTER to choose this option",
		"Press ENTER to start the game (not implemented)",
		"Press ENTER to edit game options",
		"Hit ENTER to exit this menu",
	}, s.term.Messages)
}

func (s *MainMenuTestSuite) TestChildMessageStaysUntilNextKey() {
	// class menu opens on Mage; pick it, then move once
	s.script(ui.KeyConfirm, ui.KeyConfirm, ui.KeyDown, ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Require().GreaterOrEqual(len(s.term.Messages), 2)
	s.Equal("Class selected: Mage", s.term.Messages[len(s.term.Messages)-2])
	s.Equal("Hit ENTER to choose this option", s.term.LastMessage())
}

func (s *MainMenuTestSuite) TestSetAttributesInertWithoutClass() {
	s.script(ui.KeyDown, ui.KeyConfirm, ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Empty(s.term.Panels)
	s.Equal(66, s.player.UnallocatedPoints())
}

func (s *MainMenuTestSuite) TestSetAttributesAvailableOnceClassChosen() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)
	s.False(m.Items()[1].Available)

	s.player.Class = s.class("Rogue")
	m.Render()
	s.True(m.Items()[1].Available)

	cell, ok := s.term.Main().At(6, 2)
	s.Require().True(ok)
	s.Equal(ui.StyleNormal, cell.Style)
}

func (s *MainMenuTestSuite) TestStartGamePlaceholder() {
	s.script(ui.KeyDown, ui.KeyDown, ui.KeyConfirm, ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Equal("Starting the game is not implemented yet", s.term.LastMessage())
}

func (s *MainMenuTestSuite) TestOptionsSubmenu() {
	s.script(
		ui.KeyDown, ui.KeyDown, ui.KeyDown, ui.KeyConfirm, // open options
		ui.KeyUp, ui.KeyConfirm, ui.KeyQuit, // raise difficulty, leave
		ui.KeyQuit,
	)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Equal(2, s.options.Difficulty)
	s.Equal("Option: Difficulty, new value: 2", m.Message())
}

func (s *MainMenuTestSuite) TestCharacterCreationFlow() {
	s.script(keys(
		// class menu opens on Mage; walk up to Paladin
		[]ui.Key{ui.KeyConfirm}, repeat(ui.KeyUp, 3), []ui.Key{ui.KeyConfirm},
		// attribute menu opens on Done; walk up to Strength and spend everything
		[]ui.Key{ui.KeyDown, ui.KeyConfirm}, repeat(ui.KeyUp, 8), repeat(ui.KeyConfirm, 5),
		[]ui.Key{ui.KeyQuit},
	)...)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Empty(s.term.Keys)

	s.Require().NotNil(s.player.Class)
	s.Equal("Paladin", s.player.Class.Name)
	s.Equal(0, s.player.UnallocatedPoints())
	s.True(s.player.InitializationComplete())
	s.Equal(16, s.player.Attribute(entities.Strength))
	s.Equal(11, s.player.Attribute(entities.Health))
	s.Equal(9, s.player.Attribute(entities.Wisdom))
	s.Equal(2, s.player.Resist(entities.Magic))
	s.Equal(1, s.player.Resist(entities.Fire))

	s.Contains(s.published, menu.EventClassChosen)
	s.Contains(s.published, menu.EventAttributesRolled)
	s.Contains(s.published, menu.EventCreationComplete)
	for _, p := range s.term.Panels {
		s.False(p.Visible)
	}
}

func (s *MainMenuTestSuite) TestQuitFromChildReturnsToParent() {
	s.script(ui.KeyConfirm, ui.KeyQuit, ui.KeyDown, ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Equal(1, m.Cursor())
	s.Nil(s.player.Class)
}
