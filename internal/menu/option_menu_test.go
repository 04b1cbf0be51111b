package menu_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/ui"
	"github.com/KirkDiggler/paladin/internal/ui/uitest"
)

type OptionMenuTestSuite struct {
	menuSuite
}

func TestOptionMenuSuite(t *testing.T) {
	suite.Run(t, new(OptionMenuTestSuite))
}

func (s *OptionMenuTestSuite) run(keys ...ui.Key) *menu.State {
	s.script(keys...)
	m, err := menu.NewOptionMenu(s.deps)
	s.Require().NoError(err)
	s.Require().NoError(m.Run(s.ctx))
	return m
}

func (s *OptionMenuTestSuite) TestItemsSkipDenylist() {
	m, err := menu.NewOptionMenu(s.deps)
	s.Require().NoError(err)

	var labels []string
	for _, it := range m.Items() {
		labels = append(labels, it.Label)
	}
	s.Equal([]string{"Debug", "Difficulty", "Done"}, labels)
	s.Equal(2, m.Cursor())
}

func (s *OptionMenuTestSuite) TestBoolFlipsOncePerConfirm() {
	m := s.run(ui.KeyUp, ui.KeyUp, ui.KeyConfirm, ui.KeyQuit)
	s.True(s.options.Debug)
	s.Equal("Option: Debug, new value: True", m.Message())

	s.SetupTest()
	s.options.Debug = true
	s.run(ui.KeyUp, ui.KeyUp, ui.KeyConfirm, ui.KeyQuit)
	s.False(s.options.Debug)
}

func (s *OptionMenuTestSuite) TestIntIncrements() {
	s.options.Difficulty = 3
	s.run(ui.KeyUp, ui.KeyConfirm, ui.KeyQuit)
	s.Equal(4, s.options.Difficulty)
	s.Equal([]string{menu.EventOptionChanged}, s.published)
}

func (s *OptionMenuTestSuite) TestIntSaturatesAtCeiling() {
	s.options.Difficulty = 5
	m := s.run(ui.KeyUp, ui.KeyConfirm, ui.KeyQuit)
	s.Equal(5, s.options.Difficulty)
	s.Equal("Option at max!", m.Message())
	s.Empty(s.published)
}

func (s *OptionMenuTestSuite) TestDecrement() {
	s.options.Difficulty = 3
	s.run(ui.KeyUp, ui.KeyDecrement, ui.KeyQuit)
	s.Equal(2, s.options.Difficulty)
}

func (s *OptionMenuTestSuite) TestDecrementSaturatesAtZero() {
	s.options.Difficulty = 0
	m := s.run(ui.KeyUp, ui.KeyDecrement, ui.KeyQuit)
	s.Equal(0, s.options.Difficulty)
	s.Equal("Already at 0!", m.Message())
}

func (s *OptionMenuTestSuite) TestDecrementIgnoredOnBool() {
	s.options.Debug = true
	s.run(ui.KeyUp, ui.KeyUp, ui.KeyDecrement, ui.KeyQuit)
	s.True(s.options.Debug)
}

func (s *OptionMenuTestSuite) TestDoneExits() {
	s.run(ui.KeyConfirm)
	s.Empty(s.term.Keys)
}

func (s *OptionMenuTestSuite) TestRenderShowsValues() {
	var debug, difficulty string
	s.term.OnKey = func(ui.Key) {
		if c, ok := s.term.Main().At(5, 17); ok {
			debug = c.Text
		}
		if c, ok := s.term.Main().At(6, 17); ok {
			difficulty = c.Text
		}
	}
	s.run(ui.KeyQuit)

	s.Equal("False", debug)
	s.Equal("1", difficulty)
}

func (s *OptionMenuTestSuite) TestHighlightedRowValueIsReversed() {
	var debug, difficulty uitest.Cell
	s.term.OnKey = func(ui.Key) {
		debug, _ = s.term.Main().At(5, 17)
		difficulty, _ = s.term.Main().At(6, 17)
	}
	s.run(ui.KeyUp, ui.KeyQuit)

	s.Equal(ui.StyleNormal, debug.Style)
	s.Equal(ui.StyleReverse, difficulty.Style)
}

func (s *OptionMenuTestSuite) TestHint() {
	s.run(ui.KeyUp, ui.KeyQuit)
	s.Equal("Hit ENTER / DELETE to toggle this Game Option", s.term.LastMessage())
}
