package menu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/ui"
	uimock "github.com/KirkDiggler/paladin/internal/ui/mock"
)

type StateTestSuite struct {
	menuSuite
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (s *StateTestSuite) TestDepsValidation() {
	_, err := menu.NewMainMenu(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = menu.NewMainMenu(&menu.Deps{})
	s.True(errors.IsInvalidArgument(err))

	s.deps.Store = nil
	_, err = menu.NewOptionMenu(s.deps)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StateTestSuite) TestBackItemIsLastAndPoppable() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	items := m.Items()
	s.Require().Len(items, 5)
	for i, it := range items {
		s.Equal(i, it.Index, it.Label)
		s.Equal(i == len(items)-1, it.Poppable, it.Label)
	}
	s.Equal("Back", items[4].Label)
	s.True(items[4].Available)
}

func (s *StateTestSuite) TestNavigateClamps() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	m.Navigate(-3)
	s.Equal(0, m.Cursor())
	s.Equal(menu.TagChooseClass, m.Hover())

	m.Navigate(100)
	s.Equal(4, m.Cursor())
	s.True(m.OnBack())

	m.Navigate(1)
	s.Equal(4, m.Cursor(), "no wraparound")
}

func (s *StateTestSuite) TestNavigateStaysInBounds() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		m.Navigate(rng.Intn(3) - 1)
		s.GreaterOrEqual(m.Cursor(), 0)
		s.Less(m.Cursor(), len(m.Items()))
	}
}

func (s *StateTestSuite) TestRunsOnce() {
	s.script(ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)
	s.Equal(menu.PhaseCreated, m.Phase())

	s.Require().NoError(m.Run(s.ctx))
	s.Equal(menu.PhaseDone, m.Phase())
	s.Empty(m.Hover())

	err = m.Run(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *StateTestSuite) TestBackLeavesPlayerUntouched() {
	s.script(keys(repeat(ui.KeyDown, 4), []ui.Key{ui.KeyConfirm})...)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Empty(s.term.Keys)
	s.Equal("Kestrel", s.player.Name)
	s.Nil(s.player.Class)
	s.Equal(66, s.player.UnallocatedPoints())
	s.False(s.player.InitializationComplete())
	s.Empty(s.published)
}

func (s *StateTestSuite) TestUnknownKeyRedraws() {
	s.script(ui.KeyOther, ui.KeyNone, ui.KeyQuit)
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Equal(3, s.term.Flushes)
	s.Equal(0, m.Cursor())
	s.Equal(ui.KeyQuit, m.LastKey())
}

func (s *StateTestSuite) TestReadErrorEndsActivation() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)

	err = m.Run(s.ctx)
	s.True(errors.IsCanceled(err))
	s.Equal(menu.PhaseDone, m.Phase())
	s.True(s.term.Main().Empty())
}

func (s *StateTestSuite) TestRenderStyles() {
	m, err := menu.NewMainMenu(s.deps)
	s.Require().NoError(err)
	m.Render()

	win := s.term.Main()
	want := []ui.Style{ui.StyleReverse, ui.StyleDim, ui.StyleNormal, ui.StyleNormal, ui.StyleNormal}
	for i, style := range want {
		cell, ok := win.At(5+i, 2)
		s.Require().True(ok)
		s.Equal(m.Items()[i].Label, cell.Text)
		s.Equal(style, cell.Style, cell.Text)
	}

	bar, ok := win.At(1, 2)
	s.Require().True(ok)
	s.Equal("S: Save | Q: Quit | N: Name Player", bar.Text)

	info, ok := win.At(2, 2)
	s.Require().True(ok)
	s.Contains(info.Text, "Kestrel")
	s.Contains(info.Text, "Points: 66")
}

func (s *StateTestSuite) TestExitClosesSidePanel() {
	term := uimock.NewMockTerminal(s.ctrl)
	win := uimock.NewMockPanel(s.ctrl)
	side := uimock.NewMockPanel(s.ctrl)

	term.EXPECT().Window().Return(win)
	term.EXPECT().NewPanel(12, 36, 2, 40).Return(side)
	term.EXPECT().MessageBar(gomock.Any()).AnyTimes()
	term.EXPECT().Flush().AnyTimes()
	term.EXPECT().ReadKey(gomock.Any()).Return(ui.KeyQuit, nil)

	win.EXPECT().ClearRegion().AnyTimes()
	win.EXPECT().DrawBorder().AnyTimes()
	win.EXPECT().PaintText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	gomock.InOrder(
		side.EXPECT().Show(),
		side.EXPECT().Raise(),
		side.EXPECT().Close(),
	)
	side.EXPECT().ClearRegion().AnyTimes()
	side.EXPECT().DrawBorder().AnyTimes()
	side.EXPECT().PaintText(1, 2, "Mage", ui.StyleHeading)
	side.EXPECT().PaintText(gomock.Any(), gomock.Any(), gomock.Any(), ui.StyleNormal).AnyTimes()

	s.deps.Terminal = term
	m, err := menu.NewClassMenu(s.deps)
	s.Require().NoError(err)

	s.Require().NoError(m.Run(s.ctx))
	s.Nil(s.player.Class)
}
