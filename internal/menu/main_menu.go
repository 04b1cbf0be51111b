package menu

import (
	"context"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Main menu item tags
const (
	TagChooseClass   = "choose_class"
	TagSetAttributes = "set_attributes"
	TagStartGame     = "start_game"
	TagOptions       = "options"
)

const mainAttributesIndex = 1

type mainMenu struct{}

// NewMainMenu creates the top-level menu. Its actions open the class,
// attribute and option menus as nested activations.
func NewMainMenu(deps *Deps) (*State, error) {
	return newState("main", deps, &mainMenu{}, "Back", 0)
}

func (m *mainMenu) PopulateItems(s *State) []Item {
	return []Item{
		{Label: "Choose Class", Tag: TagChooseClass, Available: true, Action: func(ctx context.Context) error {
			return runChild(ctx, s, NewClassMenu)
		}},
		{Label: "Set Attributes", Tag: TagSetAttributes, Available: s.deps.Player.Class != nil, Action: func(ctx context.Context) error {
			return runChild(ctx, s, NewAttributeMenu)
		}},
		{Label: "Start Game", Tag: TagStartGame, Available: true, Action: func(context.Context) error {
			return errors.FailedPrecondition("Starting the game is not implemented yet")
		}},
		{Label: "Options", Tag: TagOptions, Available: true, Action: func(ctx context.Context) error {
			return runChild(ctx, s, NewOptionMenu)
		}},
	}
}

func runChild(ctx context.Context, parent *State, build func(*Deps) (*State, error)) error {
	child, err := build(parent.deps)
	if err != nil {
		return err
	}
	err = child.Run(ctx)
	// the child's last message stays on screen after it pops
	if msg := child.Message(); msg != "" {
		parent.message = msg
	}
	return err
}

func (m *mainMenu) Render(s *State) {
	s.items[mainAttributesIndex].Available = s.deps.Player.Class != nil
	s.window.PaintText(headerRow, margin, "Paladin", ui.StyleHeading)
}

func (m *mainMenu) ResolveSelection(ctx context.Context, s *State, key ui.Key) (bool, error) {
	cont, err := s.ResolveDefault(ctx, key)
	if err != nil || !cont {
		return cont, err
	}
	// a confirmed item keeps its own message until the next key
	switch key {
	case ui.KeyUp, ui.KeyDown, ui.KeyOther, ui.KeyNone:
		s.message = mainHint(s.cursor, len(s.items))
	}
	return true, nil
}

func mainHint(cursor, count int) string {
	switch count - cursor {
	case 1:
		return "Hit ENTER to exit this menu"
	case 2:
		return "Press ENTER to edit game options"
	case 3:
		return "Press ENTER to start the game (not implemented)"
	default:
		return "Hit ENTER to choose this option"
	}
}

func (m *mainMenu) OnEnter(_ context.Context, s *State) error {
	s.message = mainHint(s.cursor, len(s.items))
	return nil
}

func (m *mainMenu) OnExit(s *State) {
	s.log.Debug("leaving main menu")
}
