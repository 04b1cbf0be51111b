// Package menu implements the cursor-driven creation screens. A State owns
// navigation, key dispatch and the lifecycle; a Variant supplies the items
// and what confirming them means.
package menu

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Phase is a point in a menu's single activation
type Phase int

// Phases in the order a menu passes through them
const (
	PhaseCreated Phase = iota
	PhaseEntered
	PhaseActive
	PhaseExiting
	PhaseDone
)

var phaseNames = [...]string{"created", "entered", "active", "exiting", "done"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Variant is the screen-specific half of a menu
type Variant interface {
	// PopulateItems builds the item list. The back item is appended after.
	PopulateItems(s *State) []Item
	// Render paints anything beyond the item list. It runs before the items
	// are painted and may update their availability.
	Render(s *State)
	// ResolveSelection handles one key and reports whether the menu
	// continues.
	ResolveSelection(ctx context.Context, s *State, key ui.Key) (bool, error)
	// OnEnter runs once before the first render.
	OnEnter(ctx context.Context, s *State) error
	// OnExit runs once on every exit path.
	OnExit(s *State)
}

// State drives one activation of a menu
type State struct {
	name    string
	deps    *Deps
	variant Variant
	log     *zap.Logger

	items   []Item
	cursor  int
	start   int
	hover   string
	message string
	lastKey ui.Key
	phase   Phase

	window ui.Panel
	panels []ui.Panel
}

func newState(name string, deps *Deps, variant Variant, backLabel string, cursor int) (*State, error) {
	if err := deps.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid deps for %s menu", name)
	}

	s := &State{
		name:    name,
		deps:    deps,
		variant: variant,
		log:     deps.logger().With(zap.String("menu", name)),
		start:   itemRow,
		window:  deps.Terminal.Window(),
	}
	s.SetItems(variant.PopulateItems(s), backLabel)
	s.Navigate(cursor)
	return s, nil
}

// Name returns the menu name used in logs
func (s *State) Name() string { return s.name }

// Cursor returns the highlighted index
func (s *State) Cursor() int { return s.cursor }

// Hover returns the tag of the highlighted item, empty once the menu quits
func (s *State) Hover() string { return s.hover }

// Message returns the pending message bar text
func (s *State) Message() string { return s.message }

// SetMessage replaces the pending message bar text
func (s *State) SetMessage(msg string) { s.message = msg }

// LastKey returns the most recently read key
func (s *State) LastKey() ui.Key { return s.lastKey }

// Phase returns where the menu is in its lifecycle
func (s *State) Phase() Phase { return s.phase }

// Navigate moves the cursor by delta, clamped to the item list
func (s *State) Navigate(delta int) {
	s.cursor += delta
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if len(s.items) > 0 {
		s.hover = s.items[s.cursor].Tag
	}
}

// NewPanel creates a side panel that is closed when the menu exits
func (s *State) NewPanel(rows, cols, y, x int) ui.Panel {
	p := s.deps.Terminal.NewPanel(rows, cols, y, x)
	s.panels = append(s.panels, p)
	return p
}

// DefaultKeyHandling handles the keys every menu shares and reports whether
// the menu continues
func (s *State) DefaultKeyHandling(ctx context.Context, key ui.Key) (bool, error) {
	switch key {
	case ui.KeyUp:
		s.Navigate(-1)
	case ui.KeyDown:
		s.Navigate(1)
	case ui.KeyRename:
		return true, s.rename(ctx)
	case ui.KeySave:
		return true, s.save(ctx)
	case ui.KeyQuit:
		s.hover = ""
		return false, nil
	}
	return true, nil
}

// ResolveDefault is the plain selection behavior: confirming the back item
// ends the menu, confirming an available item runs its action, and every
// other key goes to DefaultKeyHandling.
func (s *State) ResolveDefault(ctx context.Context, key ui.Key) (bool, error) {
	if key != ui.KeyConfirm {
		return s.DefaultKeyHandling(ctx, key)
	}

	item := s.Current()
	if item.Poppable {
		return false, nil
	}
	if !item.Available || item.Action == nil {
		return true, nil
	}
	s.log.Debug("item selected", zap.String("item", item.Tag))
	return true, s.surface(item.Action(ctx))
}

// surface turns user-facing errors into a message and passes the rest on
func (s *State) surface(err error) error {
	if err == nil {
		return nil
	}
	if !errors.IsRecoverable(err) {
		return err
	}
	s.log.Warn("action rejected", zap.Error(err))
	s.message = errors.GetMessage(err)
	return nil
}

// Render repaints the whole window and pushes it to the terminal
func (s *State) Render() {
	s.window.ClearRegion()
	s.window.DrawBorder()
	s.window.PaintText(menuBarRow, margin, menuBar, ui.StyleMenuBar)
	s.window.PaintText(infoRow, margin, s.infoLine(), ui.StyleNormal)

	s.variant.Render(s)

	for i, it := range s.items {
		s.window.PaintText(s.start+i, margin, it.Label, s.rowStyle(i))
	}

	s.deps.Terminal.MessageBar(s.message)
	s.deps.Terminal.Flush()
}

// rowStyle is the style for every cell painted on item row i
func (s *State) rowStyle(i int) ui.Style {
	switch {
	case i == s.cursor:
		return ui.StyleReverse
	case i < len(s.items) && !s.items[i].Available:
		return ui.StyleDim
	default:
		return ui.StyleNormal
	}
}

func (s *State) infoLine() string {
	p := s.deps.Player
	class := p.ClassName()
	if class == "" {
		class = "None"
	}
	return fmt.Sprintf("%s  Class: %s  Points: %d", p.Name, class, p.UnallocatedPoints())
}

// Run drives the menu from entry to exit. A State runs once.
func (s *State) Run(ctx context.Context) error {
	if s.phase != PhaseCreated {
		return errors.FailedPreconditionf("%s menu already ran", s.name)
	}
	defer s.exit()

	s.setPhase(PhaseEntered)
	if err := s.variant.OnEnter(ctx, s); err != nil {
		return err
	}

	s.setPhase(PhaseActive)
	for {
		s.Render()

		key, err := s.deps.Terminal.ReadKey(ctx)
		if err != nil {
			return err
		}
		s.lastKey = key

		cont, err := s.variant.ResolveSelection(ctx, s, key)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

func (s *State) exit() {
	s.setPhase(PhaseExiting)
	s.variant.OnExit(s)
	for _, p := range s.panels {
		p.ClearRegion()
		p.Close()
	}
	s.panels = nil
	s.window.ClearRegion()
	s.hover = ""
	s.setPhase(PhaseDone)
}

func (s *State) setPhase(p Phase) {
	s.phase = p
	s.log.Debug("menu phase", zap.Stringer("phase", p))
}
