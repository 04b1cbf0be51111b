package menu_test

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/paladin/internal/allocation"
	"github.com/KirkDiggler/paladin/internal/config"
	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/pkg/clock"
	"github.com/KirkDiggler/paladin/internal/pkg/idgen"
	entitymock "github.com/KirkDiggler/paladin/internal/repositories/entity/mock"
	"github.com/KirkDiggler/paladin/internal/ui"
	"github.com/KirkDiggler/paladin/internal/ui/uitest"
)

// every pass sums to 53, leaving 13 of the default budget
var baselineRolls = []int{8, 8, 8, 8, 7, 7, 7}

var savedAt = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

type cycleRoller struct {
	values []int
	calls  int
}

func (r *cycleRoller) Roll() (int, error) {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v, nil
}

// cyclePicker walks 0..n-1 in order
type cyclePicker struct {
	next int
}

func (c *cyclePicker) Pick(n int) (int, error) {
	idx := c.next % n
	c.next++
	return idx, nil
}

type fixedPicker int

func (f fixedPicker) Pick(n int) (int, error) {
	return int(f) % n, nil
}

var publishedTypes = []string{
	menu.EventClassChosen,
	menu.EventAttributesRolled,
	menu.EventAttributeAssigned,
	menu.EventCreationComplete,
	menu.EventRenamed,
	menu.EventSaved,
	menu.EventOptionChanged,
}

// menuSuite wires a full set of deps around a scripted terminal
type menuSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	term      *uitest.Terminal
	player    *entities.Player
	catalog   *entities.Catalog
	engine    *allocation.Engine
	options   *config.Options
	store     *entitymock.MockStore
	deps      *menu.Deps
	ctx       context.Context
	published []string
}

func (s *menuSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.published = nil

	catalog, err := entities.DefaultCatalog()
	s.Require().NoError(err)
	s.catalog = catalog

	engine, err := allocation.New(&allocation.Config{
		Roller: &cycleRoller{values: baselineRolls},
		Picker: &cyclePicker{},
		Rules:  allocation.DefaultRules(),
	})
	s.Require().NoError(err)
	s.engine = engine

	opts := config.Default().Options
	s.options = &opts
	s.term = uitest.New()
	s.player = entities.NewPlayer("player-1", "Kestrel", entities.DefaultBudget)
	s.store = entitymock.NewMockStore(s.ctrl)

	bus := events.NewBus()
	for _, t := range publishedTypes {
		bus.SubscribeFunc(t, 0, func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	s.deps = &menu.Deps{
		Terminal: s.term,
		Player:   s.player,
		Catalog:  s.catalog,
		Engine:   s.engine,
		Options:  s.options,
		Store:    s.store,
		Picker:   fixedPicker(0),
		Names:    idgen.NewSequential("entity"),
		Clock:    clock.Fixed{At: savedAt},
		Bus:      bus,
	}
}

func (s *menuSuite) script(keys ...ui.Key) {
	s.term.Keys = keys
}

func (s *menuSuite) class(name string) *entities.PlayerClass {
	c, err := s.catalog.Class(name)
	s.Require().NoError(err)
	return c
}

func repeat(key ui.Key, n int) []ui.Key {
	keys := make([]ui.Key, n)
	for i := range keys {
		keys[i] = key
	}
	return keys
}

func keys(groups ...[]ui.Key) []ui.Key {
	var out []ui.Key
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
