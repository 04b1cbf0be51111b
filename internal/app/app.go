// Package app assembles a play session from configuration.
package app

import (
	"context"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/allocation"
	"github.com/KirkDiggler/paladin/internal/config"
	"github.com/KirkDiggler/paladin/internal/dice"
	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/menu"
	"github.com/KirkDiggler/paladin/internal/pkg/clock"
	"github.com/KirkDiggler/paladin/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/paladin/internal/redis"
	"github.com/KirkDiggler/paladin/internal/repositories/entity"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// maxBaselineAttempts stops a misconfigured budget from spinning forever
const maxBaselineAttempts = 10000

// Config holds the dependencies for an App
type Config struct {
	Settings *config.Config
	Terminal ui.Terminal
	// Optional; defaults to the toolkit's crypto roller.
	Roller toolkitdice.Roller
	// Optional; built from Settings.Store when nil.
	Store  entity.Store
	Clock  clock.Clock
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.Terminal == nil {
		vb.RequiredField("Terminal")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return c.Settings.Validate()
}

// App is one play session
type App struct {
	deps    *menu.Deps
	log     *zap.Logger
	closers []func()
}

// New wires the catalog, dice, allocation engine, store and event bus
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid app config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{log: log}

	catalog, err := entities.DefaultCatalog()
	if err != nil {
		return nil, err
	}

	roller := cfg.Roller
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	pool, err := dice.NewPool(&dice.Config{Roller: roller, Notation: cfg.Settings.Dice})
	if err != nil {
		return nil, err
	}
	picker := dice.NewPicker(roller)

	rules := allocation.DefaultRules()
	rules.MaxAttempts = maxBaselineAttempts
	engine, err := allocation.New(&allocation.Config{
		Roller: pool,
		Picker: picker,
		Rules:  rules,
		Logger: log.Named("allocation"),
	})
	if err != nil {
		return nil, err
	}

	store := cfg.Store
	if store == nil {
		var closeStore func()
		store, closeStore, err = NewStore(&cfg.Settings.Store)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeStore)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	names := catalog.Names()
	idx, err := picker.Pick(len(names))
	if err != nil {
		return nil, err
	}
	player := entities.NewPlayer(idgen.NewUUID("player").Generate(), names[idx], cfg.Settings.Budget)

	bus := events.NewBus()
	subscribeLogger(bus, log.Named("events"))

	a.deps = &menu.Deps{
		Terminal: cfg.Terminal,
		Player:   player,
		Catalog:  catalog,
		Engine:   engine,
		Options:  &cfg.Settings.Options,
		Store:    store,
		Picker:   picker,
		Names:    idgen.NewUUID("entity"),
		Clock:    clk,
		Bus:      bus,
		Logger:   log.Named("menu"),
	}

	log.Info("session ready",
		zap.String("player", player.Name),
		zap.String("dice", pool.Notation()),
		zap.Int("budget", player.Budget()),
		zap.String("store", cfg.Settings.Store.Kind))
	return a, nil
}

// Player returns the character being created
func (a *App) Player() *entities.Player {
	return a.deps.Player
}

// Run shows the main menu until the player leaves it
func (a *App) Run(ctx context.Context) error {
	top, err := menu.NewMainMenu(a.deps)
	if err != nil {
		return err
	}
	if err := top.Run(ctx); err != nil {
		if errors.IsCanceled(err) && ctx.Err() != nil {
			a.log.Info("session interrupted")
			return nil
		}
		a.log.Error("session failed", zap.Error(err))
		return err
	}
	a.log.Info("session finished", zap.Bool("initialized", a.deps.Player.InitializationComplete()))
	return nil
}

// Close releases the store and flushes the log
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.log.Sync()
}

// NewStore opens the store selected by cfg. The returned func releases it.
func NewStore(cfg *config.StoreConfig) (entity.Store, func(), error) {
	switch cfg.Kind {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, err
		}
		store, err := entity.NewRedis(&entity.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, func() { _ = client.Close() }, nil
	case config.StoreFile:
		store, err := entity.NewFile(&entity.FileConfig{Dir: cfg.Dir})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		return nil, nil, errors.InvalidArgumentf("unknown store kind %q", cfg.Kind)
	}
}

var sessionEvents = []string{
	menu.EventClassChosen,
	menu.EventAttributesRolled,
	menu.EventAttributeAssigned,
	menu.EventCreationComplete,
	menu.EventRenamed,
	menu.EventSaved,
	menu.EventOptionChanged,
}

func subscribeLogger(bus events.EventBus, log *zap.Logger) {
	for _, t := range sessionEvents {
		bus.SubscribeFunc(t, 0, func(_ context.Context, e events.Event) error {
			fields := []zap.Field{zap.String("type", e.Type())}
			if src := e.Source(); src != nil {
				fields = append(fields, zap.String("source", src.GetID()))
			}
			log.Debug("event", fields...)
			return nil
		})
	}
}
