package menu

import (
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/allocation"
	"github.com/KirkDiggler/paladin/internal/config"
	"github.com/KirkDiggler/paladin/internal/dice"
	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/pkg/clock"
	"github.com/KirkDiggler/paladin/internal/pkg/idgen"
	"github.com/KirkDiggler/paladin/internal/repositories/entity"
	"github.com/KirkDiggler/paladin/internal/ui"
)

// Deps are the collaborators shared by every menu in a session
type Deps struct {
	Terminal ui.Terminal
	Player   *entities.Player
	Catalog  *entities.Catalog
	Engine   *allocation.Engine
	Options  *config.Options
	Store    entity.Store
	// Picker chooses random names for the rename command.
	Picker dice.Picker
	// Names supplies the default save name.
	Names idgen.Generator
	Clock clock.Clock
	// Bus is optional.
	Bus    events.EventBus
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (d *Deps) Validate() error {
	if d == nil {
		return errors.InvalidArgument("deps cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if d.Terminal == nil {
		vb.RequiredField("Terminal")
	}
	if d.Player == nil {
		vb.RequiredField("Player")
	}
	if d.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if d.Engine == nil {
		vb.RequiredField("Engine")
	}
	if d.Options == nil {
		vb.RequiredField("Options")
	}
	if d.Store == nil {
		vb.RequiredField("Store")
	}
	if d.Picker == nil {
		vb.RequiredField("Picker")
	}
	if d.Names == nil {
		vb.RequiredField("Names")
	}
	if d.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

func (d *Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
