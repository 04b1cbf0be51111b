package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/repositories/entity"
)

// Event types published on the bus
const (
	EventClassChosen       = "character.class_chosen"
	EventAttributesRolled  = "character.attributes_rolled"
	EventAttributeAssigned = "character.attribute_assigned"
	EventCreationComplete  = "character.creation_complete"
	EventRenamed           = "character.renamed"
	EventSaved             = "character.saved"
	EventOptionChanged     = "game.option_changed"
)

func (s *State) rename(ctx context.Context) error {
	names := s.deps.Catalog.Names()
	idx, err := s.deps.Picker.Pick(len(names))
	if err != nil {
		return errors.Wrap(err, "failed to pick a random name")
	}
	random := names[idx]

	label := fmt.Sprintf("Choose a name (Blank=%s, %d chars): ", random, maxNameLength)
	name, err := s.deps.Terminal.Prompt(ctx, label, maxNameLength)
	if err != nil {
		return err
	}
	name = truncate(strings.TrimSpace(name), maxNameLength)
	if name == "" {
		name = random
	}

	old := s.deps.Player.Name
	s.deps.Player.Name = name
	s.message = "Name selected: " + name
	s.log.Info("player renamed", zap.String("from", old), zap.String("to", name))
	s.publish(ctx, EventRenamed)
	return nil
}

func (s *State) save(ctx context.Context) error {
	p := s.deps.Player
	if !p.InitializationComplete() {
		s.message = "You must select Attributes before saving!"
		return nil
	}

	fallback := s.deps.Names.Generate()
	label := fmt.Sprintf("Input a file name (Blank=%s, %d chars): ", fallback, maxNameLength)
	name, err := s.deps.Terminal.Prompt(ctx, label, maxNameLength)
	if err != nil {
		return err
	}
	name = truncate(strings.TrimSpace(name), maxNameLength)
	if name == "" {
		name = fallback
	}

	dest := s.deps.Store.Destination(name)
	ok, err := s.deps.Terminal.Confirm(ctx, fmt.Sprintf("Save entity %q? (Y/n): ", dest))
	if err != nil {
		return err
	}
	if !ok {
		s.message = "Entity save aborted!"
		return nil
	}

	out, err := s.deps.Store.Save(ctx, entity.SaveInput{
		Name:   name,
		Record: entity.NewRecord(p, s.deps.Clock.Now()),
	})
	if err != nil {
		s.log.Error("save failed", zap.String("name", name), zap.Error(err))
		s.message = "save failed: " + errors.GetMessage(err)
		return nil
	}

	s.message = out.Destination + " saved!"
	s.log.Info("player saved", zap.String("player", p.Name), zap.String("destination", out.Destination))
	s.publish(ctx, EventSaved)
	return nil
}

// publish announces a change to the player. Bus failures are logged only.
func (s *State) publish(ctx context.Context, eventType string) {
	if s.deps.Bus == nil {
		return
	}
	if err := s.deps.Bus.Publish(ctx, events.NewGameEvent(eventType, s.deps.Player, nil)); err != nil {
		s.log.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
