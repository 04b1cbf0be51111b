// Package allocation rolls a baseline attribute sheet, biases it toward the
// chosen class and tracks the manual spending of the remainder.
package allocation

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/paladin/internal/dice"
	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
)

// Rules are the tunable constants of the roll.
type Rules struct {
	// A baseline pass is accepted when AcceptAbove < unallocated < AcceptBelow.
	AcceptAbove int
	AcceptBelow int
	// Bonus points are handed out until at most BiasFloor remain.
	BiasFloor int
	// MaxAttempts caps baseline passes. Zero means no cap.
	MaxAttempts int
}

// DefaultRules accepts a remainder of 11 to 15 and leaves up to 5 to spend
func DefaultRules() Rules {
	return Rules{
		AcceptAbove: 10,
		AcceptBelow: 16,
		BiasFloor:   5,
	}
}

// Validate checks the accept window is non-empty and sits above the floor
func (r Rules) Validate() error {
	vb := errors.NewValidationBuilder()
	if r.AcceptBelow-r.AcceptAbove < 2 {
		vb.InvalidField("AcceptBelow", "accept window is empty")
	}
	if r.BiasFloor < 0 {
		vb.InvalidField("BiasFloor", "must not be negative")
	}
	if r.MaxAttempts < 0 {
		vb.InvalidField("MaxAttempts", "must not be negative")
	}
	return vb.Build()
}

// Reachable reports whether a baseline drawn from lo..hi per attribute can
// leave a remainder of budget inside the accept window.
func (r Rules) Reachable(budget, lo, hi int) bool {
	n := len(entities.AttributeList())
	return budget-n*lo > r.AcceptAbove && budget-n*hi < r.AcceptBelow
}

// Config holds the dependencies for the Engine
type Config struct {
	Roller dice.Roller
	Picker dice.Picker
	Rules  Rules
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Picker == nil {
		vb.RequiredField("Picker")
	}
	if err := c.Rules.Validate(); err != nil {
		vb.InvalidField("Rules", errors.GetMessage(err))
	}

	return vb.Build()
}

// Engine implements the roll, bias and manual assignment steps
type Engine struct {
	roller dice.Roller
	picker dice.Picker
	rules  Rules
	log    *zap.Logger
}

// New creates an Engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		roller: cfg.Roller,
		picker: cfg.Picker,
		rules:  cfg.Rules,
		log:    log,
	}, nil
}

// Rules returns the rules the engine was built with
func (e *Engine) Rules() Rules {
	return e.rules
}

// Result describes one RollBaseline run
type Result struct {
	Skipped bool
	// Attempts is the number of full baseline passes, accepted one included.
	Attempts int
	// Baseline is the unallocated remainder of the accepted pass.
	Baseline int
	// Draws counts bias picks, wasted ones included.
	Draws int
	// Bonus is the number of points each attribute gained from biasing.
	Bonus map[entities.Attribute]int
	// Remaining is what is left for manual assignment.
	Remaining int
}

// PreferredSet returns the class's preferred attributes plus health
func PreferredSet(class *entities.PlayerClass) map[entities.Attribute]bool {
	preferred := map[entities.Attribute]bool{entities.Health: true}
	if class != nil {
		for _, a := range class.Preferred {
			preferred[a] = true
		}
	}
	return preferred
}

// RollBaseline fills the player's attributes. It does nothing when the
// player is already initialized unless force is set. The player must have a
// class.
func (e *Engine) RollBaseline(p *entities.Player, force bool) (*Result, error) {
	if p == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if p.Class == nil {
		return nil, errors.FailedPrecondition("a class must be chosen before rolling attributes").
			WithMeta("player", p.Name)
	}
	if p.InitializationComplete() && !force {
		return &Result{Skipped: true, Remaining: p.UnallocatedPoints()}, nil
	}

	result := &Result{Bonus: make(map[entities.Attribute]int)}
	attrs := entities.AttributeList()

	for {
		if e.rules.MaxAttempts > 0 && result.Attempts >= e.rules.MaxAttempts {
			return nil, errors.ResourceExhaustedf("no baseline accepted after %d attempts", result.Attempts).
				WithMeta("player", p.Name)
		}
		result.Attempts++

		for _, a := range attrs {
			v, err := e.roller.Roll()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll %s", a)
			}
			p.SetAttribute(a, v)
		}

		free := p.UnallocatedPoints()
		if free > e.rules.AcceptAbove && free < e.rules.AcceptBelow {
			result.Baseline = free
			break
		}
		e.log.Debug("baseline rejected", zap.Int("attempt", result.Attempts), zap.Int("unallocated", free))
	}

	for resist, value := range p.Class.Resists {
		p.SetResist(resist, value)
	}

	// Draws landing outside the preferred set are wasted on purpose.
	preferred := PreferredSet(p.Class)
	for p.UnallocatedPoints() > e.rules.BiasFloor {
		idx, err := e.picker.Pick(len(attrs))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick bonus attribute")
		}
		result.Draws++
		a := attrs[idx]
		if preferred[a] {
			p.IncrementAttribute(a)
			result.Bonus[a]++
		}
	}
	result.Remaining = p.UnallocatedPoints()

	e.log.Info("attributes rolled",
		zap.String("player", p.Name),
		zap.String("class", p.ClassName()),
		zap.Int("attempts", result.Attempts),
		zap.Int("baseline", result.Baseline),
		zap.Int("draws", result.Draws),
		zap.Int("remaining", result.Remaining),
	)

	return result, nil
}

// Reroll discards all progress and rolls again, even on a finished sheet
func (e *Engine) Reroll(p *entities.Player) (*Result, error) {
	if p == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p.ResetAttributes()
	return e.RollBaseline(p, true)
}

// Assign spends one point on a. Spending the last point completes the
// player's initialization.
func (e *Engine) Assign(p *entities.Player, a entities.Attribute) (int, error) {
	if !a.Valid() {
		return 0, errors.InvalidArgumentf("unknown attribute %d", int(a))
	}
	if p.UnallocatedPoints() <= 0 {
		return p.Attribute(a), errors.OutOfRange("No remaining attribute points")
	}

	v := p.IncrementAttribute(a)
	if p.UnallocatedPoints() == 0 {
		p.CompleteInitialization()
	}
	return v, nil
}

// Finish completes initialization when every point is spent
func (e *Engine) Finish(p *entities.Player) error {
	if free := p.UnallocatedPoints(); free > 0 {
		return errors.OutOfRangef("%d attribute points to assign!", free)
	}
	p.CompleteInitialization()
	return nil
}
