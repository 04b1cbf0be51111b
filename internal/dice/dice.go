// Package dice adapts the rpg-toolkit roller to the draws the creation
// menus need: one baseline attribute value and uniform picks.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// DefaultNotation is the baseline attribute roll: 3d4, range 3-12, mean 7.5
const DefaultNotation = "3d4"

var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Roller draws one baseline attribute value
type Roller interface {
	Roll() (int, error)
}

// Picker draws a uniform index in [0, n)
type Picker interface {
	Pick(n int) (int, error)
}

// ParseNotation parses simple dice notation like "3d4"
func ParseNotation(notation string) (count, size int, err error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

// Config holds the dependencies for a Pool
type Config struct {
	Roller   dice.Roller
	Notation string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if _, _, err := ParseNotation(c.Notation); err != nil {
		vb.InvalidField("Notation", errors.GetMessage(err))
	}

	return vb.Build()
}

// Pool sums a fixed number of dice per draw
type Pool struct {
	roller dice.Roller
	count  int
	size   int
}

// NewPool creates a Pool rolling cfg.Notation on cfg.Roller
func NewPool(cfg *Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	count, size, _ := ParseNotation(cfg.Notation)
	return &Pool{
		roller: cfg.Roller,
		count:  count,
		size:   size,
	}, nil
}

// Roll returns the sum of one throw of the pool
func (p *Pool) Roll() (int, error) {
	values, err := p.roller.RollN(p.count, p.size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", p.Notation())
	}

	total := 0
	for _, v := range values {
		total += v
	}
	return total, nil
}

// Notation returns the pool in XdY form
func (p *Pool) Notation() string {
	return fmt.Sprintf("%dd%d", p.count, p.size)
}

// Range returns the smallest and largest possible draw
func (p *Pool) Range() (lo, hi int) {
	return p.count, p.count * p.size
}

// UniformPicker picks indexes with a single die
type UniformPicker struct {
	roller dice.Roller
}

// NewPicker wraps a toolkit roller
func NewPicker(roller dice.Roller) *UniformPicker {
	return &UniformPicker{roller: roller}
}

// Pick returns a uniform index in [0, n)
func (u *UniformPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d options", n)
	}
	v, err := u.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	return v - 1, nil
}

var (
	_ Roller = (*Pool)(nil)
	_ Picker = (*UniformPicker)(nil)
)
