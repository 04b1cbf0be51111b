// Package entities holds the player model mutated by the creation menus.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// DefaultBudget is the total attribute points a new character may hold
const DefaultBudget = 66

// Player is the character being created. Menus mutate it in place and never
// copy it.
type Player struct {
	ID    string
	Name  string
	Class *PlayerClass

	Level  int
	Spells int
	Sneaks int
	Damage int

	budget       int
	attributes   [attributeCount]int
	resists      [resistCount]int
	status       [statusCount]bool
	initComplete bool
}

// NewPlayer creates a level one player with an empty attribute sheet
func NewPlayer(id, name string, budget int) *Player {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Player{
		ID:     id,
		Name:   name,
		Level:  1,
		Damage: 1,
		budget: budget,
	}
}

// GetID returns the player's ID
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return "player"
}

// Budget returns the total creation budget
func (p *Player) Budget() int {
	return p.budget
}

// Attribute returns the current value of a
func (p *Player) Attribute(a Attribute) int {
	if !a.Valid() {
		return 0
	}
	return p.attributes[a]
}

// SetAttribute overwrites the value of a
func (p *Player) SetAttribute(a Attribute, value int) {
	if a.Valid() {
		p.attributes[a] = value
	}
}

// IncrementAttribute adds one point to a and returns the new value
func (p *Player) IncrementAttribute(a Attribute) int {
	if !a.Valid() {
		return 0
	}
	p.attributes[a]++
	return p.attributes[a]
}

// ResetAttributes zeroes every attribute and clears initialization
func (p *Player) ResetAttributes() {
	p.attributes = [attributeCount]int{}
	p.initComplete = false
}

// UnallocatedPoints is the budget not yet committed to any attribute. It is
// recomputed on every call.
func (p *Player) UnallocatedPoints() int {
	total := 0
	for _, v := range p.attributes {
		total += v
	}
	return p.budget - total
}

// Resist returns the current value of r
func (p *Player) Resist(r Resist) int {
	if r < 0 || r >= resistCount {
		return 0
	}
	return p.resists[r]
}

// SetResist overwrites the value of r
func (p *Player) SetResist(r Resist, value int) {
	if r >= 0 && r < resistCount {
		p.resists[r] = value
	}
}

// Status reports whether the status effect is active
func (p *Player) Status(s StatusEffect) bool {
	if s < 0 || s >= statusCount {
		return false
	}
	return p.status[s]
}

// SetStatus toggles a status effect
func (p *Player) SetStatus(s StatusEffect, active bool) {
	if s >= 0 && s < statusCount {
		p.status[s] = active
	}
}

// InitializationComplete reports whether every attribute point was spent
func (p *Player) InitializationComplete() bool {
	return p.initComplete
}

// CompleteInitialization marks the attribute sheet as final
func (p *Player) CompleteInitialization() {
	p.initComplete = true
}

// ClassName returns the chosen class name or an empty string
func (p *Player) ClassName() string {
	if p.Class == nil {
		return ""
	}
	return p.Class.Name
}

// AttributeMap returns attribute values keyed by name
func (p *Player) AttributeMap() map[string]int {
	out := make(map[string]int, attributeCount)
	for _, a := range AttributeList() {
		out[a.String()] = p.attributes[a]
	}
	return out
}

// ResistMap returns resist values keyed by name
func (p *Player) ResistMap() map[string]int {
	out := make(map[string]int, resistCount)
	for _, r := range ResistList() {
		out[r.String()] = p.resists[r]
	}
	return out
}

// StatusMap returns status flags keyed by name
func (p *Player) StatusMap() map[string]bool {
	out := make(map[string]bool, statusCount)
	for _, s := range StatusList() {
		out[s.String()] = p.status[s]
	}
	return out
}

// MetaMap returns the level, spells, sneaks and damage fields
func (p *Player) MetaMap() map[string]int {
	return map[string]int{
		"level":  p.Level,
		"spells": p.Spells,
		"sneaks": p.Sneaks,
		"damage": p.Damage,
	}
}

// Stat is one line of the stats panel
type Stat struct {
	Name  string
	Value int
	// Base marks stats stored on the player rather than derived from attributes
	Base bool
}

// Stats returns calculated stats followed by base stats
func (p *Player) Stats() []Stat {
	a := p.attributes
	return []Stat{
		{Name: "hit points", Value: a[Health]*3 + a[Strength]},
		{Name: "mana", Value: a[Intellect]*2 + a[Wisdom]},
		{Name: "attack", Value: a[Strength] + a[Agility]/2},
		{Name: "defense", Value: a[Agility] + a[Health]/2},
		{Name: "level", Value: p.Level, Base: true},
		{Name: "spells", Value: p.Spells, Base: true},
		{Name: "sneaks", Value: p.Sneaks, Base: true},
		{Name: "damage", Value: p.Damage, Base: true},
	}
}

var _ core.Entity = (*Player)(nil)
