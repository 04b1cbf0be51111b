package entities

import (
	"strings"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// Attribute is one of the fixed, ordered player attributes
type Attribute int

// Attributes in display and roll order
const (
	Strength Attribute = iota
	Agility
	Intellect
	Health
	Wisdom
	Charisma
	Luck
	attributeCount
)

var attributeNames = [attributeCount]string{
	Strength:  "strength",
	Agility:   "agility",
	Intellect: "intellect",
	Health:    "health",
	Wisdom:    "wisdom",
	Charisma:  "charisma",
	Luck:      "luck",
}

var attributeDescriptions = [attributeCount]string{
	Strength:  "Raw physical power.\nRaises melee damage\nand carrying load.",
	Agility:   "Speed and reflexes.\nImproves dodging and\nfirst strike chance.",
	Intellect: "Learning and memory.\nDetermines spell\ncapacity.",
	Health:    "Toughness of body.\nEach point adds to\nhit points.",
	Wisdom:    "Insight and will.\nImproves mana and\nmagic resistance.",
	Charisma:  "Presence and charm.\nAffects prices and\ncompanion loyalty.",
	Luck:      "Fortune's favour.\nNudges critical hits\nand loot rolls.",
}

// AttributeList returns every attribute in the fixed order
func AttributeList() []Attribute {
	list := make([]Attribute, attributeCount)
	for i := range list {
		list[i] = Attribute(i)
	}
	return list
}

// String returns the lower-case attribute name
func (a Attribute) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return attributeNames[a]
}

// Valid reports whether a is one of the enumerated attributes
func (a Attribute) Valid() bool {
	return a >= 0 && a < attributeCount
}

// Description returns the side-panel text for the attribute
func (a Attribute) Description() string {
	if !a.Valid() {
		return ""
	}
	return attributeDescriptions[a]
}

// ParseAttribute resolves an attribute by name, ignoring case
func ParseAttribute(name string) (Attribute, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown attribute: %q", name)
}

// Resist is one of the fixed player resistances
type Resist int

// Resists in display order
const (
	Fire Resist = iota
	Cold
	Poison
	Lightning
	Magic
	resistCount
)

var resistNames = [resistCount]string{
	Fire:      "fire",
	Cold:      "cold",
	Poison:    "poison",
	Lightning: "lightning",
	Magic:     "magic",
}

// ResistList returns every resist in display order
func ResistList() []Resist {
	list := make([]Resist, resistCount)
	for i := range list {
		list[i] = Resist(i)
	}
	return list
}

// String returns the lower-case resist name
func (r Resist) String() string {
	if r < 0 || r >= resistCount {
		return "unknown"
	}
	return resistNames[r]
}

// ParseResist resolves a resist by name, ignoring case
func ParseResist(name string) (Resist, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range resistNames {
		if n == name {
			return Resist(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown resist: %q", name)
}

// StatusEffect is a boolean condition on the player
type StatusEffect int

// Status effects
const (
	Poisoned StatusEffect = iota
	Blinded
	Stunned
	Burning
	statusCount
)

var statusNames = [statusCount]string{
	Poisoned: "poisoned",
	Blinded:  "blinded",
	Stunned:  "stunned",
	Burning:  "burning",
}

// StatusList returns every status effect
func StatusList() []StatusEffect {
	list := make([]StatusEffect, statusCount)
	for i := range list {
		list[i] = StatusEffect(i)
	}
	return list
}

// String returns the lower-case status name
func (s StatusEffect) String() string {
	if s < 0 || s >= statusCount {
		return "unknown"
	}
	return statusNames[s]
}
