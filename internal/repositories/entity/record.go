package entity

import (
	"time"

	"github.com/KirkDiggler/paladin/internal/entities"
)

// Record is the saved form of a player
type Record struct {
	Name       string          `json:"name" yaml:"name"`
	Class      string          `json:"class" yaml:"class"`
	Attributes map[string]int  `json:"attributes" yaml:"attributes"`
	Resists    map[string]int  `json:"resists" yaml:"resists"`
	Meta       map[string]int  `json:"meta" yaml:"meta"`
	Status     map[string]bool `json:"status" yaml:"status"`
	SavedAt    time.Time       `json:"saved_at" yaml:"saved_at"`
}

// NewRecord captures the player as of at
func NewRecord(p *entities.Player, at time.Time) *Record {
	return &Record{
		Name:       p.Name,
		Class:      p.ClassName(),
		Attributes: p.AttributeMap(),
		Resists:    p.ResistMap(),
		Meta:       p.MetaMap(),
		Status:     p.StatusMap(),
		SavedAt:    at,
	}
}
