package menu

import "context"

// Action runs when an available, non-poppable item is confirmed
type Action func(ctx context.Context) error

// Item is one selectable row. Index always equals the item's position in
// its menu.
type Item struct {
	Label string
	// Tag names the item for hover lookups and logs.
	Tag       string
	Index     int
	Poppable  bool
	Available bool
	Action    Action
}

const backTag = "back"

// SetItems replaces the menu's items, renumbers them and appends the
// poppable back item under backLabel.
func (s *State) SetItems(items []Item, backLabel string) {
	s.items = make([]Item, 0, len(items)+1)
	for _, it := range items {
		it.Index = len(s.items)
		s.items = append(s.items, it)
	}
	s.items = append(s.items, Item{
		Label:     backLabel,
		Tag:       backTag,
		Index:     len(s.items),
		Poppable:  true,
		Available: true,
	})
	s.Navigate(0)
}

// Items returns the current items
func (s *State) Items() []Item {
	return s.items
}

// Current returns the item under the cursor
func (s *State) Current() Item {
	return s.items[s.cursor]
}

// OnBack reports whether the cursor sits on the back item
func (s *State) OnBack() bool {
	return s.cursor == len(s.items)-1
}
