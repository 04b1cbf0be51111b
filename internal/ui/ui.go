// Package ui defines the terminal surface the menus draw on and the key
// vocabulary they react to.
package ui

//go:generate mockgen -destination=mock/mock_terminal.go -package=uimock github.com/KirkDiggler/paladin/internal/ui Terminal,Panel

import "context"

// Style is a text attribute understood by every backend
type Style int

// Styles
const (
	StyleNormal Style = iota
	StyleReverse
	StyleDim
	StyleHeading
	StyleMenuBar
	StyleStat
)

// Key is an input event reduced to the menu vocabulary
type Key int

// Keys
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyRename
	KeySave
	KeyQuit
	KeyDecrement
	KeyOther
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyConfirm:   "enter",
	KeyRename:    "rename",
	KeySave:      "save",
	KeyQuit:      "quit",
	KeyDecrement: "backspace",
	KeyOther:     "other",
}

// String returns the key tag
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}

// Panel is a rectangular region that can be painted, hidden and raised
type Panel interface {
	PaintText(row, col int, text string, style Style)
	ClearRegion()
	DrawBorder()
	Show()
	Hide()
	Raise()
	// Close hides the panel for good and releases it.
	Close()
}

// Terminal is the full surface a menu needs
type Terminal interface {
	// Window is the main menu panel.
	Window() Panel
	// NewPanel creates a hidden side panel.
	NewPanel(rows, cols, y, x int) Panel
	// MessageBar replaces the bottom line.
	MessageBar(text string)
	// Prompt reads free text of at most maxLen runes from the message bar.
	Prompt(ctx context.Context, label string, maxLen int) (string, error)
	// Confirm asks a yes/no question. Only y or Y answers yes.
	Confirm(ctx context.Context, question string) (bool, error)
	// ReadKey blocks until the next key.
	ReadKey(ctx context.Context) (Key, error)
	// Flush pushes pending drawing to the screen.
	Flush()
}
