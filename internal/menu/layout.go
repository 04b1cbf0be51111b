package menu

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Screen layout in window cells
const (
	margin     = 2
	menuBarRow = 1
	infoRow    = 2
	headerRow  = 3
	itemRow    = 5
	valueCol   = 17

	// maxNameLength bounds typed player and file names
	maxNameLength = 15
)

const menuBar = "S: Save | Q: Quit | N: Name Player"

var titleCaser = cases.Title(language.English)

func title(s string) string {
	return titleCaser.String(s)
}
