package menu

import (
	"strings"

	"github.com/KirkDiggler/paladin/internal/ui"
)

// panelRef is a bordered side panel showing a title and wrapped text.
// The zero value draws nothing.
type panelRef struct {
	panel ui.Panel
}

func (r panelRef) describe(heading, text string) {
	if r.panel == nil {
		return
	}
	r.panel.ClearRegion()
	r.panel.DrawBorder()
	r.panel.PaintText(1, 2, heading, ui.StyleHeading)
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		r.panel.PaintText(3+i, 2, line, ui.StyleNormal)
	}
	r.panel.Raise()
}
