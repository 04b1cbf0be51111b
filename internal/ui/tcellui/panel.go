package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/paladin/internal/ui"
)

type paintOp struct {
	row, col int
	text     string
	style    ui.Style
}

type panel struct {
	owner            *Screen
	rows, cols, y, x int
	ops              []paintOp
	border           bool
	visible          bool
}

// PaintText records text at a panel-relative position. Painting the same
// position again replaces the earlier text.
func (p *panel) PaintText(row, col int, text string, style ui.Style) {
	for i := range p.ops {
		if p.ops[i].row == row && p.ops[i].col == col {
			p.ops[i].text = text
			p.ops[i].style = style
			return
		}
	}
	p.ops = append(p.ops, paintOp{row: row, col: col, text: text, style: style})
}

func (p *panel) ClearRegion() {
	p.ops = p.ops[:0]
	p.border = false
}

func (p *panel) DrawBorder() {
	p.border = true
}

func (p *panel) Show() {
	p.visible = true
}

func (p *panel) Hide() {
	p.visible = false
}

// Close drops the panel from the stack so Flush no longer visits it
func (p *panel) Close() {
	p.visible = false
	p.ops = nil
	panels := p.owner.panels
	for i, other := range panels {
		if other == p {
			p.owner.panels = append(panels[:i], panels[i+1:]...)
			return
		}
	}
}

// Raise moves the panel to the top of the stack
func (p *panel) Raise() {
	panels := p.owner.panels
	for i, other := range panels {
		if other == p {
			copy(panels[i:], panels[i+1:])
			panels[len(panels)-1] = p
			return
		}
	}
}

func (p *panel) draw(s tcell.Screen) {
	blank := styleFor(ui.StyleNormal)
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			s.SetContent(p.x+col, p.y+row, ' ', nil, blank)
		}
	}
	if p.border {
		p.drawBorder(s)
	}
	for _, op := range p.ops {
		if op.row < 0 || op.row >= p.rows || op.col >= p.cols {
			continue
		}
		text := []rune(op.text)
		if room := p.cols - op.col; len(text) > room {
			text = text[:room]
		}
		drawText(s, p.x+op.col, p.y+op.row, string(text), styleFor(op.style))
	}
}

func (p *panel) drawBorder(s tcell.Screen) {
	if p.rows < 2 || p.cols < 2 {
		return
	}
	st := styleFor(ui.StyleNormal)
	right, bottom := p.x+p.cols-1, p.y+p.rows-1
	for col := p.x + 1; col < right; col++ {
		s.SetContent(col, p.y, tcell.RuneHLine, nil, st)
		s.SetContent(col, bottom, tcell.RuneHLine, nil, st)
	}
	for row := p.y + 1; row < bottom; row++ {
		s.SetContent(p.x, row, tcell.RuneVLine, nil, st)
		s.SetContent(right, row, tcell.RuneVLine, nil, st)
	}
	s.SetContent(p.x, p.y, tcell.RuneULCorner, nil, st)
	s.SetContent(right, p.y, tcell.RuneURCorner, nil, st)
	s.SetContent(p.x, bottom, tcell.RuneLLCorner, nil, st)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func styleFor(style ui.Style) tcell.Style {
	base := tcell.StyleDefault
	switch style {
	case ui.StyleReverse:
		return base.Reverse(true)
	case ui.StyleDim:
		return base.Dim(true)
	case ui.StyleHeading:
		return base.Bold(true).Foreground(tcell.ColorYellow)
	case ui.StyleMenuBar:
		return base.Foreground(tcell.ColorTeal)
	case ui.StyleStat:
		return base.Foreground(tcell.ColorGreen)
	default:
		return base
	}
}

var _ ui.Panel = (*panel)(nil)
