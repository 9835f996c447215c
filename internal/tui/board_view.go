package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"janggi/internal/janggi"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	markStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	checkStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderBoard draws the board with Blue's back rank on top, the way Blue
// sees it. Each point is three columns wide.
func RenderBoard(g *janggi.Game, marks janggi.SquareSet) string {
	st := g.State()
	var b strings.Builder
	b.WriteString("    ")
	for f := range janggi.Files {
		b.WriteString(" " + string(rune('a'+f)) + " ")
	}
	b.WriteString("\n")

	for r := janggi.Ranks - 1; r >= 0; r-- {
		c := janggi.Coord{File: 0, Rank: r}
		label := c.String()[1:]
		b.WriteString(strings.Repeat(" ", 3-len(label)) + label + " ")
		for f := range janggi.Files {
			c.File = f
			pc, ok := g.PieceAt(c)
			b.WriteString(cell(c, pc, ok, marks.Has(c), ok && pc.Kind == janggi.General && pc.Side == st.Check))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cell returns a fixed-width 3-char cell.
func cell(c janggi.Coord, pc janggi.Piece, ok, marked, inCheck bool) string {
	if !ok {
		switch {
		case marked:
			return markStyle.Render(" * ")
		case c.InPalace():
			return dimStyle.Render(" + ")
		}
		return dimStyle.Render(" . ")
	}

	style := blueStyle
	if pc.Side == janggi.Red {
		style = redStyle
	}
	switch {
	case inCheck:
		style = style.Inherit(checkStyle)
	case marked:
		style = style.Underline(true)
	}
	return " " + style.Render(pc.Kind.Label())
}
