package janggi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sq(t testing.TB, s string) Coord {
	t.Helper()
	c, err := ParseCoord(s)
	require.NoError(t, err)
	return c
}

func place(t testing.TB, p *Position, kind PieceKind, side Side, at string) PieceID {
	t.Helper()
	id, err := p.Place(kind, side, sq(t, at))
	require.NoError(t, err)
	return id
}

// legalFrom lists every point the movement rule alone allows from `from`.
func legalFrom(t testing.TB, p *Position, kind PieceKind, side Side, from string) []string {
	t.Helper()
	f := sq(t, from)
	var out []string
	for i := range NumSquares {
		if to := coordOf(i); Legal(p, kind, side, f, to) {
			out = append(out, to.String())
		}
	}
	return out
}

func decode(t testing.TB, layout string) (*Position, Side) {
	t.Helper()
	p, turn, err := DecodeLayout(layout)
	require.NoError(t, err)
	return p, turn
}

func newGame(t testing.TB, layout string, mate MateRule) *Game {
	t.Helper()
	g, err := NewGame(Config{Layout: layout, Mate: mate})
	require.NoError(t, err)
	return g
}
