package janggi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalEmptyBoard(t *testing.T) {
	tests := []struct {
		name string
		kind PieceKind
		side Side
		from string
		want []string
	}{
		{"horse center", Horse, Red, "e5", []string{"c4", "c6", "d3", "d7", "f3", "f7", "g4", "g6"}},
		{"horse corner", Horse, Blue, "a1", []string{"b3", "c2"}},
		{"elephant center", Elephant, Red, "e5", []string{"b3", "b7", "c2", "c8", "g2", "g8", "h3", "h7"}},
		{"elephant edge", Elephant, Red, "b1", []string{"d4", "e3"}},
		{"chariot open file", Chariot, Red, "e5", []string{
			"a5", "b5", "c5", "d5", "f5", "g5", "h5", "i5",
			"e1", "e2", "e3", "e4", "e6", "e7", "e8", "e9", "e10",
		}},
		{"chariot palace corner", Chariot, Red, "d1", []string{
			"a1", "b1", "c1", "e1", "f1", "g1", "h1", "i1",
			"d2", "d3", "d4", "d5", "d6", "d7", "d8", "d9", "d10",
			"e2", "f3",
		}},
		{"chariot palace center", Chariot, Blue, "e9", []string{
			"a9", "b9", "c9", "d9", "f9", "g9", "h9", "i9",
			"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8", "e10",
			"d8", "f8", "d10", "f10",
		}},
		{"chariot palace edge has no diagonal", Chariot, Red, "d2", []string{
			"a2", "b2", "c2", "e2", "f2", "g2", "h2", "i2",
			"d1", "d3", "d4", "d5", "d6", "d7", "d8", "d9", "d10",
		}},
		{"cannon without screen", Cannon, Red, "e5", nil},
		{"guard palace center", Guard, Red, "e2", []string{"d1", "e1", "f1", "d2", "f2", "d3", "e3", "f3"}},
		{"guard palace edge", Guard, Red, "d2", []string{"d1", "d3", "e2"}},
		{"guard palace corner", Guard, Blue, "f10", []string{"e10", "f9", "e9"}},
		{"general palace front", General, Red, "e3", []string{"d3", "f3", "e2"}},
		{"general outside own palace", General, Blue, "e2", nil},
		{"red soldier", Soldier, Red, "e5", []string{"e6", "d5", "f5"}},
		{"blue soldier", Soldier, Blue, "e5", []string{"e4", "d5", "f5"}},
		{"red soldier edge", Soldier, Red, "a10", []string{"b10"}},
		{"red soldier palace corner", Soldier, Red, "d8", []string{"c8", "e8", "d9", "e9"}},
		{"red soldier palace center", Soldier, Red, "e9", []string{"d9", "f9", "e10", "d10", "f10"}},
		{"red soldier palace edge", Soldier, Red, "d9", []string{"c9", "e9", "d10"}},
		{"blue soldier red palace", Soldier, Blue, "e2", []string{"d2", "f2", "e1", "d1", "f1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := legalFrom(t, NewPosition(), tt.kind, tt.side, tt.from)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestLegalSingleBlocker(t *testing.T) {
	tests := []struct {
		name    string
		kind    PieceKind
		from    string
		blocker string
		want    []string
	}{
		{"horse leg forward", Horse, "e5", "e6", []string{"c4", "c6", "d3", "f3", "g4", "g6"}},
		{"horse leg side", Horse, "e5", "f5", []string{"c4", "c6", "d3", "d7", "f3", "f7"}},
		{"elephant orthogonal leg", Elephant, "e5", "e6", []string{"b3", "b7", "c2", "g2", "h3", "h7"}},
		{"elephant diagonal leg", Elephant, "e5", "d7", []string{"b3", "b7", "c2", "g2", "g8", "h3", "h7"}},
		{"chariot file", Chariot, "e5", "e7", []string{
			"a5", "b5", "c5", "d5", "f5", "g5", "h5", "i5",
			"e1", "e2", "e3", "e4", "e6", "e7",
		}},
		{"chariot palace diagonal", Chariot, "d1", "e2", []string{
			"a1", "b1", "c1", "e1", "f1", "g1", "h1", "i1",
			"d2", "d3", "d4", "d5", "d6", "d7", "d8", "d9", "d10",
			"e2",
		}},
		{"cannon file screen", Cannon, "e5", "e7", []string{"e8", "e9", "e10"}},
		{"cannon palace screen", Cannon, "d1", "e2", []string{"f3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition()
			place(t, p, Soldier, Blue, tt.blocker)
			got := legalFrom(t, p, tt.kind, Red, tt.from)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestCannonScreenEitherSide(t *testing.T) {
	for _, side := range []Side{Red, Blue} {
		p := NewPosition()
		place(t, p, Horse, side, "a3")
		assert.True(t, Legal(p, Cannon, Red, sq(t, "a1"), sq(t, "a5")), "screen owned by %v", side)
	}
}

func TestCannonNeverJumpsOrTakesCannon(t *testing.T) {
	p := NewPosition()
	place(t, p, Cannon, Blue, "a3")
	assert.Empty(t, legalFrom(t, p, Cannon, Red, "a1"))

	p = NewPosition()
	place(t, p, Soldier, Red, "a3")
	place(t, p, Cannon, Blue, "a5")
	assert.True(t, Legal(p, Cannon, Red, sq(t, "a1"), sq(t, "a4")))
	assert.False(t, Legal(p, Cannon, Red, sq(t, "a1"), sq(t, "a5")))
	assert.False(t, Legal(p, Cannon, Red, sq(t, "a1"), sq(t, "a6")), "two pieces in between")

	p = NewPosition()
	place(t, p, Soldier, Red, "a3")
	place(t, p, Horse, Blue, "a5")
	assert.True(t, Legal(p, Cannon, Red, sq(t, "a1"), sq(t, "a5")))

	p = NewPosition()
	place(t, p, Cannon, Red, "e2")
	assert.False(t, Legal(p, Cannon, Red, sq(t, "d1"), sq(t, "f3")))
}

func TestLegalRejectsDegenerateInput(t *testing.T) {
	p := NewPosition()
	assert.False(t, Legal(p, Chariot, Red, sq(t, "a1"), sq(t, "a1")))
	assert.False(t, Legal(p, Chariot, Red, sq(t, "a1"), Coord{File: 0, Rank: 10}))
	assert.False(t, Legal(p, KindNone, Red, sq(t, "a1"), sq(t, "a2")))
}

func TestPalaceDiagonal(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"d1", "e2", true},
		{"e2", "f3", true},
		{"d1", "f3", true},
		{"f1", "d3", true},
		{"d2", "e3", false},
		{"d2", "e1", false},
		{"d1", "e1", false},
		{"e9", "d10", true},
		{"d8", "f10", true},
		{"c1", "d2", false},
		{"f3", "g4", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, palaceDiagonal(sq(t, tt.a), sq(t, tt.b)), "%s-%s", tt.a, tt.b)
	}
}
