package janggi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace(t *testing.T) {
	p := NewPosition()
	id := place(t, p, General, Red, "e2")

	pc, c, ok := p.Piece(id)
	require.True(t, ok)
	assert.Equal(t, General, pc.Kind)
	assert.Equal(t, sq(t, "e2"), c)

	g, ok := p.General(Red)
	require.True(t, ok)
	assert.Equal(t, sq(t, "e2"), g)
	_, ok = p.General(Blue)
	assert.False(t, ok)

	_, err := p.Place(Soldier, Blue, sq(t, "e2"))
	assert.Error(t, err, "occupied")
	_, err = p.Place(General, Red, sq(t, "d1"))
	assert.Error(t, err, "second general")
	_, err = p.Place(Soldier, Red, Coord{File: 9})
	assert.ErrorIs(t, err, ErrOffBoard)
	_, err = p.Place(KindNone, Red, sq(t, "a1"))
	assert.Error(t, err)
	_, err = p.Place(Soldier, NoSide, sq(t, "a1"))
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	p := NewPosition()
	id := place(t, p, General, Blue, "e9")
	assert.True(t, p.Remove(sq(t, "e9")))
	assert.False(t, p.Remove(sq(t, "e9")))
	assert.False(t, p.Remove(Coord{File: -1}))

	_, _, ok := p.Piece(id)
	assert.False(t, ok)
	_, ok = p.General(Blue)
	assert.False(t, ok)
	assert.NoError(t, p.Validate())
}

func TestApplyRevert(t *testing.T) {
	p := NewInitialPosition()
	before := p.Clone()
	hash := p.Hash(Blue)

	// Blue chariot takes the red soldier on a4.
	u := p.apply(sq(t, "a10"), sq(t, "a4"))
	require.NoError(t, p.Validate())
	assert.Len(t, p.Pieces(Red), 15)
	pc, ok := p.PieceAt(sq(t, "a4"))
	require.True(t, ok)
	assert.Equal(t, Blue, pc.Side)

	p.revert(u)
	assert.Equal(t, before, p)
	assert.Equal(t, hash, p.Hash(Blue))
}

func TestPiecesIsSnapshot(t *testing.T) {
	p := NewInitialPosition()
	reg := p.Pieces(Red)
	for id := range reg {
		delete(reg, id)
	}
	assert.Len(t, p.Pieces(Red), 16)
	assert.Empty(t, p.Pieces(NoSide))
}

func TestValidateDetectsCorruption(t *testing.T) {
	p := NewInitialPosition()
	require.NoError(t, p.Validate())

	p.cells[sq(t, "e5").index()] = p.cells[sq(t, "e2").index()]
	assert.Error(t, p.Validate())

	p = NewInitialPosition()
	for id := range p.reg[Red] {
		delete(p.reg[Red], id)
		break
	}
	assert.Error(t, p.Validate())
}

func TestPieceOutOfRange(t *testing.T) {
	p := NewInitialPosition()
	_, _, ok := p.Piece(0)
	assert.False(t, ok)
	_, _, ok = p.Piece(100)
	assert.False(t, ok)
	_, ok = p.PieceAt(Coord{File: 3, Rank: 12})
	assert.False(t, ok)
}
