package janggi

import "math/bits"

// SquareSet is a set of board squares, one bit per square.
type SquareSet struct {
	lo, hi uint64
}

func (s *SquareSet) Add(c Coord) {
	i := c.index()
	if i < 64 {
		s.lo |= 1 << uint(i)
	} else {
		s.hi |= 1 << uint(i-64)
	}
}

func (s SquareSet) Has(c Coord) bool {
	if !c.OnBoard() {
		return false
	}
	i := c.index()
	if i < 64 {
		return s.lo&(1<<uint(i)) != 0
	}
	return s.hi&(1<<uint(i-64)) != 0
}

func (s SquareSet) Len() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// Coords lists the members in board order.
func (s SquareSet) Coords() []Coord {
	out := make([]Coord, 0, s.Len())
	for sq := 0; sq < NumSquares; sq++ {
		if c := coordOf(sq); s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
