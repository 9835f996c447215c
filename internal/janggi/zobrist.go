package janggi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := range 2 {
			for k := Chariot; k < numKinds; k++ {
				for sq := range NumSquares {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

// Hash fingerprints the pieces on the board and the side to move. Piece IDs
// do not take part, so two positions with the same pieces on the same points
// hash alike.
func (p *Position) Hash(turn Side) uint64 {
	initZobrist()

	var h uint64
	for _, side := range [2]Side{Red, Blue} {
		for id, c := range p.reg[side] {
			h ^= zobristPieces[side][p.pieces[id].Kind][c.index()]
		}
	}
	if turn == Red {
		h ^= zobristSide
	}
	return h
}
