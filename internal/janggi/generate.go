package janggi

import (
	"iter"
	"slices"
)

// Moves yields every fully legal move of side: movement rule, destination
// checks, and no self-check. Passes are not included. The position is
// unchanged whenever the consumer sees it.
func (p *Position) Moves(side Side) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if side != Red && side != Blue {
			return
		}
		type entry struct {
			id   PieceID
			from Coord
		}
		// apply and revert touch the registries, so walk a copy.
		own := make([]entry, 0, len(p.reg[side]))
		for id, c := range p.reg[side] {
			own = append(own, entry{id, c})
		}
		slices.SortFunc(own, func(a, b entry) int { return int(a.id) - int(b.id) })

		var buf [24]Coord
		for _, e := range own {
			for _, to := range p.targetsFrom(side, e.from, buf[:0]) {
				if !yield(Move{From: e.from, To: to}) {
					return
				}
			}
		}
	}
}

// Targets lists the fully legal destinations of the piece on from.
func (p *Position) Targets(from Coord) []Coord {
	pc, ok := p.PieceAt(from)
	if !ok {
		return nil
	}
	var buf [24]Coord
	return slices.Clone(p.targetsFrom(pc.Side, from, buf[:0]))
}

func (p *Position) targetsFrom(side Side, from Coord, buf []Coord) []Coord {
	pc, ok := p.at(from)
	if !ok || pc.Side != side {
		return buf[:0]
	}
	r := rules[pc.Kind]
	cands := r.targets(side, from, buf[:0])
	out := cands[:0]
	for _, to := range cands {
		if p.checkDestination(side, to) != nil {
			continue
		}
		if !r.legal(p, side, from, to) {
			continue
		}
		u := p.apply(from, to)
		safe := !InCheck(p, side)
		p.revert(u)
		if safe {
			out = append(out, to)
		}
	}
	return out
}

// LegalMoves collects Moves into a slice.
func (p *Position) LegalMoves(side Side) []Move {
	return slices.Collect(p.Moves(side))
}
