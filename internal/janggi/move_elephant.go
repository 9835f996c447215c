package janggi

// 상: one orthogonal step, then two diagonal steps outward. Both squares
// passed on the way must be empty.
var elephantLegMoves = [8]struct {
	Df, Dr int       // destination
	Legs   [2][2]int // orthogonal leg, then first diagonal square
}{
	{-2, +3, [2][2]int{{0, +1}, {-1, +2}}},
	{+2, +3, [2][2]int{{0, +1}, {+1, +2}}},
	{-2, -3, [2][2]int{{0, -1}, {-1, -2}}},
	{+2, -3, [2][2]int{{0, -1}, {+1, -2}}},
	{+3, -2, [2][2]int{{+1, 0}, {+2, -1}}},
	{+3, +2, [2][2]int{{+1, 0}, {+2, +1}}},
	{-3, -2, [2][2]int{{-1, 0}, {-2, -1}}},
	{-3, +2, [2][2]int{{-1, 0}, {-2, +1}}},
}

func elephantTargets(_ Side, from Coord, out []Coord) []Coord {
	for _, m := range elephantLegMoves {
		if c := from.add(m.Df, m.Dr); c.OnBoard() {
			out = append(out, c)
		}
	}
	return out
}

func elephantLegal(p *Position, _ Side, from, to Coord) bool {
	for _, m := range elephantLegMoves {
		if from.add(m.Df, m.Dr) != to {
			continue
		}
		for _, leg := range m.Legs {
			if p.occupied(from.add(leg[0], leg[1])) {
				return false
			}
		}
		return true
	}
	return false
}
