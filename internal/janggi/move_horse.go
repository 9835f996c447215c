package janggi

// 마: destination offset plus the orthogonal leg that must be empty.
var horseLegMoves = [8]struct {
	Df, Dr int // destination
	Lf, Lr int // leg
}{
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
}

func horseTargets(_ Side, from Coord, out []Coord) []Coord {
	for _, m := range horseLegMoves {
		if c := from.add(m.Df, m.Dr); c.OnBoard() {
			out = append(out, c)
		}
	}
	return out
}

func horseLegal(p *Position, _ Side, from, to Coord) bool {
	for _, m := range horseLegMoves {
		if from.add(m.Df, m.Dr) != to {
			continue
		}
		return !p.occupied(from.add(m.Lf, m.Lr))
	}
	return false
}
