package janggi

// rule is one piece kind's movement model. legal decides a single
// (from, to) pair on the current board; targets lists every square the
// piece could ever reach from `from` on an empty board, so enumeration and
// validation share the same predicate.
type rule struct {
	legal   func(p *Position, side Side, from, to Coord) bool
	targets func(side Side, from Coord, out []Coord) []Coord
}

var rules = [numKinds]rule{
	Chariot:  {legal: chariotLegal, targets: lineTargets},
	Elephant: {legal: elephantLegal, targets: elephantTargets},
	Horse:    {legal: horseLegal, targets: horseTargets},
	Guard:    {legal: palaceStepLegal, targets: stepTargets},
	General:  {legal: palaceStepLegal, targets: stepTargets},
	Cannon:   {legal: cannonLegal, targets: lineTargets},
	Soldier:  {legal: soldierLegal, targets: stepTargets},
}

// Legal reports whether a piece of the given kind and side may move from
// `from` to `to` by its movement rule alone. It does not look at who owns
// the destination or whether the move exposes a general; the orchestrator
// handles those.
func Legal(p *Position, kind PieceKind, side Side, from, to Coord) bool {
	if kind <= KindNone || kind >= numKinds {
		return false
	}
	if !from.OnBoard() || !to.OnBoard() || from == to {
		return false
	}
	return rules[kind].legal(p, side, from, to)
}

var (
	orthoDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// forward is the rank direction a side's soldiers advance in.
func forward(side Side) int {
	if side == Red {
		return 1
	}
	return -1
}

// between counts the pieces strictly between from and to, which must share
// a rank, a file or a diagonal, and returns the last one seen.
func between(p *Position, from, to Coord) (int, Piece) {
	df, dr := sign(to.File-from.File), sign(to.Rank-from.Rank)
	var (
		n    int
		last Piece
	)
	for c := from.add(df, dr); c != to; c = c.add(df, dr) {
		if pc, ok := p.at(c); ok {
			n++
			last = pc
		}
	}
	return n, last
}

func stepTargets(_ Side, from Coord, out []Coord) []Coord {
	for _, d := range orthoDirs {
		if c := from.add(d[0], d[1]); c.OnBoard() {
			out = append(out, c)
		}
	}
	for _, d := range diagDirs {
		if c := from.add(d[0], d[1]); c.OnBoard() {
			out = append(out, c)
		}
	}
	return out
}

// lineTargets is every square on from's rank and file, plus the palace
// diagonal squares when from sits on a palace line.
func lineTargets(_ Side, from Coord, out []Coord) []Coord {
	for f := 0; f < Files; f++ {
		if f != from.File {
			out = append(out, Coord{File: f, Rank: from.Rank})
		}
	}
	for r := 0; r < Ranks; r++ {
		if r != from.Rank {
			out = append(out, Coord{File: from.File, Rank: r})
		}
	}
	if !from.InPalace() {
		return out
	}
	for _, d := range diagDirs {
		for step := 1; step <= 2; step++ {
			c := from.add(d[0]*step, d[1]*step)
			if palaceDiagonal(from, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// 장 / 사: one step inside the own palace, diagonals only on the marked lines.
func palaceStepLegal(_ *Position, side Side, from, to Coord) bool {
	if !InPalaceOf(side, to) {
		return false
	}
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	switch {
	case df+dr == 1:
		return true
	case df == 1 && dr == 1:
		return palaceDiagonal(from, to)
	}
	return false
}

// 졸 / 병: forward or sideways, plus forward palace diagonals.
func soldierLegal(_ *Position, side Side, from, to Coord) bool {
	df, dr := to.File-from.File, to.Rank-from.Rank
	fwd := forward(side)
	switch {
	case df == 0 && dr == fwd:
		return true
	case abs(df) == 1 && dr == 0:
		return true
	case abs(df) == 1 && dr == fwd:
		return palaceDiagonal(from, to)
	}
	return false
}

// 차: straight lines, and palace diagonals between two palace points.
func chariotLegal(p *Position, _ Side, from, to Coord) bool {
	if from.File != to.File && from.Rank != to.Rank && !palaceDiagonal(from, to) {
		return false
	}
	n, _ := between(p, from, to)
	return n == 0
}

// 포: same lines as the chariot, but it must jump exactly one screen. Cannons
// never serve as the screen and are never captured by a cannon.
func cannonLegal(p *Position, _ Side, from, to Coord) bool {
	if from.File != to.File && from.Rank != to.Rank && !palaceDiagonal(from, to) {
		return false
	}
	n, screen := between(p, from, to)
	if n != 1 || screen.Kind == Cannon {
		return false
	}
	if dst, ok := p.at(to); ok && dst.Kind == Cannon {
		return false
	}
	return true
}
