package janggi

// MateRule picks how checkmate is decided.
type MateRule int8

const (
	// MateGeneralMobility: mate when no move of the general itself gets it
	// out of the reachable set. Blocking or capturing the checker with
	// another piece is not considered.
	MateGeneralMobility MateRule = iota
	// MateAnyMove: mate when no legal move of any piece ends the check.
	MateAnyMove
)

func (r MateRule) String() string {
	if r == MateAnyMove {
		return "any"
	}
	return "general"
}

// Reachable is the attack surface of side: every square one of its pieces
// could move to next, whoever's turn it is. Squares holding enemy pieces,
// the enemy general included, count.
func Reachable(p *Position, side Side) SquareSet {
	var (
		set SquareSet
		buf [24]Coord
	)
	if side != Red && side != Blue {
		return set
	}
	for id, from := range p.reg[side] {
		r := rules[p.pieces[id].Kind]
		for _, to := range r.targets(side, from, buf[:0]) {
			if dst, ok := p.at(to); ok && dst.Side == side {
				continue
			}
			if r.legal(p, side, from, to) {
				set.Add(to)
			}
		}
	}
	return set
}

// Attacked reports whether bySide could move a piece onto c.
func (p *Position) Attacked(c Coord, bySide Side) bool {
	return Reachable(p, bySide).Has(c)
}

// InCheck reports whether side's general stands in the opponent's
// reachable set. A side without a general is never in check.
func InCheck(p *Position, side Side) bool {
	g, ok := p.General(side)
	if !ok {
		return false
	}
	return p.Attacked(g, side.Opponent())
}

// Checkmate is MateGeneralMobility: side is in check and every square its
// general may step to, staying put included, is still attacked once the
// general stands there.
func Checkmate(p *Position, side Side) bool {
	if !InCheck(p, side) {
		return false
	}
	g, _ := p.General(side)
	opp := side.Opponent()

	var buf [8]Coord
	for _, to := range rules[General].targets(side, g, buf[:0]) {
		if p.checkDestination(side, to) != nil {
			continue
		}
		if !rules[General].legal(p, side, g, to) {
			continue
		}
		u := p.apply(g, to)
		escaped := !p.Attacked(to, opp)
		p.revert(u)
		if escaped {
			return false
		}
	}
	return true
}

// FullCheckmate is MateAnyMove: side is in check and has no legal move at
// all, so neither a general move nor a block nor a capture saves it.
func FullCheckmate(p *Position, side Side) bool {
	if !InCheck(p, side) {
		return false
	}
	for range p.Moves(side) {
		return false
	}
	return true
}

// IsMate applies the chosen rule.
func IsMate(p *Position, side Side, rule MateRule) bool {
	if rule == MateAnyMove {
		return FullCheckmate(p, side)
	}
	return Checkmate(p, side)
}

// checkDestination is the rule-independent part of move validation.
func (p *Position) checkDestination(side Side, to Coord) error {
	if !to.OnBoard() {
		return ErrOffBoard
	}
	dst, ok := p.at(to)
	if !ok {
		return nil
	}
	if dst.Side == side {
		return ErrFriendlyCapture
	}
	if dst.Kind == General {
		return ErrGeneralCapture
	}
	return nil
}
