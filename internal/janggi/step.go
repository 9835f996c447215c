package janggi

import "fmt"

// Step applies mv for st.Turn and returns the next state. On error the
// position and the returned state are exactly what was passed in.
//
// Step trusts that p and st belong together; Game is the usual caller.
func Step(p *Position, st State, mv Move, rule MateRule) (State, error) {
	if st.Over() {
		return st, ErrGameOver
	}
	side := st.Turn
	if !mv.From.OnBoard() {
		return st, fmt.Errorf("%w: %v", ErrOffBoard, mv.From)
	}
	pc, ok := p.PieceAt(mv.From)
	if !ok {
		return st, fmt.Errorf("%w: %v", ErrNoPiece, mv.From)
	}
	if pc.Side != side {
		return st, fmt.Errorf("%w: %v", ErrNotYourPiece, mv.From)
	}
	inCheck := InCheck(p, side)

	if mv.IsPass() {
		if inCheck {
			return st, ErrPassInCheck
		}
		st.Turn = side.Opponent()
		return st, nil
	}

	if err := p.checkDestination(side, mv.To); err != nil {
		return st, fmt.Errorf("%w: %v", err, mv.To)
	}
	if !rules[pc.Kind].legal(p, side, mv.From, mv.To) {
		return st, fmt.Errorf("%w: %v %v", ErrIllegalMove, pc.Kind, mv)
	}

	u := p.apply(mv.From, mv.To)
	if InCheck(p, side) {
		p.revert(u)
		if inCheck {
			return st, ErrStillInCheck
		}
		return st, ErrSelfCheck
	}
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("janggi: corrupt position after %v: %v", mv, err))
	}

	opp := side.Opponent()
	if IsMate(p, opp, rule) {
		return State{
			Status: Won,
			Winner: side,
			Turn:   opp,
			Check:  opp,
		}, nil
	}
	st.Check = NoSide
	if InCheck(p, opp) {
		st.Check = opp
	}
	st.Turn = opp
	return st, nil
}

// PassMove is the move Step treats as a pass for the piece on c.
func PassMove(c Coord) Move { return Move{From: c, To: c} }
