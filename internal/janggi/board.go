package janggi

import (
	"fmt"
	"maps"
)

// Registry maps each live piece of one side to its square.
type Registry map[PieceID]Coord

// Position is the board plus one registry per side. Cells hold piece IDs
// and never own the piece; the registries are the source of truth for
// which pieces are alive. Every mutation goes through place, Remove, apply
// or revert, which update both.
type Position struct {
	cells    [NumSquares]PieceID
	pieces   []Piece // indexed by PieceID, pieces[0] is unused
	reg      [2]Registry
	generals [2]PieceID
}

func NewPosition() *Position {
	return &Position{
		pieces: make([]Piece, 1, 33),
		reg:    [2]Registry{make(Registry, 16), make(Registry, 16)},
	}
}

// Place puts a new piece on an empty square and returns its ID.
func (p *Position) Place(kind PieceKind, side Side, c Coord) (PieceID, error) {
	if !c.OnBoard() {
		return 0, fmt.Errorf("%w: %v", ErrOffBoard, c)
	}
	if kind <= KindNone || kind >= numKinds || (side != Red && side != Blue) {
		return 0, fmt.Errorf("invalid piece %v/%v", side, kind)
	}
	if p.cells[c.index()] != 0 {
		return 0, fmt.Errorf("square %v is occupied", c)
	}
	if kind == General && p.generals[side] != 0 {
		return 0, fmt.Errorf("%v already has a general", side)
	}
	if len(p.pieces) > 127 {
		return 0, fmt.Errorf("too many pieces")
	}

	id := PieceID(len(p.pieces))
	p.pieces = append(p.pieces, Piece{ID: id, Kind: kind, Side: side})
	p.cells[c.index()] = id
	p.reg[side][id] = c
	if kind == General {
		p.generals[side] = id
	}
	return id, nil
}

// Remove takes the piece on c off the board for good.
func (p *Position) Remove(c Coord) bool {
	if !c.OnBoard() {
		return false
	}
	id := p.cells[c.index()]
	if id == 0 {
		return false
	}
	pc := p.pieces[id]
	p.cells[c.index()] = 0
	delete(p.reg[pc.Side], id)
	if pc.Kind == General {
		p.generals[pc.Side] = 0
	}
	return true
}

func (p *Position) PieceAt(c Coord) (Piece, bool) {
	if !c.OnBoard() {
		return Piece{}, false
	}
	id := p.cells[c.index()]
	if id == 0 {
		return Piece{}, false
	}
	return p.pieces[id], true
}

// Piece returns a live piece and its square.
func (p *Position) Piece(id PieceID) (Piece, Coord, bool) {
	if id <= 0 || int(id) >= len(p.pieces) {
		return Piece{}, Coord{}, false
	}
	pc := p.pieces[id]
	c, ok := p.reg[pc.Side][id]
	if !ok {
		return Piece{}, Coord{}, false
	}
	return pc, c, true
}

// Pieces returns a copy of the side's registry.
func (p *Position) Pieces(side Side) Registry {
	if side != Red && side != Blue {
		return Registry{}
	}
	return maps.Clone(p.reg[side])
}

// General returns the square of the side's general.
func (p *Position) General(side Side) (Coord, bool) {
	if side != Red && side != Blue {
		return Coord{}, false
	}
	id := p.generals[side]
	if id == 0 {
		return Coord{}, false
	}
	c, ok := p.reg[side][id]
	return c, ok
}

func (p *Position) occupied(c Coord) bool {
	return p.cells[c.index()] != 0
}

// at is PieceAt without the bounds check, for rule code that already
// knows c is on the board.
func (p *Position) at(c Coord) (Piece, bool) {
	id := p.cells[c.index()]
	if id == 0 {
		return Piece{}, false
	}
	return p.pieces[id], true
}

// undo is what apply changed: two cells and at most two registry entries.
type undo struct {
	id       PieceID
	from, to Coord
	captured PieceID
}

// apply moves the piece on from to to, capturing whatever stands there.
// The caller has already validated the move.
func (p *Position) apply(from, to Coord) undo {
	id := p.cells[from.index()]
	captured := p.cells[to.index()]
	if captured != 0 {
		delete(p.reg[p.pieces[captured].Side], captured)
	}
	p.cells[to.index()] = id
	p.cells[from.index()] = 0
	p.reg[p.pieces[id].Side][id] = to
	return undo{id: id, from: from, to: to, captured: captured}
}

func (p *Position) revert(u undo) {
	p.cells[u.from.index()] = u.id
	p.cells[u.to.index()] = u.captured
	p.reg[p.pieces[u.id].Side][u.id] = u.from
	if u.captured != 0 {
		p.reg[p.pieces[u.captured].Side][u.captured] = u.to
	}
}

// Validate checks that the board and both registries describe the same
// set of pieces.
func (p *Position) Validate() error {
	n := 0
	for _, side := range [2]Side{Red, Blue} {
		for id, c := range p.reg[side] {
			if !c.OnBoard() {
				return fmt.Errorf("%v piece %d registered off board at %v", side, id, c)
			}
			if p.cells[c.index()] != id {
				return fmt.Errorf("%v piece %d registered at %v but cell holds %d", side, id, c, p.cells[c.index()])
			}
			if p.pieces[id].Side != side {
				return fmt.Errorf("piece %d is in the %v registry but belongs to %v", id, side, p.pieces[id].Side)
			}
			n++
		}
	}
	for sq, id := range p.cells {
		if id == 0 {
			continue
		}
		n--
		pc := p.pieces[id]
		if c, ok := p.reg[pc.Side][id]; !ok || c.index() != sq {
			return fmt.Errorf("cell %v holds piece %d missing from the %v registry", coordOf(sq), id, pc.Side)
		}
	}
	if n != 0 {
		return fmt.Errorf("registries and board disagree on piece count")
	}
	return nil
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	np := &Position{
		cells:    p.cells,
		pieces:   append([]Piece(nil), p.pieces...),
		generals: p.generals,
	}
	np.reg[Red] = maps.Clone(p.reg[Red])
	np.reg[Blue] = maps.Clone(p.reg[Blue])
	return np
}
