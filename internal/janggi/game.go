package janggi

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Config is everything NewGame needs. The zero value is a standard game
// with the general-mobility checkmate rule and no logging.
type Config struct {
	Layout string // empty means InitialLayout
	Mate   MateRule
	Logger *slog.Logger
}

// Game is one match. It is not safe for concurrent use.
type Game struct {
	ID        string
	CreatedAt time.Time

	pos     *Position
	state   State
	rule    MateRule
	log     *slog.Logger
	history []Record
}

func NewGame(cfg Config) (*Game, error) {
	layout := cfg.Layout
	if layout == "" {
		layout = InitialLayout
	}
	pos, turn, err := DecodeLayout(layout)
	if err != nil {
		return nil, err
	}

	st := NewState()
	st.Turn = turn
	switch {
	case InCheck(pos, Red) && InCheck(pos, Blue):
		return nil, fmt.Errorf("%w: both generals in check", ErrInvalidLayout)
	case InCheck(pos, turn.Opponent()):
		return nil, fmt.Errorf("%w: %v to move but %v is in check", ErrInvalidLayout, turn, turn.Opponent())
	case InCheck(pos, turn):
		st.Check = turn
		if IsMate(pos, turn, cfg.Mate) {
			st.Status, st.Winner = Won, turn.Opponent()
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	return &Game{
		ID:        id,
		CreatedAt: time.Now(),
		pos:       pos,
		state:     st,
		rule:      cfg.Mate,
		log:       logger.With("game", id),
	}, nil
}

// MakeMove is Move for boundary coordinates such as "e7".
func (g *Game) MakeMove(from, to string) error {
	f, err := ParseCoord(from)
	if err != nil {
		return err
	}
	t, err := ParseCoord(to)
	if err != nil {
		return err
	}
	return g.Move(f, t)
}

// Move plays from→to for the side to move. From == to is a pass.
func (g *Game) Move(from, to Coord) error {
	mv := Move{From: from, To: to}
	side := g.state.Turn
	pc, _ := g.pos.PieceAt(from)
	captured, _ := g.pos.PieceAt(to)
	if mv.IsPass() {
		captured = Piece{}
	}

	next, err := Step(g.pos, g.state, mv, g.rule)
	if err != nil {
		g.log.Debug("move rejected", "side", side.String(), "from", from.String(), "to", to.String(), "error", err)
		return err
	}
	g.state = next
	g.history = append(g.history, Record{
		Side:     side,
		Move:     mv,
		Kind:     pc.Kind,
		Captured: captured.Kind,
		Check:    next.Check == side.Opponent(),
	})
	g.log.Debug("move accepted", "side", side.String(), "from", from.String(), "to", to.String(), "kind", pc.Kind.String(), "captured", captured.Kind.String())

	switch {
	case next.Over():
		g.log.Info("checkmate", "winner", next.Winner.String(), "plies", len(g.history))
	case next.Check != NoSide:
		g.log.Info("check", "side", next.Check.String())
	}
	return nil
}

// Pass hands the turn to the opponent without moving.
func (g *Game) Pass() error {
	side := g.state.Turn
	c, ok := g.pos.General(side)
	if !ok {
		ids := slices.Sorted(maps.Keys(g.pos.reg[side]))
		if len(ids) == 0 {
			return ErrNoPiece
		}
		c = g.pos.reg[side][ids[0]]
	}
	return g.Move(c, c)
}

func (g *Game) Turn() Side        { return g.state.Turn }
func (g *Game) CheckStatus() Side { return g.state.Check }
func (g *Game) State() State      { return g.state }
func (g *Game) Mate() MateRule    { return g.rule }

// PiecesOf is a snapshot of the side's registry.
func (g *Game) PiecesOf(side Side) Registry { return g.pos.Pieces(side) }

func (g *Game) Piece(id PieceID) (Piece, Coord, bool) { return g.pos.Piece(id) }

func (g *Game) PieceAt(c Coord) (Piece, bool) { return g.pos.PieceAt(c) }

// Targets lists where the piece on from may legally go. Pieces of the side
// not to move get their targets too, which is handy for showing threats.
func (g *Game) Targets(from Coord) []Coord {
	if g.state.Over() {
		return nil
	}
	return g.pos.Targets(from)
}

// Reachable is side's current attack surface.
func (g *Game) Reachable(side Side) SquareSet { return Reachable(g.pos, side) }

func (g *Game) History() []Record { return slices.Clone(g.history) }

func (g *Game) Layout() string { return EncodeLayout(g.pos, g.state.Turn) }

// Fingerprint identifies the position and the side to move.
func (g *Game) Fingerprint() uint64 { return g.pos.Hash(g.state.Turn) }
