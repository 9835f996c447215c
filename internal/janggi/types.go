package janggi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

type PieceKind int8

const (
	KindNone PieceKind = iota
	Chariot            // 車
	Elephant           // 象
	Horse              // 馬
	Guard              // 士
	General            // 將
	Cannon             // 包
	Soldier            // 卒 / 兵

	numKinds
)

var kindNames = [numKinds]string{
	KindNone: "none",
	Chariot:  "chariot",
	Elephant: "elephant",
	Horse:    "horse",
	Guard:    "guard",
	General:  "general",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

// two-letter labels used by board renderers
var kindLabels = [numKinds]string{
	KindNone: "  ",
	Chariot:  "CH",
	Elephant: "EL",
	Horse:    "HR",
	Guard:    "GD",
	General:  "GN",
	Cannon:   "CA",
	Soldier:  "SD",
}

func (k PieceKind) String() string {
	if k < 0 || k >= numKinds {
		return "none"
	}
	return kindNames[k]
}

func (k PieceKind) Label() string {
	if k < 0 || k >= numKinds {
		return "??"
	}
	return kindLabels[k]
}

// PieceID identifies a piece for the whole game. 0 marks an empty cell.
type PieceID int8

type Piece struct {
	ID   PieceID
	Kind PieceKind
	Side Side
}

// Move is a (from, to) pair; From == To is a pass.
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) IsPass() bool { return m.From == m.To }

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

type Status int8

const (
	InProgress Status = iota
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "in_progress"
}

// State is everything about a game except the pieces: whose turn it is,
// who is in check and whether somebody already won.
type State struct {
	Status Status
	Winner Side
	Turn   Side
	Check  Side
}

// NewState is the state at the start of a game. Blue moves first.
func NewState() State {
	return State{
		Status: InProgress,
		Winner: NoSide,
		Turn:   Blue,
		Check:  NoSide,
	}
}

func (s State) Over() bool { return s.Status == Won }

// Record is one accepted move in the game history.
type Record struct {
	Side     Side
	Move     Move
	Kind     PieceKind
	Captured PieceKind
	Check    bool
}
