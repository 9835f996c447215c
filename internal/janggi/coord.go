package janggi

import (
	"fmt"
	"strconv"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks

	palaceMinFile = 3
	palaceMaxFile = 5
)

// Coord addresses a board point. Rank 0 is Red's back rank, rank 9 is Blue's.
type Coord struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File < Files && c.Rank >= 0 && c.Rank < Ranks
}

func (c Coord) index() int { return c.Rank*Files + c.File }

func coordOf(sq int) Coord { return Coord{File: sq % Files, Rank: sq / Files} }

func (c Coord) add(df, dr int) Coord { return Coord{File: c.File + df, Rank: c.Rank + dr} }

// InPalace reports whether c lies in either palace.
func (c Coord) InPalace() bool {
	return palaceOf(c) != NoSide
}

// palaceOf returns the side owning the palace that contains c.
func palaceOf(c Coord) Side {
	if c.File < palaceMinFile || c.File > palaceMaxFile {
		return NoSide
	}
	switch {
	case c.Rank >= 0 && c.Rank <= 2:
		return Red
	case c.Rank >= 7 && c.Rank <= 9:
		return Blue
	}
	return NoSide
}

func InPalaceOf(side Side, c Coord) bool {
	return side != NoSide && palaceOf(c) == side
}

func palaceCenter(side Side) Coord {
	if side == Red {
		return Coord{File: 4, Rank: 1}
	}
	return Coord{File: 4, Rank: 8}
}

// palaceDiagonal reports whether a and b are joined by a marked palace
// diagonal of length 1 or 2. The lines run corner-center-corner only.
func palaceDiagonal(a, b Coord) bool {
	side := palaceOf(a)
	if side == NoSide || palaceOf(b) != side {
		return false
	}
	df, dr := abs(b.File-a.File), abs(b.Rank-a.Rank)
	if df != dr {
		return false
	}
	center := palaceCenter(side)
	switch df {
	case 1:
		return a == center || b == center
	case 2:
		return Coord{File: (a.File + b.File) / 2, Rank: (a.Rank + b.Rank) / 2} == center
	}
	return false
}

// String encodes c as a file letter and 1-based rank, e.g. "a1" or "i10".
func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string(rune('a'+c.File)) + strconv.Itoa(c.Rank+1)
}

// ParseCoord is the inverse of Coord.String.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	f := s[0]
	if f < 'a' || f > 'i' {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
	}
	r, err := strconv.Atoi(s[1:])
	if err != nil || r < 1 || r > Ranks || s[1] == '0' {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Coord{File: int(f - 'a'), Rank: r - 1}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
