package janggi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// InitialLayout is the standard setup with Blue to move.
const InitialLayout = "REHA1AEHR/4G4/1C5C1/S1S1S1S1S/9/9/s1s1s1s1s/1c5c1/4g4/reha1aehr b"

var ErrInvalidLayout = errors.New("invalid layout")

var kindLetters = [numKinds]rune{
	Chariot:  'r',
	Elephant: 'e',
	Horse:    'h',
	Guard:    'a',
	General:  'g',
	Cannon:   'c',
	Soldier:  's',
}

func letterKind(ch rune) PieceKind {
	for k := Chariot; k < numKinds; k++ {
		if kindLetters[k] == ch {
			return k
		}
	}
	return KindNone
}

// EncodeLayout writes ten "/"-separated ranks, rank 1 first, with Red in
// upper case and runs of empty points as digits, then "b" or "r" for the
// side to move.
func EncodeLayout(p *Position, turn Side) string {
	var sb strings.Builder
	for r := 0; r < Ranks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			pc, ok := p.at(Coord{File: f, Rank: r})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := kindLetters[pc.Kind]
			if pc.Side == Red {
				ch = unicode.ToUpper(ch)
			}
			sb.WriteRune(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if turn == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// DecodeLayout parses an EncodeLayout string. Piece IDs are assigned in
// reading order, so the same layout always yields the same IDs.
func DecodeLayout(s string) (*Position, Side, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, NoSide, fmt.Errorf("%w: want ranks and side to move", ErrInvalidLayout)
	}
	var turn Side
	switch parts[1] {
	case "b":
		turn = Blue
	case "r":
		turn = Red
	default:
		return nil, NoSide, fmt.Errorf("%w: side to move %q", ErrInvalidLayout, parts[1])
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, NoSide, fmt.Errorf("%w: %d ranks", ErrInvalidLayout, len(rows))
	}

	p := NewPosition()
	for r, row := range rows {
		f := 0
		for _, ch := range row {
			if f >= Files {
				return nil, NoSide, fmt.Errorf("%w: rank %d is too long", ErrInvalidLayout, r+1)
			}
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				continue
			}
			kind := letterKind(unicode.ToLower(ch))
			if kind == KindNone {
				return nil, NoSide, fmt.Errorf("%w: piece %q", ErrInvalidLayout, ch)
			}
			side := Blue
			if unicode.IsUpper(ch) {
				side = Red
			}
			if _, err := p.Place(kind, side, Coord{File: f, Rank: r}); err != nil {
				return nil, NoSide, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
			}
			f++
		}
		if f != Files {
			return nil, NoSide, fmt.Errorf("%w: rank %d has %d files", ErrInvalidLayout, r+1, f)
		}
	}
	return p, turn, nil
}

// NewInitialPosition returns the standard setup.
func NewInitialPosition() *Position {
	p, _, err := DecodeLayout(InitialLayout)
	if err != nil {
		panic(err)
	}
	return p
}
