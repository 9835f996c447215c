package janggi

import "errors"

// Rejection reasons. A rejected move never changes the game.
var (
	ErrGameOver          = errors.New("game is over")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOffBoard          = errors.New("square is off the board")
	ErrNoPiece           = errors.New("no piece on source square")
	ErrNotYourPiece      = errors.New("piece belongs to the other side")
	ErrFriendlyCapture   = errors.New("destination holds a friendly piece")
	ErrGeneralCapture    = errors.New("the general cannot be captured")
	ErrIllegalMove       = errors.New("piece cannot move there")
	ErrSelfCheck         = errors.New("move leaves own general in check")
	ErrStillInCheck      = errors.New("move does not resolve check")
	ErrPassInCheck       = errors.New("cannot pass while in check")
)
