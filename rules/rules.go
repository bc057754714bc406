// Package rules describes the chess rules engine the search consumes and
// provides adapters for the libraries that implement it.
package rules

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrUnknownRules = errors.New("unknown rules engine")

// Color is the side a piece belongs to.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "-"
}

// PieceKind is the kind of a piece regardless of its color.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind in table order.
var Kinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

var NoPiece = Piece{}

func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

// Symbol returns the FEN letter of the piece, upper case for White.
func (p Piece) Symbol() string {
	s := ""
	switch p.Kind {
	case Pawn:
		s = "p"
	case Knight:
		s = "n"
	case Bishop:
		s = "b"
	case Rook:
		s = "r"
	case Queen:
		s = "q"
	case King:
		s = "k"
	default:
		return ""
	}
	if p.Color == White {
		return strings.ToUpper(s)
	}
	return s
}

// Square indexes the board from a1 = 0 to h8 = 63.
type Square int8

const NumSquares = 64

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

// Mirror reflects the square across the horizontal axis between ranks 4 and 5.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

func (sq Square) String() string {
	return string(rune('a'+sq.File())) + string(rune('1'+sq.Rank()))
}

// Status reports whether the game continues at a position.
type Status int8

const (
	Ongoing Status = iota
	// Decisive means the side to move has been checkmated.
	Decisive
	// Drawn covers stalemate and any other draw the engine reports.
	Drawn
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Decisive:
		return "checkmate"
	case Drawn:
		return "draw"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// Move is one legal transition from the position that generated it.
type Move interface {
	From() Square
	To() Square
	Promotion() PieceKind
	// String returns UCI coordinate notation, e.g. e2e4 or e7e8q.
	String() string
}

// Position is an immutable game state. Apply returns a new Position and
// never changes the receiver.
type Position interface {
	SideToMove() Color
	PieceAt(sq Square) Piece
	Status() Status
	// LegalMoves yields each legal move once, in generator order. The
	// sequence is meant to be ranged over a single time.
	LegalMoves() iter.Seq[Move]
	Apply(m Move) Position
	FEN() string
}

// Rules parses positions for one rules engine implementation.
type Rules interface {
	Name() string
	Parse(fen string) (Position, error)
}

// ParseError reports a malformed FEN string.
type ParseError struct {
	FEN string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse fen %q: %v", e.FEN, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ByName returns the rules engine registered under name.
func ByName(name string) (Rules, error) {
	switch strings.ToLower(name) {
	case "", "notnil":
		return Notnil{}, nil
	case "dragon", "dragontooth", "dragontoothmg":
		return Dragon{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRules, name)
}

// Names lists the registered rules engines.
func Names() []string {
	return []string{Notnil{}.Name(), Dragon{}.Name()}
}

// FindMove looks up the legal move written as text in UCI notation.
func FindMove(pos Position, text string) (Move, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil, false
	}
	for m := range pos.LegalMoves() {
		if m.String() == text {
			return m, true
		}
	}
	return nil, false
}

// CountMoves returns the number of legal moves at pos.
func CountMoves(pos Position) int {
	n := 0
	for range pos.LegalMoves() {
		n++
	}
	return n
}
