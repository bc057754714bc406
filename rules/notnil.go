package rules

import (
	"fmt"
	"iter"

	"github.com/notnil/chess"
)

// Notnil adapts github.com/notnil/chess.
type Notnil struct{}

func (Notnil) Name() string { return "notnil" }

func (Notnil) Parse(fen string) (Position, error) {
	pos, err := parseNotnil(fen)
	if err != nil {
		return nil, err
	}
	return newNotnilPosition(pos), nil
}

// parseNotnil parses fen and rejects castling rights the king and rook
// placement cannot back.
func parseNotnil(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, &ParseError{FEN: fen, Err: err}
	}
	pos := chess.NewGame(opt).Position()
	if err := checkCastling(pos); err != nil {
		return nil, &ParseError{FEN: fen, Err: err}
	}
	return pos, nil
}

var castlingHomes = []struct {
	right      string
	color      chess.Color
	side       chess.Side
	king, rook chess.Square
}{
	{"K", chess.White, chess.KingSide, chess.E1, chess.H1},
	{"Q", chess.White, chess.QueenSide, chess.E1, chess.A1},
	{"k", chess.Black, chess.KingSide, chess.E8, chess.H8},
	{"q", chess.Black, chess.QueenSide, chess.E8, chess.A8},
}

func checkCastling(pos *chess.Position) error {
	rights := pos.CastleRights()
	board := pos.Board()
	for _, h := range castlingHomes {
		if !rights.CanCastle(h.color, h.side) {
			continue
		}
		if board.Piece(h.king) != chess.NewPiece(chess.King, h.color) ||
			board.Piece(h.rook) != chess.NewPiece(chess.Rook, h.color) {
			return fmt.Errorf("castling right %s needs a king on %s and a rook on %s", h.right, h.king, h.rook)
		}
	}
	return nil
}

type notnilPosition struct {
	pos *chess.Position
}

// newNotnilPosition fills notnil's move cache up front. ValidMoves writes
// that cache on first use, so a position shared between goroutines must
// never be the one to fill it.
func newNotnilPosition(pos *chess.Position) notnilPosition {
	pos.ValidMoves()
	return notnilPosition{pos: pos}
}

func (p notnilPosition) SideToMove() Color {
	return fromNotnilColor(p.pos.Turn())
}

func (p notnilPosition) PieceAt(sq Square) Piece {
	pc := p.pos.Board().Piece(chess.Square(sq))
	if pc == chess.NoPiece {
		return NoPiece
	}
	return Piece{Kind: fromNotnilKind(pc.Type()), Color: fromNotnilColor(pc.Color())}
}

func (p notnilPosition) Status() Status {
	switch p.pos.Status() {
	case chess.Checkmate:
		return Decisive
	case chess.Stalemate:
		return Drawn
	}
	return Ongoing
}

func (p notnilPosition) LegalMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, m := range p.pos.ValidMoves() {
			if !yield(notnilMove{m: m}) {
				return
			}
		}
	}
}

func (p notnilPosition) Apply(m Move) Position {
	nm, ok := m.(notnilMove)
	if !ok {
		panic("rules: notnil position given a foreign move")
	}
	return newNotnilPosition(p.pos.Update(nm.m))
}

func (p notnilPosition) FEN() string {
	return p.pos.String()
}

type notnilMove struct {
	m *chess.Move
}

func (m notnilMove) From() Square         { return Square(m.m.S1()) }
func (m notnilMove) To() Square           { return Square(m.m.S2()) }
func (m notnilMove) Promotion() PieceKind { return fromNotnilKind(m.m.Promo()) }
func (m notnilMove) String() string       { return m.m.String() }

func fromNotnilColor(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	}
	return NoColor
}

func fromNotnilKind(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoKind
}
