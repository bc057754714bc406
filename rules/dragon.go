package rules

import (
	"fmt"
	"iter"

	dragon "github.com/dylhunn/dragontoothmg"
)

// Dragon adapts the github.com/dylhunn/dragontoothmg bitboard move generator.
type Dragon struct{}

func (Dragon) Name() string { return "dragon" }

// Parse validates fen with notnil's parser first: dragontoothmg has no
// error path and misbehaves on malformed input.
func (Dragon) Parse(fen string) (pos Position, err error) {
	if _, err := parseNotnil(fen); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, &ParseError{FEN: fen, Err: fmt.Errorf("dragontoothmg: %v", r)}
		}
	}()
	return newDragonPosition(dragon.ParseFen(fen)), nil
}

type dragonPosition struct {
	board dragon.Board
	moves []dragon.Move
}

func newDragonPosition(board dragon.Board) *dragonPosition {
	p := &dragonPosition{board: board}
	p.moves = p.board.GenerateLegalMoves()
	return p
}

func (p *dragonPosition) SideToMove() Color {
	if p.board.Wtomove {
		return White
	}
	return Black
}

func (p *dragonPosition) PieceAt(sq Square) Piece {
	bit := uint64(1) << uint(sq)
	switch {
	case p.board.White.All&bit != 0:
		return Piece{Kind: dragonKindAt(&p.board.White, bit), Color: White}
	case p.board.Black.All&bit != 0:
		return Piece{Kind: dragonKindAt(&p.board.Black, bit), Color: Black}
	}
	return NoPiece
}

func dragonKindAt(bb *dragon.Bitboards, bit uint64) PieceKind {
	switch {
	case bb.Pawns&bit != 0:
		return Pawn
	case bb.Knights&bit != 0:
		return Knight
	case bb.Bishops&bit != 0:
		return Bishop
	case bb.Rooks&bit != 0:
		return Rook
	case bb.Queens&bit != 0:
		return Queen
	case bb.Kings&bit != 0:
		return King
	}
	return NoKind
}

func (p *dragonPosition) Status() Status {
	if len(p.moves) > 0 {
		return Ongoing
	}
	board := p.board
	if board.OurKingInCheck() {
		return Decisive
	}
	return Drawn
}

func (p *dragonPosition) LegalMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, m := range p.moves {
			if !yield(&dragonMove{mv: m}) {
				return
			}
		}
	}
}

// Apply plays m on a copy of the board; the receiver keeps its own.
func (p *dragonPosition) Apply(m Move) Position {
	dm, ok := m.(*dragonMove)
	if !ok {
		panic("rules: dragon position given a foreign move")
	}
	next := p.board
	next.Apply(dm.mv)
	return newDragonPosition(next)
}

func (p *dragonPosition) FEN() string {
	board := p.board
	return board.ToFen()
}

type dragonMove struct {
	mv dragon.Move
}

func (m *dragonMove) From() Square   { return Square(m.mv.From()) }
func (m *dragonMove) To() Square     { return Square(m.mv.To()) }
func (m *dragonMove) String() string { return m.mv.String() }

func (m *dragonMove) Promotion() PieceKind {
	switch m.mv.Promote() {
	case dragon.Knight:
		return Knight
	case dragon.Bishop:
		return Bishop
	case dragon.Rook:
		return Rook
	case dragon.Queen:
		return Queen
	}
	return NoKind
}
