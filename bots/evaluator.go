package bots

import (
	"math"

	"chessior/rules"
)

// Score is a static or searched evaluation in centipawns. Positive values
// favour White, negative values favour Black.
type Score int

const (
	// MateScore is the magnitude of a checkmate.
	MateScore Score = 20000
	DrawScore Score = 0

	// MinScore and MaxScore stand in for minus and plus infinity.
	MinScore Score = math.MinInt
	MaxScore Score = math.MaxInt
)

// Evaluator scores a position without searching.
type Evaluator interface {
	Evaluate(pos rules.Position) Score
}

// PieceSquareEvaluator sums material and piece-square bonuses.
type PieceSquareEvaluator struct{}

func (PieceSquareEvaluator) Evaluate(pos rules.Position) Score {
	return Evaluate(pos)
}

// Evaluate returns the static score of pos. A checkmated side to move
// loses MateScore; stalemate and other draws score zero.
func Evaluate(pos rules.Position) Score {
	switch pos.Status() {
	case rules.Decisive:
		if pos.SideToMove() == rules.White {
			return -MateScore
		}
		return MateScore
	case rules.Drawn:
		return DrawScore
	}
	return materialScore(pos)
}

func materialScore(pos rules.Position) Score {
	var score Score
	for sq := rules.Square(0); sq < rules.NumSquares; sq++ {
		score += pieceScore(pos.PieceAt(sq), sq)
	}
	return score
}

// pieceScore is the signed contribution of one occupied square. Tables are
// laid out from White's side with a8 first, so White reads them mirrored.
func pieceScore(p rules.Piece, sq rules.Square) Score {
	switch p.Color {
	case rules.White:
		return pieceValue[p.Kind] + pieceSquare[p.Kind][sq.Mirror()]
	case rules.Black:
		return -(pieceValue[p.Kind] + pieceSquare[p.Kind][sq])
	}
	return 0
}

// pieceValue is the material value of each piece kind. Kings are always on
// the board for both sides and cancel out.
var pieceValue = [...]Score{
	rules.NoKind: 0,
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   0,
}

var pieceSquare = [...][rules.NumSquares]Score{
	rules.NoKind: {},
	rules.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	rules.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	rules.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	rules.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	rules.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	rules.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}
