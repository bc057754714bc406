package bots

import (
	"lukechampine.com/frand"

	"chessior/rules"
)

type RandomBot struct{}

func NewRandomBot() *RandomBot {
	return &RandomBot{}
}

func (b *RandomBot) BestMove(pos rules.Position) rules.Move {
	var moves []rules.Move
	for m := range pos.LegalMoves() {
		moves = append(moves, m)
	}
	if len(moves) == 0 {
		return nil
	}
	return moves[frand.Intn(len(moves))]
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
