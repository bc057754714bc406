package bots

import "chessior/rules"

// NewbornBot plays the first legal move the generator yields.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(pos rules.Position) rules.Move {
	for m := range pos.LegalMoves() {
		return m
	}
	return nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
