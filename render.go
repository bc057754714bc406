package main

import (
	"strings"

	"chessior/rules"
)

var glyphs = map[rules.Piece]string{
	{Kind: rules.King, Color: rules.White}:   "♔",
	{Kind: rules.Queen, Color: rules.White}:  "♕",
	{Kind: rules.Rook, Color: rules.White}:   "♖",
	{Kind: rules.Bishop, Color: rules.White}: "♗",
	{Kind: rules.Knight, Color: rules.White}: "♘",
	{Kind: rules.Pawn, Color: rules.White}:   "♙",
	{Kind: rules.King, Color: rules.Black}:   "♚",
	{Kind: rules.Queen, Color: rules.Black}:  "♛",
	{Kind: rules.Rook, Color: rules.Black}:   "♜",
	{Kind: rules.Bishop, Color: rules.Black}: "♝",
	{Kind: rules.Knight, Color: rules.Black}: "♞",
	{Kind: rules.Pawn, Color: rules.Black}:   "♟",
}

// renderBoard draws pos with rank 8 at the top.
func renderBoard(pos rules.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			b.WriteByte(' ')
			p := pos.PieceAt(rules.NewSquare(file, rank))
			if g, ok := glyphs[p]; ok {
				b.WriteString(g)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}
