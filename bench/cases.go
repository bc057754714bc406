// Package bench times move selection over a fixed table of positions and
// keeps a history of node counts so drift between runs can be spotted.
package bench

import "chessior/rules"

// Case is one benchmark position searched to Depth.
type Case struct {
	Name  string
	FEN   string
	Depth int
}

// King and queen swapped on both sides, with White's e-pawn missing. The
// kings are off e1/e8, so neither side may castle.
const swappedFEN = "rnbkqbnr/pppppppp/8/8/8/8/PPPP1PPP/RNBKQBNR w - - 0 1"

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	mateFEN     = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
)

// Cases is the default benchmark table.
var Cases = []Case{
	{Name: "start", FEN: rules.StartFEN, Depth: 1},
	{Name: "start", FEN: rules.StartFEN, Depth: 2},
	{Name: "start", FEN: rules.StartFEN, Depth: 3},
	{Name: "swapped", FEN: swappedFEN, Depth: 2},
	{Name: "kiwipete", FEN: kiwipeteFEN, Depth: 1},
	{Name: "kiwipete", FEN: kiwipeteFEN, Depth: 2},
	{Name: "endgame", FEN: endgameFEN, Depth: 3},
	{Name: "endgame", FEN: endgameFEN, Depth: 4},
	{Name: "mate-in-one", FEN: mateFEN, Depth: 3},
}
