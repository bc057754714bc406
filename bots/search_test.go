package bots

import (
	"testing"

	"chessior/rules"
)

// minimax is the unpruned reference search.
func minimax(pos rules.Position, depth int, obj Objective, nodes *uint64) Score {
	if depth == 0 || pos.Status() != rules.Ongoing {
		*nodes++
		return Evaluate(pos)
	}
	best := MinScore
	if obj == Minimize {
		best = MaxScore
	}
	for m := range pos.LegalMoves() {
		value := minimax(pos.Apply(m), depth-1, obj.Flip(), nodes)
		if obj.Better(value, best) {
			best = value
		}
	}
	return best
}

func TestAlphaBetaDepthZero(t *testing.T) {
	for _, r := range engines() {
		for _, fen := range []string{rules.StartFEN, kiwipete, whiteInCheckmate} {
			pos := mustParse(t, r, fen)
			var nodes uint64
			got := AlphaBeta(pos, 0, ObjectiveFor(pos.SideToMove()), MinScore, MaxScore, &nodes)
			if want := Evaluate(pos); got != want {
				t.Errorf("%s: AlphaBeta(%q, 0) = %d, want %d", r.Name(), fen, got, want)
			}
			if nodes != 1 {
				t.Errorf("%s: depth 0 visited %d nodes, want 1", r.Name(), nodes)
			}
		}
	}
}

func TestAlphaBetaTerminalIsLeaf(t *testing.T) {
	for _, r := range engines() {
		pos := mustParse(t, r, blackInStalemate)
		var nodes uint64
		if got := AlphaBeta(pos, 3, Minimize, MinScore, MaxScore, &nodes); got != DrawScore {
			t.Errorf("%s: stalemate searched to %d, want 0", r.Name(), got)
		}
		if nodes != 1 {
			t.Errorf("%s: stalemate visited %d nodes, want 1", r.Name(), nodes)
		}
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	tests := []struct {
		fen      string
		maxDepth int
	}{
		{rules.StartFEN, 3},
		{rookEndgame, 3},
		{pawnRace, 3},
		{whiteMateInOne, 3},
		{blackMateInOne, 3},
		{kiwipete, 2},
		{whiteDownAKnight, 2},
	}
	for _, r := range engines() {
		for _, tt := range tests {
			pos := mustParse(t, r, tt.fen)
			obj := ObjectiveFor(pos.SideToMove())
			for depth := 0; depth <= tt.maxDepth; depth++ {
				var pruned, full uint64
				got := AlphaBeta(pos, depth, obj, MinScore, MaxScore, &pruned)
				want := minimax(pos, depth, obj, &full)
				if got != want {
					t.Errorf("%s: depth %d %q: alpha-beta %d, minimax %d", r.Name(), depth, tt.fen, got, want)
				}
				if pruned > full {
					t.Errorf("%s: depth %d %q: alpha-beta visited %d nodes, minimax %d", r.Name(), depth, tt.fen, pruned, full)
				}
			}
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	pos := mustParse(t, rules.Notnil{}, rules.StartFEN)
	var pruned, full uint64
	AlphaBeta(pos, 3, Maximize, MinScore, MaxScore, &pruned)
	minimax(pos, 3, Maximize, &full)
	if full != 8902 {
		t.Fatalf("minimax leaves = %d, want 8902", full)
	}
	if pruned >= full {
		t.Errorf("alpha-beta visited %d of %d leaves, expected a cutoff", pruned, full)
	}
}

func TestAlphaBetaFindsMate(t *testing.T) {
	for _, r := range engines() {
		pos := mustParse(t, r, whiteMateInOne)
		var nodes uint64
		if got := AlphaBeta(pos, 1, Maximize, MinScore, MaxScore, &nodes); got != MateScore {
			t.Errorf("%s: white mate in one = %d, want %d", r.Name(), got, MateScore)
		}
		pos = mustParse(t, r, blackMateInOne)
		nodes = 0
		if got := AlphaBeta(pos, 1, Minimize, MinScore, MaxScore, &nodes); got != -MateScore {
			t.Errorf("%s: black mate in one = %d, want %d", r.Name(), got, -MateScore)
		}
	}
}

func TestObjective(t *testing.T) {
	if ObjectiveFor(rules.White) != Maximize || ObjectiveFor(rules.Black) != Minimize {
		t.Error("White should maximize and Black minimize")
	}
	if Maximize.Flip() != Minimize || Minimize.Flip() != Maximize {
		t.Error("Flip should swap objectives")
	}
	if !Maximize.Better(1, 0) || Maximize.Better(0, 0) || !Minimize.Better(0, 1) {
		t.Error("Better should be strict")
	}
}
