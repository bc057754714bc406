package bots

import (
	"strings"
	"testing"
	"unicode"

	"chessior/rules"
)

var (
	whiteInCheckmate = "rnb1kbnr/pppp1ppp/4p3/8/5PPq/8/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	whiteInStalemate = "2k5/8/8/8/8/1q6/r7/2K5 w - - 0 1"
	blackInCheckmate = "rnbqkbnr/ppppp2p/8/5ppQ/4PP2/8/PPPP2PP/RNB1KBNR b KQkq - 1 3"
	blackInStalemate = "3k4/7R/2Q5/8/8/8/8/3K4 b - - 0 1"

	whiteDownAPawn   = "rnbqkbnr/ppp1pppp/8/8/4pP2/8/PPPP2PP/RNBQKBNR w KQkq - 0 3"
	whiteDownAKnight = "rnbqkbnr/pppp1ppp/8/8/8/3PPp2/PPP2PPP/RNBQKB1R w KQkq - 0 4"
	blackDownARook   = "rnbqkbn1/ppppppp1/6R1/7p/7P/8/PPPPPPP1/RNBQKBN1 b Qq - 0 4"
	blackDownAQueen  = "rnb1kbnr/pppp1ppp/5Q2/4p3/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 0 3"

	whiteMateInOne = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	blackMateInOne = "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1"
	kiwipete       = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	rookEndgame    = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pawnRace       = "4k3/1p6/8/8/8/8/6P1/4K3 w - - 0 1"
)

func engines() []rules.Rules {
	return []rules.Rules{rules.Notnil{}, rules.Dragon{}}
}

func mustParse(t *testing.T, r rules.Rules, fen string) rules.Position {
	t.Helper()
	pos, err := r.Parse(fen)
	if err != nil {
		t.Fatalf("%s: parse %q: %v", r.Name(), fen, err)
	}
	return pos
}

// mirrorFEN flips the board across the horizontal axis and swaps colors.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		var upper, lower strings.Builder
		for _, c := range swapCase(fields[2]) {
			if unicode.IsUpper(c) {
				upper.WriteRune(c)
			} else {
				lower.WriteRune(c)
			}
		}
		fields[2] = upper.String() + lower.String()
	}

	if fields[3] != "-" {
		rank := byte('1' + '8' - fields[3][1])
		fields[3] = string([]byte{fields[3][0], rank})
	}
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func TestMirrorFEN(t *testing.T) {
	got := mirrorFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	want := "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1"
	if got != want {
		t.Errorf("mirrorFEN = %q, want %q", got, want)
	}
}

func TestEvaluateTerminal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Score
	}{
		{"white mated", whiteInCheckmate, -MateScore},
		{"black mated", blackInCheckmate, MateScore},
		{"white stalemated", whiteInStalemate, DrawScore},
		{"black stalemated", blackInStalemate, DrawScore},
	}
	for _, r := range engines() {
		for _, tt := range tests {
			t.Run(r.Name()+"/"+tt.name, func(t *testing.T) {
				if got := Evaluate(mustParse(t, r, tt.fen)); got != tt.want {
					t.Errorf("Evaluate = %d, want %d", got, tt.want)
				}
			})
		}
	}
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	for _, r := range engines() {
		if got := Evaluate(mustParse(t, r, rules.StartFEN)); got != 0 {
			t.Errorf("%s: start position = %d, want 0", r.Name(), got)
		}
	}
}

func TestEvaluateMaterial(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		positive bool
	}{
		{"white down a pawn", whiteDownAPawn, false},
		{"white down a knight", whiteDownAKnight, false},
		{"black down a rook", blackDownARook, true},
		{"black down a queen", blackDownAQueen, true},
	}
	for _, r := range engines() {
		for _, tt := range tests {
			got := Evaluate(mustParse(t, r, tt.fen))
			if (got > 0) != tt.positive {
				t.Errorf("%s: %s = %d, want positive=%v", r.Name(), tt.name, got, tt.positive)
			}
		}
	}
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	fens := []string{
		rules.StartFEN,
		whiteDownAPawn,
		whiteDownAKnight,
		blackDownARook,
		blackDownAQueen,
		kiwipete,
		rookEndgame,
		pawnRace,
		whiteMateInOne,
		whiteInCheckmate,
		blackInStalemate,
	}
	for _, r := range engines() {
		for _, fen := range fens {
			pos := mustParse(t, r, fen)
			mirrored := mustParse(t, r, mirrorFEN(fen))
			if a, b := Evaluate(pos), Evaluate(mirrored); a != -b {
				t.Errorf("%s: Evaluate(%q) = %d, mirrored = %d", r.Name(), fen, a, b)
			}
		}
	}
}

func TestPieceScore(t *testing.T) {
	e4 := rules.NewSquare(4, 3)
	e5 := rules.NewSquare(4, 4)
	white := pieceScore(rules.Piece{Kind: rules.Pawn, Color: rules.White}, e4)
	black := pieceScore(rules.Piece{Kind: rules.Pawn, Color: rules.Black}, e5)
	if white != 120 {
		t.Errorf("white pawn on e4 = %d, want 120", white)
	}
	if black != -white {
		t.Errorf("black pawn on e5 = %d, want %d", black, -white)
	}
	if got := pieceScore(rules.NoPiece, e4); got != 0 {
		t.Errorf("empty square = %d", got)
	}
}

func TestPieceValues(t *testing.T) {
	want := map[rules.PieceKind]Score{
		rules.Pawn:   100,
		rules.Knight: 320,
		rules.Bishop: 330,
		rules.Rook:   500,
		rules.Queen:  900,
		rules.King:   0,
	}
	for kind, v := range want {
		if pieceValue[kind] != v {
			t.Errorf("value of kind %d = %d, want %d", kind, pieceValue[kind], v)
		}
	}
}

func TestEvaluatorsAgree(t *testing.T) {
	pos := mustParse(t, rules.Notnil{}, kiwipete)
	other := mustParse(t, rules.Dragon{}, kiwipete)
	var e Evaluator = PieceSquareEvaluator{}
	if a, b := e.Evaluate(pos), e.Evaluate(other); a != b {
		t.Errorf("notnil = %d, dragon = %d", a, b)
	}
}
