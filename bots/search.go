package bots

import "chessior/rules"

// Objective says whether the side searching wants the largest or the
// smallest score. White maximizes and Black minimizes.
type Objective int8

const (
	Maximize Objective = iota
	Minimize
)

// ObjectiveFor returns the objective of the side to move c.
func ObjectiveFor(c rules.Color) Objective {
	if c == rules.Black {
		return Minimize
	}
	return Maximize
}

func (o Objective) Flip() Objective {
	if o == Maximize {
		return Minimize
	}
	return Maximize
}

// Better reports whether a is strictly preferable to b under o.
func (o Objective) Better(a, b Score) bool {
	if o == Maximize {
		return a > b
	}
	return a < b
}

func (o Objective) String() string {
	if o == Maximize {
		return "max"
	}
	return "min"
}

// AlphaBeta is a fail-hard minimax search with alpha-beta pruning using the
// package evaluator. nodes is incremented once per leaf visited.
func AlphaBeta(pos rules.Position, depth int, obj Objective, alpha, beta Score, nodes *uint64) Score {
	return alphaBeta(PieceSquareEvaluator{}, pos, depth, obj, alpha, beta, nodes)
}

func alphaBeta(eval Evaluator, pos rules.Position, depth int, obj Objective, alpha, beta Score, nodes *uint64) Score {
	if depth == 0 || pos.Status() != rules.Ongoing {
		*nodes++
		return eval.Evaluate(pos)
	}

	if obj == Maximize {
		best := MinScore
		for m := range pos.LegalMoves() {
			value := alphaBeta(eval, pos.Apply(m), depth-1, Minimize, alpha, beta, nodes)
			best = max(best, value)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := MaxScore
	for m := range pos.LegalMoves() {
		value := alphaBeta(eval, pos.Apply(m), depth-1, Maximize, alpha, beta, nodes)
		best = min(best, value)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}
