package bots

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"chessior/rules"
)

// MaxDepth bounds the depth accepted by SelectMove. Cost grows
// exponentially and nothing interrupts a running search.
const MaxDepth = 12

var ErrInvalidDepth = errors.New("invalid search depth")

// Result is the outcome of a root search. Move is nil when the position has
// no legal moves.
type Result struct {
	Move  rules.Move
	Score Score
	Nodes uint64
}

// SelectMove searches every legal move of pos and returns the best one for
// the side to move. Each child is searched depth plies deep.
func SelectMove(pos rules.Position, depth int) (Result, error) {
	return selectMove(PieceSquareEvaluator{}, zerolog.Nop(), pos, depth)
}

func selectMove(eval Evaluator, logger zerolog.Logger, pos rules.Position, depth int) (Result, error) {
	if depth < 0 || depth > MaxDepth {
		return Result{}, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidDepth, depth, MaxDepth)
	}

	root := ObjectiveFor(pos.SideToMove())

	var res Result
	for m := range pos.LegalMoves() {
		value := alphaBeta(eval, pos.Apply(m), depth, root.Flip(), MinScore, MaxScore, &res.Nodes)
		logger.Debug().
			Str("move", m.String()).
			Int("score", int(value)).
			Uint64("nodes", res.Nodes).
			Msg("root candidate")
		if res.Move == nil || root.Better(value, res.Score) {
			res.Move, res.Score = m, value
		}
	}
	return res, nil
}

// MinimaxBot picks moves with SelectMove.
type MinimaxBot struct {
	Depth     int
	Evaluator Evaluator
	Logger    zerolog.Logger
}

func NewMinimaxBot(depth int) (*MinimaxBot, error) {
	if depth < 0 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidDepth, depth, MaxDepth)
	}
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: PieceSquareEvaluator{},
		Logger:    zerolog.Nop(),
	}, nil
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

// Search runs the root search with the bot's evaluator and logger.
func (b *MinimaxBot) Search(pos rules.Position) (Result, error) {
	eval := b.Evaluator
	if eval == nil {
		eval = PieceSquareEvaluator{}
	}
	res, err := selectMove(eval, b.Logger, pos, b.Depth)
	if err != nil {
		return res, err
	}
	if res.Move == nil {
		b.Logger.Info().Str("fen", pos.FEN()).Msg("no legal move")
		return res, nil
	}
	b.Logger.Info().
		Str("move", res.Move.String()).
		Int("score", int(res.Score)).
		Uint64("nodes", res.Nodes).
		Int("depth", b.Depth).
		Msg("best move")
	return res, nil
}

func (b *MinimaxBot) BestMove(pos rules.Position) rules.Move {
	if pos == nil {
		return nil
	}
	res, err := b.Search(pos)
	if err != nil {
		b.Logger.Error().Err(err).Msg("search failed")
		return nil
	}
	return res.Move
}
