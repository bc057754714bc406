// bot.go
package bots

import "chessior/rules"

// ChessBot is implemented by every bot.
type ChessBot interface {
	BestMove(pos rules.Position) rules.Move
	Name() string
}
