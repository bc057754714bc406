package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chessior/bots"
	"chessior/rules"
)

// maxSelfPlayPlies stops self-play games the rules engines cannot end:
// neither adapter tracks repetition or the fifty-move rule.
const maxSelfPlayPlies = 500

func result(pos rules.Position) string {
	switch pos.Status() {
	case rules.Decisive:
		return pos.SideToMove().Other().String() + " wins"
	case rules.Drawn:
		return "Draw"
	}
	return "unfinished"
}

// aiTurn plays the bot's move and prints the new board. It reports false
// when the bot found no move.
func aiTurn(w io.Writer, pos rules.Position, bot bots.ChessBot) (rules.Position, bool) {
	m := bot.BestMove(pos)
	if m == nil {
		fmt.Fprintln(w, "No move found")
		return pos, false
	}
	fmt.Fprintf(w, "%s plays %s\n", pos.SideToMove(), m)
	pos = pos.Apply(m)
	fmt.Fprintln(w, "--------------------")
	fmt.Fprint(w, renderBoard(pos))
	return pos, true
}

func selfPlay(w io.Writer, pos rules.Position, bot bots.ChessBot, maxPlies int) rules.Position {
	for ply := 0; ply < maxPlies && pos.Status() == rules.Ongoing; ply++ {
		next, ok := aiTurn(w, pos, bot)
		if !ok {
			break
		}
		pos = next
	}
	fmt.Fprintln(w, "Game over:", result(pos))
	return pos
}

// interactive alternates bot moves with moves read from in, starting with
// the bot. It returns at the end of the game, on "quit" or at end of input.
func interactive(in io.Reader, w io.Writer, pos rules.Position, bot bots.ChessBot) rules.Position {
	scanner := bufio.NewScanner(in)
	botTurn := true
	for pos.Status() == rules.Ongoing {
		if botTurn {
			next, ok := aiTurn(w, pos, bot)
			if !ok {
				return pos
			}
			pos = next
			botTurn = false
			continue
		}

		fmt.Fprint(w, "Your turn: ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return pos
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "quit" {
			return pos
		}
		m, ok := rules.FindMove(pos, text)
		if !ok {
			fmt.Fprintf(w, "Illegal move %q, use coordinates like e2e4\n", text)
			continue
		}
		pos = pos.Apply(m)
		fmt.Fprint(w, renderBoard(pos))
		botTurn = true
	}
	fmt.Fprintln(w, "Game over:", result(pos))
	return pos
}
