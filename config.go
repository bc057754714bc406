package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"chessior/bots"
	"chessior/rules"
)

const defaultDepth = 7

type config struct {
	fen         string
	depth       int
	interactive bool
	selfplay    bool
	bench       bool
	help        bool
	rules       string
	benchDB     string
	cpuprofile  bool
	verbose     bool
}

// parseFlags reads the command line. Flags fall back to CHESSIOR_*
// environment variables, then to built-in defaults.
func parseFlags(args []string, getenv func(string) string, stderr io.Writer) (config, *flag.FlagSet, error) {
	var c config
	fs := flag.NewFlagSet("chessior", flag.ContinueOnError)
	fs.SetOutput(stderr)

	depth := defaultDepth
	if v := getenv("CHESSIOR_DEPTH"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return c, fs, fmt.Errorf("CHESSIOR_DEPTH: %w", err)
		}
		depth = d
	}
	fen := getenvOr(getenv, "CHESSIOR_FEN", rules.StartFEN)
	rulesName := getenvOr(getenv, "CHESSIOR_RULES", "notnil")
	benchDB := getenv("CHESSIOR_BENCH_DB")

	fs.StringVar(&c.fen, "fen", fen, "the state of the game as FEN")
	fs.StringVar(&c.fen, "f", fen, "shorthand for -fen")
	fs.IntVar(&c.depth, "depth", depth, "depth of the tree search")
	fs.IntVar(&c.depth, "d", depth, "shorthand for -depth")
	fs.BoolVar(&c.interactive, "interactive", false, "play against the engine")
	fs.BoolVar(&c.interactive, "i", false, "shorthand for -interactive")
	fs.BoolVar(&c.selfplay, "selfplay", false, "let the engine play both sides")
	fs.BoolVar(&c.selfplay, "s", false, "shorthand for -selfplay")
	fs.BoolVar(&c.bench, "bench", false, "run benchmarks")
	fs.BoolVar(&c.bench, "b", false, "shorthand for -bench")
	fs.BoolVar(&c.help, "help", false, "show this help message")
	fs.BoolVar(&c.help, "h", false, "shorthand for -help")
	fs.StringVar(&c.rules, "rules", rulesName, fmt.Sprintf("rules engine %v", rules.Names()))
	fs.StringVar(&c.benchDB, "bench-db", benchDB, `bench history directory ("auto" for the user data dir, empty to disable)`)
	fs.BoolVar(&c.cpuprofile, "cpuprofile", false, "write a CPU profile of the bench run")
	fs.BoolVar(&c.verbose, "verbose", false, "log every root candidate")
	fs.BoolVar(&c.verbose, "v", false, "shorthand for -verbose")

	if err := fs.Parse(args); err != nil {
		return c, fs, err
	}
	if fs.NArg() > 0 {
		return c, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if c.help {
		return c, fs, nil
	}
	if c.depth < 0 || c.depth > bots.MaxDepth {
		return c, fs, fmt.Errorf("%w: %d (want 0..%d)", bots.ErrInvalidDepth, c.depth, bots.MaxDepth)
	}
	return c, fs, nil
}

func getenvOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
