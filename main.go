// Command chessior searches a chess position with minimax and alpha-beta
// pruning and prints, plays or benchmarks the chosen moves.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"chessior/bench"
	"chessior/bots"
	"chessior/rules"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	cfg, fs, err := parseFlags(args, getenv, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Error().Err(err).Msg("bad arguments")
		}
		return 1
	}
	if cfg.help {
		fs.Usage()
		return 0
	}
	if cfg.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	r, err := rules.ByName(cfg.rules)
	if err != nil {
		logger.Error().Err(err).Msg("bad arguments")
		return 1
	}

	if cfg.bench {
		if err := runBench(stdout, r, cfg, logger); err != nil {
			logger.Error().Err(err).Msg("bench failed")
			return 1
		}
		return 0
	}

	pos, err := r.Parse(cfg.fen)
	if err != nil {
		fmt.Fprintln(stderr, "Bad FEN:", err)
		return 1
	}

	bot, err := bots.NewMinimaxBot(cfg.depth)
	if err != nil {
		logger.Error().Err(err).Msg("bad arguments")
		return 1
	}
	bot.Logger = logger
	logger.Info().Int("depth", cfg.depth).Str("rules", r.Name()).Msg("search configured")

	switch {
	case cfg.selfplay:
		selfPlay(stdout, pos, bot, maxSelfPlayPlies)
	case cfg.interactive:
		interactive(stdin, stdout, pos, bot)
	default:
		res, err := bot.Search(pos)
		if err != nil {
			logger.Error().Err(err).Msg("search failed")
			return 1
		}
		if res.Move == nil {
			fmt.Fprintln(stdout, "no move found")
			return 0
		}
		fmt.Fprintf(stdout, "Best move: %s\n", res.Move)
	}
	return 0
}

func runBench(w io.Writer, r rules.Rules, cfg config, logger zerolog.Logger) error {
	if cfg.cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	opts := bench.Options{Logger: logger}
	if cfg.benchDB != "" {
		dir := cfg.benchDB
		if dir == "auto" {
			var err error
			if dir, err = bench.DefaultDir(); err != nil {
				return err
			}
		}
		store, err := bench.OpenStore(dir)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Store = store
		logger.Info().Str("dir", dir).Msg("recording bench history")
	}

	reports, err := bench.Run(r, bench.Cases, opts)
	if err != nil {
		return err
	}
	return bench.Write(w, reports)
}
