package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"chessior/bots"
	"chessior/rules"
)

// Report is the measured outcome of one case.
type Report struct {
	Name    string
	FEN     string
	Depth   int
	Move    string
	Score   bots.Score
	Nodes   uint64
	Elapsed time.Duration
	// Drift is set when the stored node count for this case differs.
	Drift bool
}

type Options struct {
	// Store, if set, is compared against and updated with each report.
	Store  *Store
	Logger zerolog.Logger
}

// Run searches every case with r and returns one report per parsed case.
// Cases whose FEN does not parse are logged and skipped.
func Run(r rules.Rules, cases []Case, opts Options) ([]Report, error) {
	log := opts.Logger
	reports := make([]Report, 0, len(cases))

	for _, c := range cases {
		pos, err := r.Parse(c.FEN)
		if err != nil {
			log.Warn().Err(err).Str("case", c.Name).Msg("skipping bench case")
			continue
		}

		start := time.Now()
		res, err := bots.SelectMove(pos, c.Depth)
		elapsed := time.Since(start)
		if err != nil {
			return reports, fmt.Errorf("bench case %s: %w", c.Name, err)
		}

		rep := Report{
			Name:    c.Name,
			FEN:     c.FEN,
			Depth:   c.Depth,
			Move:    "-",
			Score:   res.Score,
			Nodes:   res.Nodes,
			Elapsed: elapsed,
		}
		if res.Move != nil {
			rep.Move = res.Move.String()
		}

		if opts.Store != nil {
			if err := record(opts.Store, r.Name(), &rep, log); err != nil {
				return reports, err
			}
		}

		log.Debug().
			Str("case", c.Name).
			Int("depth", c.Depth).
			Uint64("nodes", rep.Nodes).
			Dur("elapsed", elapsed).
			Msg("bench case done")
		reports = append(reports, rep)
	}
	return reports, nil
}

func record(store *Store, rulesName string, rep *Report, log zerolog.Logger) error {
	prev, ok, err := store.Get(rulesName, rep.Name, rep.Depth)
	if err != nil {
		return fmt.Errorf("read bench history: %w", err)
	}
	if ok && prev.Nodes != rep.Nodes {
		rep.Drift = true
		log.Warn().
			Str("case", rep.Name).
			Int("depth", rep.Depth).
			Uint64("was", prev.Nodes).
			Uint64("now", rep.Nodes).
			Msg("node count changed since last run")
	}
	err = store.Put(rulesName, rep.Name, rep.Depth, Record{
		Nodes:    rep.Nodes,
		Move:     rep.Move,
		Score:    int(rep.Score),
		Elapsed:  rep.Elapsed,
		Recorded: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("write bench history: %w", err)
	}
	return nil
}

// Write prints reports as an aligned table.
func Write(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tdepth\tnodes\tduration\tmove\tscore\t")
	for _, r := range reports {
		drift := ""
		if r.Drift {
			drift = "drift"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\t%s\n",
			r.Name, r.Depth, r.Nodes, r.Elapsed.Round(time.Millisecond), r.Move, r.Score, drift)
	}
	return tw.Flush()
}
