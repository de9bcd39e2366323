package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/koenigsberg/checkpoint"
	"github.com/katalvlaran/koenigsberg/mapfile"
	"github.com/katalvlaran/koenigsberg/mapping"
	"github.com/katalvlaran/koenigsberg/report"
	"github.com/katalvlaran/koenigsberg/solver"
)

const version = "1.0.0"

var (
	graphPath        string
	mapPath          string
	checkpointPath   string
	checkpointLength int
	minSaveInterval  time.Duration
	abandonedEvery   int
	verbosity        int

	rootCmd = &cobra.Command{
		Use:   "koenigsberg",
		Short: "Exhaustively enumerate trails crossing every path of a map exactly once",
		Long: `koenigsberg walks an undirected multigraph and reports every trail that
crosses each of its paths exactly once, the generalized form of the
Seven Bridges of Königsberg puzzle. Long searches can checkpoint their
progress and resume where they left off.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&graphPath, "graph", "g", os.Getenv("KOENIGSBERG_GRAPH"),
		"adjacency file describing the map (.graph/.json/.yaml/.hcl)")
	flags.StringVarP(&mapPath, "map", "m", os.Getenv("KOENIGSBERG_MAP"),
		"two-mapping file describing the map (.map/.json/.yaml/.hcl)")
	flags.StringVar(&checkpointPath, "checkpoint", os.Getenv("KOENIGSBERG_CHECKPOINT"),
		"file to periodically save progress to, and resume from")
	flags.IntVarP(&checkpointLength, "checkpoint-length", "c", solver.DefaultCheckpointInterval,
		"trail-length multiple that triggers a checkpoint save")
	flags.DurationVarP(&minSaveInterval, "min-save-interval", "n", solver.DefaultMinSaveInterval,
		"minimum time between unforced checkpoint writes")
	flags.IntVarP(&abandonedEvery, "abandoned-report-interval", "a", solver.DefaultAbandonedReportInterval,
		"trail-length multiple reported at verbosity 3")
	flags.CountVarP(&verbosity, "verbose", "v",
		"increase verbosity; repeat up to -vvvv")
	rootCmd.MarkFlagsMutuallyExclusive("graph", "map")
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Exactly one input file.
	if (graphPath == "") == (mapPath == "") {
		return &exitError{exitBadInput, errors.New("exactly one of --graph or --map is required")}
	}

	// 2. Read and validate the map.
	m, err := loadMap()
	if err != nil {
		return err
	}

	rep := report.NewConsole(m)

	opts := []solver.Option{
		solver.WithReporter(rep),
		solver.WithVerbosity(clampVerbosity(verbosity)),
		solver.WithCheckpointInterval(checkpointLength),
		solver.WithAbandonedReportInterval(abandonedEvery),
	}

	// 3. Wire checkpointing and resume if a destination was given.
	if checkpointPath != "" {
		mgr := checkpoint.NewManager(checkpointPath, minSaveInterval)
		opts = append(opts, solver.WithCheckpointer(mgr))

		snap, err := mgr.Load(checkpointLength)
		switch {
		case err == nil:
			fmt.Printf("Resuming: %d solution(s), %d abandoned so far, %s elapsed\n",
				len(snap.Solutions), snap.Abandoned, snap.Elapsed.Round(time.Second))
			opts = append(opts, solver.WithResume(snap))
		case errors.Is(err, checkpoint.ErrNoCheckpoint):
			// First run; nothing to resume.
		case errors.Is(err, checkpoint.ErrCorrupt), errors.Is(err, checkpoint.ErrIntervalMismatch):
			fmt.Fprintf(os.Stderr, "Warning: ignoring checkpoint: %v\n", err)
		default:
			return &exitError{exitBadInput, err}
		}
	}

	// 4. SIGINT cancels the search; progress is saved before exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts = append(opts, solver.WithContext(ctx))

	s, err := solver.New(m, opts...)
	if err != nil {
		return &exitError{exitBadInput, err}
	}

	// 5. Search from every node.
	err = s.SolveAll()
	if err != nil && !errors.Is(err, context.Canceled) {
		return &exitError{exitBadInput, err}
	}

	// 6. Final forced save, interrupted or not.
	if saveErr := s.Checkpoint(true); saveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: final checkpoint save failed: %v\n", saveErr)
	}

	if err != nil {
		fmt.Println("Interrupted! Progress saved.")

		return nil
	}

	res := s.Result()
	if len(res.Solutions) == 0 {
		fmt.Println("No solutions found!")
	}
	fmt.Printf("All paths examined! %d solution(s), %d trail(s) abandoned, %s elapsed.\n",
		len(res.Solutions), res.Abandoned, res.Elapsed.Round(time.Millisecond))

	return nil
}

// loadMap reads the input file named by --graph or --map and normalizes it.
// Read and decode failures are input errors; structural failures are
// validation errors.
func loadMap() (*mapping.Normalized, error) {
	var (
		paths map[string][]string
		nodes map[string][]string
		err   error
	)
	if graphPath != "" {
		var graph map[string][]string
		graph, err = mapfile.ReadGraph(graphPath)
		if err != nil {
			return nil, &exitError{exitBadInput, err}
		}
		paths, nodes, err = mapping.FromAdjacency(graph)
		if err != nil {
			return nil, &exitError{exitValidation, err}
		}
	} else {
		paths, nodes, err = mapfile.ReadMap(mapPath)
		if err != nil {
			return nil, &exitError{exitBadInput, err}
		}
	}

	m, err := mapping.Normalize(paths, nodes)
	if err != nil {
		return nil, &exitError{exitValidation, err}
	}

	return m, nil
}

func clampVerbosity(v int) solver.Verbosity {
	if v > int(solver.VerbosityAllAbandoned) {
		v = int(solver.VerbosityAllAbandoned)
	}

	return solver.Verbosity(v)
}
