package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/logging"
	"github.com/katalvlaran/hungarian/internal/matrixio"
	"github.com/katalvlaran/hungarian/internal/output"
)

func newSolveCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve the assignment problems in a file",
		Long: `Solve reads a cost matrix, or a batch of them, and prints the optimal
assignment. With no file, or "-", the input is read from stdin.

The input is a bare matrix ([[1, 2], [3, 4]]) or a document with a "costs"
matrix or a "problems" list plus optional "algorithm" and "reducer" keys.
Flags override the document, which overrides config and environment.`,
		Example: `  hungarian solve costs.yaml
  hungarian solve -o json --algorithm munkres-padded costs.json
  echo '[[4, 1], [2, 3]]' | hungarian solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, workers)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "problems solved in parallel for batch input (0 = unlimited)")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, workers int) error {
	log := logging.FromContext(cmd.Context())

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	in, err := matrixio.Load(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	alg, red, err := a.pipeline(cmd, in)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := []assignment.Option{
		assignment.WithAlgorithm(alg),
		assignment.WithReducer(red),
		assignment.WithLogger(log),
	}

	start := time.Now()
	var results []*assignment.Result
	if len(in.Problems) == 1 {
		res, err := assignment.SolveContext(ctx, in.Problems[0], opts...)
		if err != nil {
			return fmt.Errorf("solving: %w", err)
		}
		results = []*assignment.Result{res}
	} else {
		results, err = assignment.SolveAll(ctx, in.Problems, workers, opts...)
		if err != nil {
			return fmt.Errorf("solving batch: %w", err)
		}
	}
	log.Info().
		Int("problems", len(results)).
		Stringer("algorithm", alg).
		Stringer("reducer", red).
		Dur("elapsed", time.Since(start)).
		Msg("solved")

	reports := make([]output.Report, len(results))
	for i, res := range results {
		reports[i] = output.NewReport(in.Problems[i], res, alg, red)
	}

	out := cmd.OutOrStdout()
	return output.NewFormatter(output.DetectFormat(format, out)).Format(out, reports)
}

// pipeline resolves the algorithm and reducer. An explicit flag wins, then
// the input document, then config and environment.
func (a *app) pipeline(cmd *cobra.Command, in *matrixio.Input) (assignment.Algorithm, assignment.Reducer, error) {
	algName := a.setting(cmd, "algorithm", in.Algorithm)
	alg, err := assignment.ParseAlgorithm(algName)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, algName)
	}

	redName := a.setting(cmd, "reducer", in.Reducer)
	red, err := assignment.ParseReducer(redName)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, redName)
	}

	return alg, red, nil
}

func (a *app) setting(cmd *cobra.Command, key, fromInput string) string {
	if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
		return f.Value.String()
	}
	if fromInput != "" {
		return fromInput
	}

	return a.v.GetString(key)
}
