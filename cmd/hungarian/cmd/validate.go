package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/logging"
	"github.com/katalvlaran/hungarian/internal/matrixio"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a file holds solvable cost matrices",
		Long: `Validate loads the input like solve does and checks every matrix: it must
be non-empty, rectangular and free of negative cells. Algorithm and reducer
names in the document are checked too. Nothing is solved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			in, err := matrixio.Load(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if _, _, err := a.pipeline(cmd, in); err != nil {
				return err
			}

			log := logging.FromContext(cmd.Context())
			for i, costs := range in.Problems {
				if err := assignment.Validate(costs); err != nil {
					log.Debug().Int("problem", i).Err(err).Msg("invalid matrix")
					return fmt.Errorf("problem %d: %w", i, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "problem %d: ok (%dx%d)\n", i, len(costs), len(costs[0]))
			}

			return nil
		},
	}
}
