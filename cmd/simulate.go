package cmd

import (
	"context"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/they4kman/pairs/sim"
)

var simOptions = sim.Options{Director: "memory"}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a director play many boards without a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		if directorName != "" {
			simOptions.Director = directorName
		}
		simOptions.Seed = gameConfig.Seed
		if simOptions.Seed == 0 {
			simOptions.Seed = time.Now().UnixNano()
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		results, err := sim.Run(ctx, gameConfig, simOptions)
		if err != nil {
			return err
		}
		sim.Report(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simOptions.Games, "games", "n", 100, "Number of boards to play")
	simulateCmd.Flags().IntVarP(&simOptions.Parallelism, "parallel", "p", runtime.NumCPU(), "Boards played at once")
	simulateCmd.Flags().IntVar(&simOptions.MaxSteps, "max-steps", 100000, "Give up on a board after this many director steps")
	rootCmd.AddCommand(simulateCmd)
}
