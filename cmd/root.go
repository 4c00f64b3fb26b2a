package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/pairs/director"
	"github.com/they4kman/pairs/game"
	"github.com/they4kman/pairs/ui"
)

var gameConfig = game.NewConfig()

var (
	configPath   string
	snapshotPath string
	directorName string
	logLevel     string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Play a game of memory pairs",
	Long: `pairs is a memory game: turn tiles over two at a time and find
every matching pair.

Run with no arguments to play manually
	pairs

Use the director flag to make the computer play for you
	pairs -director memory
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(logLevel, logFile); err != nil {
			return err
		}
		return loadConfig(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if snapshotPath != "" {
			snapshot, err := game.LoadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		options := []game.Option{game.WithGameLogger(logrus.StandardLogger())}
		if directorName != "" {
			player, err := director.New(directorName, gameConfig.Seed)
			if err != nil {
				return err
			}
			options = append(options, game.WithDirector(player))
		}

		g, err := game.New(gameConfig, options...)
		if err != nil {
			return err
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = ui.Run(g, logrus.StandardLogger())
		})
		return runErr
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig overlays the config file onto the defaults, then reapplies any
// flag given explicitly on the command line
func loadConfig(flags *pflag.FlagSet) error {
	if configPath == "" {
		return gameConfig.Validate()
	}

	fromFlags := gameConfig
	if err := game.LoadConfigFile(configPath, &gameConfig); err != nil {
		return err
	}

	overrides := map[string]func(){
		"width":         func() { gameConfig.Width = fromFlags.Width },
		"height":        func() { gameConfig.Height = fromFlags.Height },
		"seed":          func() { gameConfig.Seed = fromFlags.Seed },
		"delay":         func() { gameConfig.FlipDelay = fromFlags.FlipDelay },
		"policy":        func() { gameConfig.Policy = fromFlags.Policy },
		"act-interval":  func() { gameConfig.ActInterval = fromFlags.ActInterval },
		"assets":        func() { gameConfig.AssetsDir = fromFlags.AssetsDir },
		"snapshots-dir": func() { gameConfig.SavedSnapshotsDir = fromFlags.SavedSnapshotsDir },
		"resume":        func() { gameConfig.Resume = fromFlags.Resume },
	}
	flags.Visit(func(flag *pflag.Flag) {
		if override, ok := overrides[flag.Name]; ok {
			override()
		}
	})
	return gameConfig.Validate()
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in tiles")
	flags.IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in tiles")
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for dealing boards (0 picks one from the clock)")
	flags.DurationVar(&gameConfig.FlipDelay, "delay", gameConfig.FlipDelay, "How long a mismatched pair stays face up")
	flags.Var(&gameConfig.Policy, "policy", `What a selection does while a mismatched pair is face up
flush: turn the pair over at once and start the next turn
ignore: drop the selection`)
	flags.DurationVar(&gameConfig.ActInterval, "act-interval", gameConfig.ActInterval, "Time between selections made by a director")
	flags.StringVar(&gameConfig.AssetsDir, "assets", "", "Directory holding cover.png and 0.png..4.png")
	flags.StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where snapshots of finished boards are saved")
	flags.StringVarP(&directorName, "director", "d", "", "Make the computer play (random or memory)")
	flags.StringVar(&configPath, "config", "", "YAML file with game settings")
	flags.StringVar(&logLevel, "log-level", "info", "Log level")
	flags.StringVar(&logFile, "log-file", "", "Also write logs to this file, rotated by size")

	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Deal the first board from a saved snapshot")
	rootCmd.Flags().BoolVar(&gameConfig.Resume, "resume", false, "Continue the snapshot where it left off, rather than dealing its layout face down")
}
