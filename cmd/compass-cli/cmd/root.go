package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"compass/internal/adapters/sqlite"
	"compass/internal/config"
	"compass/internal/ports"
)

var (
	dataPath string
	store    ports.StateStore
)

var rootCmd = &cobra.Command{
	Use:   "compass-cli",
	Short: "CLI for the compass self-coaching dashboard",
	Long: `compass-cli is a command-line interface for the compass dashboard.

It reads and writes the same state as the TUI: the signal/noise radar,
the goal and its habit anchors, the progress log, the crisis plan, and
the derived mission scores.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		s := sqlite.NewStore()
		if err := s.Open(dataPath); err != nil {
			return err
		}
		store = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", config.DataPath(), "path to the state directory")
}

// GetStore returns the initialized state store
func GetStore() ports.StateStore {
	return store
}
