package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"compass/internal/application/commands"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Compute the derived mastery/impact scores",
	Long: `Compute the derived mission scores from the current state: mastery (X)
from the radar, impact (Y) from the goal and the log, plus the fog band
and the authorization signal. Nothing is stored; scores are recomputed
on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewMissionReportCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(report.Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(missionCmd)
}
