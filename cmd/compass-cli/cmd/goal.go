package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"compass/internal/application/commands"
)

var (
	goalTitle     string
	goalDate      string
	goalCognitive string
	goalPhysical  string
	goalRecovery  string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Read or update the goal and its habit anchors",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the objective and the three anchors",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := GetStore().LoadGoal()

		fmt.Printf("%-12s %s\n", "title", orUnset(goal.Title))
		fmt.Printf("%-12s %s\n", "date", orUnset(goal.Date))
		fmt.Printf("%-12s %s\n", "cognitive", orUnset(goal.CarbCognitive))
		fmt.Printf("%-12s %s\n", "physical", orUnset(goal.CarbPhysical))
		fmt.Printf("%-12s %s\n", "recovery", orUnset(goal.CarbRecovery))
		fmt.Printf("%-12s %d/3\n", "anchors", goal.AnchorCount())
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update goal fields",
	Long: `Update goal fields. Only the flags you pass change; the rest keep
their stored values.

Examples:
  compass-cli goal set --title "Run a marathon" --date "April"
  compass-cli goal set --physical "Morning run"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := GetStore().LoadGoal()

		if cmd.Flags().Changed("title") {
			goal.Title = goalTitle
		}
		if cmd.Flags().Changed("date") {
			goal.Date = goalDate
		}
		if cmd.Flags().Changed("cognitive") {
			goal.CarbCognitive = goalCognitive
		}
		if cmd.Flags().Changed("physical") {
			goal.CarbPhysical = goalPhysical
		}
		if cmd.Flags().Changed("recovery") {
			goal.CarbRecovery = goalRecovery
		}

		result, err := commands.NewSetGoalCommand(GetStore(), goal).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalSetCmd)

	goalSetCmd.Flags().StringVar(&goalTitle, "title", "", "the objective")
	goalSetCmd.Flags().StringVar(&goalDate, "date", "", "target date, free text")
	goalSetCmd.Flags().StringVar(&goalCognitive, "cognitive", "", "cognitive habit anchor")
	goalSetCmd.Flags().StringVar(&goalPhysical, "physical", "", "physical habit anchor")
	goalSetCmd.Flags().StringVar(&goalRecovery, "recovery", "", "recovery habit anchor")
}
