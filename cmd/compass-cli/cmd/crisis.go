package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"compass/internal/application/commands"
)

var (
	crisisPerson  string
	crisisBooster string
)

var crisisCmd = &cobra.Command{
	Use:   "crisis",
	Short: "Read or update the emergency support plan",
}

var crisisShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the support person and the booster",
	RunE: func(cmd *cobra.Command, args []string) error {
		crisis := GetStore().LoadCrisis()

		fmt.Printf("%-8s %s\n", "call", orUnset(crisis.SupportPerson))
		fmt.Printf("%-8s %s\n", "booster", orUnset(crisis.Booster))
		return nil
	},
}

var crisisSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update crisis fields",
	Long: `Update crisis fields. Only the flags you pass change.

Examples:
  compass-cli crisis set --person "Ana (+34 600 000 000)"
  compass-cli crisis set --booster "Breathe, then walk around the block"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		crisis := GetStore().LoadCrisis()

		if cmd.Flags().Changed("person") {
			crisis.SupportPerson = crisisPerson
		}
		if cmd.Flags().Changed("booster") {
			crisis.Booster = crisisBooster
		}

		result, err := commands.NewSetCrisisCommand(GetStore(), crisis).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crisisCmd)
	crisisCmd.AddCommand(crisisShowCmd)
	crisisCmd.AddCommand(crisisSetCmd)

	crisisSetCmd.Flags().StringVar(&crisisPerson, "person", "", "who to call first")
	crisisSetCmd.Flags().StringVar(&crisisBooster, "booster", "", "what picks you back up")
}
