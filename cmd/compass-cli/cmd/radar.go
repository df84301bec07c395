package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"compass/internal/application/commands"
	"compass/internal/domain"
)

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Read or update the signal/noise self-assessment",
}

var radarShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all radar metrics and the fog band",
	RunE: func(cmd *cobra.Command, args []string) error {
		radar := GetStore().LoadRadar()

		for _, f := range domain.RadarFields {
			value, _ := radar.Get(f)
			fmt.Printf("%-12s %d\n", f, value)
		}
		fmt.Printf("%-12s %s\n", "band", domain.ClassifyFog(radar.Fog))
		return nil
	},
}

var radarSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one radar metric (0-100)",
	Long: `Set one radar metric. Values outside [0,100] are clamped.

Fields: inner, peers, family, media, professors, fog

Examples:
  compass-cli radar set inner 80
  compass-cli radar set fog 25`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("value must be an integer: %s", args[1])
		}

		result, err := commands.NewSetRadarFieldCommand(GetStore(), args[0], value).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(radarCmd)
	radarCmd.AddCommand(radarShowCmd)
	radarCmd.AddCommand(radarSetCmd)
}
