package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"compass/internal/application/commands"
	"compass/internal/domain"
)

var logClearYes bool

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the daily progress log",
}

var logAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a progress entry dated today",
	Long: `Append a progress entry dated today. Whitespace-only text is ignored.

Examples:
  compass-cli log add "Ran 5k"
  compass-cli log add "Finished chapter draft"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAppendLogCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := GetStore().LoadLogs()
		if len(entries) == 0 {
			fmt.Println("No entries logged.")
			return nil
		}

		for _, e := range domain.NewestFirst(entries) {
			fmt.Printf("%-8s %s\n", e.Date, e.Domain)
		}
		return nil
	},
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry (irreversible)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !logClearYes {
			count := len(GetStore().LoadLogs())
			fmt.Printf("Delete all %d entries? This cannot be undone. [y/N] ", count)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := commands.NewClearLogsCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logClearCmd)

	logClearCmd.Flags().BoolVarP(&logClearYes, "yes", "y", false, "skip the confirmation prompt")
}
