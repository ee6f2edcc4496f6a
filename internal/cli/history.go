package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pomo/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently completed work sessions",
	Long: `List completed work sessions from the history log in chronological
order. Use --limit to control how many of the most recent entries are
shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if History == nil {
			return fmt.Errorf("history log not initialized")
		}

		records, err := History.Read(storage.HistoryFilter{Limit: historyLimit})
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No completed sessions yet. Start one with 'pomo start'.")
			return nil
		}

		fmt.Printf("  %-20s %-6s %s\n", "COMPLETED", "KIND", "TASK")
		fmt.Printf("  %-20s %-6s %s\n", "---------", "----", "----")
		for _, rec := range records {
			fmt.Printf("  %-20s %-6s %s\n",
				rec.CompletedAt.Local().Format("2006-01-02 15:04"), rec.Kind, rec.Task)
		}
		fmt.Printf("\n  %d session(s) shown from %s\n", len(records), History.Path())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to show")
	rootCmd.AddCommand(historyCmd)
}
