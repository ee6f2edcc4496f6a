package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pomo/internal/motivate"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Print a random productivity tip",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("💡 %s\n", motivate.Tip())
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
}
