package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patapal",
	Short: "A wellbeing companion that grows with your days",
	Long: "Patapal keeps your daily tasks, moods, and diary in one local place,\n" +
		"and raises a small companion whose growth reflects how your days go.\n" +
		"Single Go binary, data stays on your device.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
