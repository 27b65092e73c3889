package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/li2990555-pixel/patapal11111/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long:  "Deletes the local database: tasks, moods, diary, chat history, and streaks. This cannot be undone.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return fmt.Errorf("resolve db path: %w", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("nothing to reset")
		return nil
	}

	if !resetYes {
		fmt.Printf("This deletes all local data at %s. Continue? [y/N] ", dbPath)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("aborted")
			return nil
		}
	}

	// Remove the database along with its WAL sidecars.
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	fmt.Println("all local data removed")
	return nil
}
