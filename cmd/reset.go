package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profiles and progress",
	Long:  "Delete the saved state and its snapshots. The progression ledger is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("reset deletes every profile; re-run with --yes to confirm")
		}
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if err := s.saves.Reset(ctx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Println("All progress deleted.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
