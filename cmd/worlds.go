package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Show the world chain and progress through it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			printWorlds(s.current())
			return nil
		})
	},
}
