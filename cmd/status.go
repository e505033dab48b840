package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/ui/theme"
	"github.com/abhisek/mathworlds/internal/worldgraph"
)

// runStatus prints the current profile and where it is in the world chain.
func runStatus(cmd *cobra.Command) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		p := s.current()
		printProfile(p)
		fmt.Println()
		if w, ok := worldgraph.NextIncompleteWorld(p); ok {
			fmt.Printf("Current world: %s %s\n",
				theme.Paint(theme.Highlight, w.Title),
				theme.Paint(theme.Hint, "practise "+w.PrimarySkill))
		} else {
			fmt.Println(theme.Paint(theme.Correct, "Every world is complete!"))
		}
		return nil
	})
}
