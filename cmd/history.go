package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/ui/components"
	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent progression events for the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withSession(cmd, func(ctx context.Context, s *session) error {
			events, err := s.engine.History(ctx, s.state, limit)
			if err != nil {
				return fmt.Errorf("query history: %w", err)
			}
			if len(events) == 0 {
				fmt.Println(theme.Paint(theme.Hint, "No events yet."))
				return nil
			}
			var rows [][]components.Cell
			for _, ev := range events {
				rows = append(rows, []components.Cell{
					components.Styled(fmt.Sprintf("#%d", ev.Sequence), theme.Hint),
					components.Plain(ev.Timestamp.Local().Format("2006-01-02 15:04")),
					components.Styled(ev.Kind, theme.Highlight),
					components.Plain(string(ev.Payload)),
				})
			}
			fmt.Print(components.Table(rows))
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}
