package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var equipCmd = &cobra.Command{
	Use:   "equip [cosmetic-id]",
	Short: "Wear an owned cosmetic, or list owned cosmetics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			p := s.current()
			if len(args) == 0 {
				fmt.Printf("Wearing %s\nOwned: %s\n",
					theme.Paint(theme.Highlight, p.EquippedCosmetic),
					strings.Join(p.OwnedCosmetics, ", "))
				return nil
			}
			next, ok := s.engine.Equip(ctx, s.state, args[0])
			if !ok {
				return fmt.Errorf("you don't own %q", args[0])
			}
			s.commit(ctx, next)
			fmt.Printf("Now wearing %s.\n", theme.Paint(theme.Highlight, args[0]))
			return nil
		})
	},
}
