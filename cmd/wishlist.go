package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/shop"
	"github.com/abhisek/mathworlds/internal/ui/components"
	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist [cosmetic-id]",
	Short: "Show the wishlist, or add/remove a cosmetic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if len(args) == 1 {
				next, on := s.engine.ToggleWishlist(ctx, s.state, args[0])
				if !on && !s.state.InWishlist(args[0]) {
					warn("You already own %s.", args[0])
					return nil
				}
				s.commit(ctx, next)
				if on {
					fmt.Printf("Added %s to the wishlist.\n", args[0])
				} else {
					fmt.Printf("Removed %s from the wishlist.\n", args[0])
				}
				return nil
			}

			if len(s.state.Wishlist) == 0 {
				fmt.Println(theme.Paint(theme.Hint, "The wishlist is empty."))
				return nil
			}
			var items []shop.Item
			for _, id := range s.state.Wishlist {
				found := false
				for _, it := range s.catalog.Items {
					if it.CosmeticID == id {
						items = append(items, it)
						found = true
						break
					}
				}
				if !found {
					items = append(items, shop.Item{ID: id, CosmeticID: id})
				}
			}
			fmt.Print(components.Table(itemRows(items, s.current(), s.state.InWishlist)))
			return nil
		})
	},
}
