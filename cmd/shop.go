package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/shop"
	"github.com/abhisek/mathworlds/internal/ui/components"
	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show today's shop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			printShop(s)
			return nil
		})
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy a shop item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			item, ok := s.catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("no shop item %q", args[0])
			}
			p := s.current()
			if p.Owns(item.CosmeticID) {
				warn("You already own %s.", item.Name())
				return nil
			}
			next, ok := s.engine.Purchase(ctx, s.state, item.ID)
			if !ok {
				warn("Not enough goo: %s costs %d, you have %d.", item.Name(), item.Cost(), p.Goo)
				return nil
			}
			s.commit(ctx, next)
			fmt.Printf("Bought %s for %s goo. Equip it with `mathworlds equip %s`.\n",
				theme.Paint(theme.Rarity(string(item.Rarity)), item.Name()),
				theme.Paint(theme.Goo, fmt.Sprint(item.Cost())), item.CosmeticID)
			return nil
		})
	},
}

var shopRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Pay goo to re-roll today's daily items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			cost, ok := s.engine.NextRefreshCost(s.state)
			if !ok {
				warn("No refreshes left today.")
				return nil
			}
			next, ok := s.engine.RequestRefresh(ctx, s.state)
			if !ok {
				warn("Not enough goo: a refresh costs %d, you have %d.", cost, s.current().Goo)
				return nil
			}
			s.commit(ctx, next)
			fmt.Printf("Refreshed for %s goo.\n\n", theme.Paint(theme.Goo, fmt.Sprint(cost)))
			printShop(s)
			return nil
		})
	},
}

func printShop(s *session) {
	p := s.current()
	picks := s.engine.OpenShop(s.state)

	fmt.Printf("%s  %s goo\n", theme.Paint(theme.Title, "Shop"), theme.Paint(theme.Goo, fmt.Sprint(p.Goo)))
	if picks.Bias != nil {
		fmt.Println(theme.Paint(theme.Highlight,
			fmt.Sprintf("%s items are featured for %s", picks.Bias.Category, formatDuration(picks.Bias.RemainingMs))))
	}

	fmt.Println()
	fmt.Println(theme.Paint(theme.Subtitle, "Daily"))
	if len(picks.Daily) == 0 {
		fmt.Println(theme.Paint(theme.Hint, "  nothing left to buy"))
	}
	fmt.Print(components.Table(itemRows(picks.Daily, p, s.state.InWishlist)))

	fmt.Println()
	fmt.Println(theme.Paint(theme.Subtitle, "Always available"))
	fmt.Print(components.Table(itemRows(picks.Evergreen, p, s.state.InWishlist)))

	fmt.Println()
	used := shop.RefreshesUsed(p, s.engine.Today())
	if cost, ok := s.engine.NextRefreshCost(s.state); ok {
		fmt.Println(theme.Paint(theme.Hint, fmt.Sprintf("Refresh daily items for %d goo (%d/%d used today): mathworlds shop refresh",
			cost, used, len(shop.RefreshCosts))))
	} else {
		fmt.Println(theme.Paint(theme.Hint, "No refreshes left today."))
	}
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopRefreshCmd)
}
