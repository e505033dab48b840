package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/ui/components"
	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			printProfile(s.current())
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			var rows [][]components.Cell
			for _, p := range s.state.Profiles {
				mark := " "
				if p.ID == s.state.CurrentProfileID {
					mark = "▶"
				}
				rows = append(rows, []components.Cell{
					components.Plain(mark),
					components.Styled(p.Name, theme.Highlight),
					components.Styled(p.ID, theme.Hint),
					components.Plain(fmt.Sprintf("Lv %d", p.Level)),
					components.Styled(fmt.Sprintf("%d goo", p.Goo), theme.Goo),
				})
			}
			fmt.Print(components.Table(rows))
			return nil
		})
	},
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile and switch to it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("profile name is empty")
		}
		return withSession(cmd, func(ctx context.Context, s *session) error {
			next, p := s.engine.AddProfile(ctx, s.state, name)
			s.commit(ctx, next)
			fmt.Printf("Created %s %s\n", theme.Paint(theme.Highlight, p.Name), theme.Paint(theme.Hint, p.ID))
			return nil
		})
	},
}

var profileSwitchCmd = &cobra.Command{
	Use:   "switch <id-or-name>",
	Short: "Make another profile current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			id := args[0]
			for _, p := range s.state.Profiles {
				if strings.EqualFold(p.Name, id) {
					id = p.ID
					break
				}
			}
			next, ok := s.engine.SwitchProfile(ctx, s.state, id)
			if !ok {
				return fmt.Errorf("no profile %q", args[0])
			}
			s.commit(ctx, next)
			printProfile(s.current())
			return nil
		})
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileSwitchCmd)
}
