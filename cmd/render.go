package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/shop"
	"github.com/abhisek/mathworlds/internal/ui/components"
	"github.com/abhisek/mathworlds/internal/ui/theme"
	"github.com/abhisek/mathworlds/internal/worldgraph"
)

func printProfile(p profile.Profile) {
	prog := p.Progress()
	fmt.Printf("%s  %s\n",
		theme.Paint(theme.Title, p.Name),
		theme.Paint(theme.Hint, p.ID))
	fmt.Printf("Level %d  %s  %s\n",
		prog.Level,
		components.NewProgressBar("", prog.Fraction(), false, 24).View(),
		theme.Paint(theme.Hint, fmt.Sprintf("%d/%d XP", prog.Into, prog.Need)))
	fmt.Printf("Goo %s   Wearing %s\n",
		theme.Paint(theme.Goo, fmt.Sprint(p.Goo)),
		theme.Paint(theme.Highlight, p.EquippedCosmetic))

	if len(p.Mastered) > 0 {
		var skills []string
		for id := range p.Mastered {
			skills = append(skills, id)
		}
		sort.Strings(skills)
		fmt.Printf("Mastered %s\n", strings.Join(skills, ", "))
	}
}

func printWorlds(p profile.Profile) {
	var rows [][]components.Cell
	for _, s := range worldgraph.Statuses(p) {
		st := p.Stat(s.World.PrimarySkill)
		gate := s.World.Gate()
		rows = append(rows, []components.Cell{
			components.Plain(s.State.Icon()),
			components.Styled(s.World.Title, worldStyle(s.State)),
			components.Plain(s.World.Tier.String()),
			components.Plain(s.World.PrimarySkill),
			components.Styled(fmt.Sprintf("%d/%d answers, %.0f%%", st.Attempts, gate.MinAttempts, st.Accuracy()*100), theme.Hint),
		})
	}
	fmt.Print(components.Table(rows))
}

func worldStyle(s worldgraph.WorldState) lipgloss.Style {
	switch s {
	case worldgraph.StateCompleted:
		return theme.Correct
	case worldgraph.StateCurrent:
		return theme.Highlight
	default:
		return theme.Hint
	}
}

func itemRows(items []shop.Item, p profile.Profile, wishlist func(string) bool) [][]components.Cell {
	var rows [][]components.Cell
	for _, it := range items {
		mark := " "
		if wishlist(it.CosmeticID) {
			mark = "★"
		}
		price := fmt.Sprintf("%d goo", it.Cost())
		priceStyle := theme.Goo
		if p.Goo < it.Cost() {
			priceStyle = theme.Incorrect
		}
		rows = append(rows, []components.Cell{
			components.Plain(mark),
			components.Plain(it.ID),
			components.Plain(it.Name()),
			components.Styled(it.Rarity.DisplayName(), theme.Rarity(string(it.Rarity))),
			components.Plain(it.Category),
			components.Styled(price, priceStyle),
		})
	}
	return rows
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d >= 24*time.Hour {
		return fmt.Sprintf("%dd %dh", int(d.Hours())/24, int(d.Hours())%24)
	}
	return d.Round(time.Minute).String()
}

func warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, theme.Paint(theme.Incorrect, fmt.Sprintf(format, args...)))
}
