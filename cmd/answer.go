package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/ui/theme"
)

var answerCmd = &cobra.Command{
	Use:   "answer <skill-id>",
	Short: "Record an answered question for a skill",
	Long: "Record one answered question. The question itself comes from whatever front end\n" +
		"asked it; this command updates statistics, mastery, worlds and rewards.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wrong, _ := cmd.Flags().GetBool("wrong")
		elapsed, _ := cmd.Flags().GetInt64("ms")
		if elapsed < 0 {
			return fmt.Errorf("--ms must be >= 0")
		}
		skillID := args[0]

		return withSession(cmd, func(ctx context.Context, s *session) error {
			next, res := s.engine.OnAnswer(ctx, s.state, skillID, !wrong, elapsed)
			s.commit(ctx, next)

			p := s.current()
			st := p.Stat(skillID)
			verdict := theme.Paint(theme.Correct, "Correct!")
			if wrong {
				verdict = theme.Paint(theme.Incorrect, "Not quite.")
			}
			fmt.Printf("%s  %s: %d/%d correct\n", verdict, skillID, st.Correct, st.Attempts)

			if res.MasteryAchieved {
				fmt.Println(theme.Paint(theme.Highlight, "★ Skill mastered: "+skillID))
			}
			if w := res.WorldCompleted; w != nil {
				fmt.Printf("%s %s  unlocked %s cosmetics for %d days in the shop\n",
					theme.Paint(theme.Correct, "World complete:"), w.Title,
					theme.Paint(theme.Highlight, w.RewardCategory), w.BiasDurationDays)
			}
			if w := res.NextWorld; w != nil {
				fmt.Printf("Next world: %s (%s)\n", w.Title, w.PrimarySkill)
			}
			prog := p.Progress()
			fmt.Printf("Level %d  %d/%d XP  %s goo\n",
				prog.Level, prog.Into, prog.Need, theme.Paint(theme.Goo, fmt.Sprint(p.Goo)))
			return nil
		})
	},
}

func init() {
	answerCmd.Flags().Bool("wrong", false, "The answer was incorrect")
	answerCmd.Flags().Int64("ms", 0, "Time taken to answer in milliseconds")
}
