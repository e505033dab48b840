package engine

import (
	"context"

	"github.com/abhisek/mathworlds/internal/mastery"
	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/worldgraph"
)

// AnswerResult reports what one answer changed.
type AnswerResult struct {
	MasteryAchieved bool
	// WorldCompleted is the world whose reward this answer unlocked.
	WorldCompleted *worldgraph.World
	// NextWorld is the next incomplete world after WorldCompleted, nil when
	// nothing was completed or every world is done.
	NextWorld *worldgraph.World
}

type answerPayload struct {
	SkillID   string  `json:"skill_id"`
	Correct   bool    `json:"correct"`
	ElapsedMs int64   `json:"elapsed_ms"`
	XP        float64 `json:"xp,omitempty"`
	Goo       int64   `json:"goo,omitempty"`
}

type masteryPayload struct {
	SkillID string `json:"skill_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Trigger string `json:"trigger"`
}

type worldPayload struct {
	WorldID  string `json:"world_id"`
	Category string `json:"category"`
	BiasDays int    `json:"bias_days"`
}

// OnAnswer records one answered question for the current profile, grants
// the per-answer reward for a correct answer, and applies the unlock reward
// of any world whose gate the answer cleared.
func (e *Engine) OnAnswer(ctx context.Context, st profile.RootState, skillID string, correct bool, elapsedMs int64) (profile.RootState, AnswerResult) {
	var result AnswerResult
	p, ok := st.Current()
	if !ok || skillID == "" {
		return st, result
	}

	attempt := mastery.Record(p, skillID, correct, elapsedMs)
	next := attempt.Profile
	result.MasteryAchieved = attempt.MasteryAchieved

	payload := answerPayload{SkillID: skillID, Correct: correct, ElapsedMs: max(elapsedMs, 0)}
	if correct {
		next = profile.ApplyXP(next, e.answerXP)
		next = profile.AddGoo(next, e.answerGoo)
		payload.XP = e.answerXP
		payload.Goo = e.answerGoo
	}
	e.record(ctx, p.ID, KindAnswer, payload)

	if attempt.MasteryAchieved && attempt.Transition != nil {
		e.record(ctx, p.ID, KindMastery, masteryPayload{
			SkillID: skillID,
			From:    string(attempt.Transition.From),
			To:      string(attempt.Transition.To),
			Trigger: attempt.Transition.Trigger,
		})
		e.logger.Info("skill mastered", "profile", p.ID, "skill", skillID)
	}

	now := e.Now()
	for _, w := range worldgraph.PendingRewards(next, skillID) {
		var first bool
		next, first = worldgraph.OnWorldMastered(next, w.ID, now)
		if !first {
			continue
		}
		if result.WorldCompleted == nil {
			completed := w
			result.WorldCompleted = &completed
		}
		e.record(ctx, p.ID, KindWorldCompleted, worldPayload{
			WorldID:  w.ID,
			Category: w.RewardCategory,
			BiasDays: w.BiasDurationDays,
		})
		e.logger.Info("world completed", "profile", p.ID, "world", w.ID)
	}

	if result.WorldCompleted != nil {
		if nw, ok := worldgraph.NextIncompleteWorld(next); ok {
			result.NextWorld = &nw
		}
	}

	return st.WithProfile(next), result
}
