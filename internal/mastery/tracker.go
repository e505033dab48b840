package mastery

import "github.com/abhisek/mathworlds/internal/profile"

const (
	// MasteryXP is the one-time XP reward for mastering a skill.
	MasteryXP = 100

	// MasteryGoo is the one-time goo reward for mastering a skill.
	MasteryGoo = 50
)

// Attempt is the outcome of recording one answered question.
type Attempt struct {
	Profile         profile.Profile
	MasteryAchieved bool
	// Transition is set when the answer moved the skill to a new state.
	Transition *StateTransition
}

// RecordAttempt records one answer for skillID and returns the updated
// profile plus whether the answer flipped the skill's mastery latch.
func RecordAttempt(p profile.Profile, skillID string, correct bool, elapsedMs int64) (profile.Profile, bool) {
	res := Record(p, skillID, correct, elapsedMs)
	return res.Profile, res.MasteryAchieved
}

// Record is RecordAttempt with the state transition exposed.
//
// The mastery latch is one-way: once set, later attempts still update the
// statistics but skip the gate check, so the reward can never be applied
// twice. The tracker does not deduplicate literal repeat calls; callers
// that may resubmit an answer must dedupe by attempt id.
func Record(p profile.Profile, skillID string, correct bool, elapsedMs int64) Attempt {
	from := StateOf(p, skillID)
	next := p.WithAttempt(skillID, correct, elapsedMs)

	res := Attempt{Profile: next}
	if from == StateNew {
		res.Transition = &StateTransition{
			SkillID: skillID,
			From:    StateNew,
			To:      StateLearning,
			Trigger: "first-attempt",
		}
		from = StateLearning
	}

	if next.IsMastered(skillID) || !SkillGate.Passes(next.Stat(skillID)) {
		return res
	}

	next.Mastered[skillID] = true
	next = profile.ApplyXP(next, MasteryXP)
	next = profile.AddGoo(next, MasteryGoo)

	res.Profile = next
	res.MasteryAchieved = true
	res.Transition = &StateTransition{
		SkillID: skillID,
		From:    from,
		To:      StateMastered,
		Trigger: "gate-passed",
	}
	return res
}
