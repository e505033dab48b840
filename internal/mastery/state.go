package mastery

import "github.com/abhisek/mathworlds/internal/profile"

// MasteryState represents a skill's position in the mastery lifecycle.
// There is no way back from StateMastered.
type MasteryState string

const (
	StateNew      MasteryState = "new"
	StateLearning MasteryState = "learning"
	StateMastered MasteryState = "mastered"
)

// StateOf derives the state of a skill from a profile.
func StateOf(p profile.Profile, skillID string) MasteryState {
	switch {
	case p.IsMastered(skillID):
		return StateMastered
	case p.Stat(skillID).Attempts > 0:
		return StateLearning
	default:
		return StateNew
	}
}

// StateTransition records a mastery state change for display and event logging.
type StateTransition struct {
	SkillID string
	From    MasteryState
	To      MasteryState
	Trigger string // "first-attempt", "gate-passed"
}
