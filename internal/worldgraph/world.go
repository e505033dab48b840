package worldgraph

import "github.com/abhisek/mathworlds/internal/mastery"

// Tier is a world's mastery gate tier.
type Tier int

const (
	TierEarly Tier = iota // Strict accuracy and speed for introductory content
	TierMid               // More attempts, slightly looser accuracy and speed
	TierLate              // Hardest content, loosest accuracy and speed
)

// AllTiers returns every tier in ascending order.
func AllTiers() []Tier {
	return []Tier{TierEarly, TierMid, TierLate}
}

// Gate returns the mastery gate for the tier. Later tiers require more
// attempts but tolerate lower accuracy and slower answers to offset
// harder questions.
func (t Tier) Gate() mastery.Gate {
	switch t {
	case TierMid:
		return mastery.Gate{MinAttempts: 25, MinAccuracy: 0.88, MaxAverageTimeMs: 7000}
	case TierLate:
		return mastery.Gate{MinAttempts: 30, MinAccuracy: 0.85, MaxAverageTimeMs: 9000}
	default:
		return mastery.Gate{MinAttempts: 20, MinAccuracy: 0.90, MaxAverageTimeMs: 6000}
	}
}

// String returns the tier's name.
func (t Tier) String() string {
	switch t {
	case TierEarly:
		return "EARLY"
	case TierMid:
		return "MID"
	case TierLate:
		return "LATE"
	default:
		return "UNKNOWN"
	}
}

// World is a content unit gated behind mastery of one primary skill.
type World struct {
	ID               string
	Title            string
	PrimarySkill     string
	SecondarySkills  []string
	Tier             Tier
	RewardCategory   string // cosmetic category unlocked on completion
	BiasDurationDays int    // how long the shop favours RewardCategory
}

// Gate returns the mastery gate guarding the world.
func (w World) Gate() mastery.Gate {
	return w.Tier.Gate()
}

// WorldState represents a world's state relative to the player.
type WorldState int

const (
	StateLocked    WorldState = iota // An earlier world is still incomplete
	StateCurrent                     // The first incomplete world
	StateCompleted                   // Gate passed
)

// Icon returns the display icon for a world state.
func (s WorldState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateCurrent:
		return "📖"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a world state.
func (s WorldState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateCurrent:
		return "Current"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
