package mastery

import "github.com/abhisek/mathworlds/internal/profile"

// Gate is a threshold triple a skill's statistics must clear.
type Gate struct {
	MinAttempts      int     `json:"min_attempts" yaml:"min_attempts"`
	MinAccuracy      float64 `json:"min_accuracy" yaml:"min_accuracy"`
	MaxAverageTimeMs float64 `json:"max_average_time_ms" yaml:"max_average_time_ms"`
}

// SkillGate is the generic skill-mastery gate checked after every attempt.
// World gates are defined separately and may be stricter.
var SkillGate = Gate{MinAttempts: 20, MinAccuracy: 0.90, MaxAverageTimeMs: 6000}

// Passes reports whether a stat clears the gate. A stat with no attempts
// never passes.
func (g Gate) Passes(st profile.SkillStat) bool {
	if st.Attempts == 0 || st.AverageTimeMs == nil {
		return false
	}
	return st.Attempts >= g.MinAttempts &&
		st.Accuracy() >= g.MinAccuracy &&
		*st.AverageTimeMs <= g.MaxAverageTimeMs
}

// MeetsGate reports whether the profile's stat for skillID clears gate.
// Unknown skills have zero attempts and never pass.
func MeetsGate(p profile.Profile, skillID string, gate Gate) bool {
	return gate.Passes(p.Stat(skillID))
}
