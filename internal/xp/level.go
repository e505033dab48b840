package xp

const (
	// BaseRequirement is the XP needed to go from level 1 to level 2.
	BaseRequirement = 100

	// RequirementStep is how much the requirement widens per level.
	RequirementStep = 40

	// RequirementCap is the largest per-level requirement.
	RequirementCap = 1400
)

// Progress is a player's position on the level curve.
type Progress struct {
	Level int `json:"level"`
	Into  int `json:"xp_into"` // XP earned inside the current level
	Need  int `json:"xp_need"` // XP required to finish the current level
}

// Remaining returns the XP still missing to reach the next level.
func (p Progress) Remaining() int {
	return p.Need - p.Into
}

// Fraction returns progress through the current level in [0, 1).
func (p Progress) Fraction() float64 {
	if p.Need <= 0 {
		return 0
	}
	return float64(p.Into) / float64(p.Need)
}

// RequiredForLevel returns the XP needed to finish the given level.
// Levels below 1 are treated as level 1.
func RequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	req := BaseRequirement + RequirementStep*(level-1)
	if req > RequirementCap {
		return RequirementCap
	}
	return req
}

// CapLevel is the first level whose requirement is RequirementCap.
const CapLevel = (RequirementCap-BaseRequirement+RequirementStep-1)/RequirementStep + 1

// capTotal is the cumulative XP at which CapLevel starts.
var capTotal = walkTotal(CapLevel)

// LevelFromXP derives the level triple from a cumulative XP total by
// consuming per-level requirements greedily, starting at level 1. Totals
// past CapLevel are resolved arithmetically, so the cost is bounded.
func LevelFromXP(total int) Progress {
	if total < 0 {
		total = 0
	}
	if total >= capTotal {
		rest := total - capTotal
		return Progress{
			Level: CapLevel + rest/RequirementCap,
			Into:  rest % RequirementCap,
			Need:  RequirementCap,
		}
	}
	level := 1
	for {
		need := RequiredForLevel(level)
		if total < need {
			return Progress{Level: level, Into: total, Need: need}
		}
		total -= need
		level++
	}
}

// TotalForLevel returns the cumulative XP at which the given level starts.
func TotalForLevel(level int) int {
	if level > CapLevel {
		return capTotal + (level-CapLevel)*RequirementCap
	}
	return walkTotal(level)
}

func walkTotal(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += RequiredForLevel(l)
	}
	return total
}
