package worldgraph

// worlds is the fixed play order. The chain never branches.
var worlds = []World{
	{
		ID:               "meadow",
		Title:            "Mossy Meadow",
		PrimarySkill:     "add-within-20",
		Tier:             TierEarly,
		RewardCategory:   "meadow",
		BiasDurationDays: 3,
	},
	{
		ID:               "beach",
		Title:            "Bubble Beach",
		PrimarySkill:     "sub-within-20",
		SecondarySkills:  []string{"add-within-20"},
		Tier:             TierEarly,
		RewardCategory:   "beach",
		BiasDurationDays: 3,
	},
	{
		ID:               "forest",
		Title:            "Fern Forest",
		PrimarySkill:     "add-within-100",
		SecondarySkills:  []string{"place-value-tens"},
		Tier:             TierEarly,
		RewardCategory:   "forest",
		BiasDurationDays: 3,
	},
	{
		ID:               "volcano",
		Title:            "Volcano Vents",
		PrimarySkill:     "mult-2-5-10",
		SecondarySkills:  []string{"add-within-100"},
		Tier:             TierMid,
		RewardCategory:   "volcano",
		BiasDurationDays: 5,
	},
	{
		ID:               "glacier",
		Title:            "Glacier Grotto",
		PrimarySkill:     "mult-6-9",
		SecondarySkills:  []string{"mult-2-5-10"},
		Tier:             TierMid,
		RewardCategory:   "ice",
		BiasDurationDays: 5,
	},
	{
		ID:               "reef",
		Title:            "Rainbow Reef",
		PrimarySkill:     "div-facts",
		SecondarySkills:  []string{"mult-6-9"},
		Tier:             TierMid,
		RewardCategory:   "ocean",
		BiasDurationDays: 5,
	},
	{
		ID:               "nebula",
		Title:            "Nebula Nest",
		PrimarySkill:     "fractions-compare",
		SecondarySkills:  []string{"div-facts"},
		Tier:             TierLate,
		RewardCategory:   "space",
		BiasDurationDays: 7,
	},
	{
		ID:               "castle",
		Title:            "Cloud Castle",
		PrimarySkill:     "multi-digit-mult",
		SecondarySkills:  []string{"mult-6-9", "place-value-tens"},
		Tier:             TierLate,
		RewardCategory:   "castle",
		BiasDurationDays: 7,
	},
}

func init() {
	if err := validateWorlds(worlds); err != nil {
		panic(err)
	}
	g = buildChain(worlds)
}
