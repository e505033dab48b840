package worldgraph

import (
	"fmt"
	"slices"
	"strings"
)

// validateWorlds performs all structural checks on the given world chain.
// Returns a combined error describing all problems found, or nil if valid.
func validateWorlds(worlds []World) error {
	var errs []string

	if len(worlds) == 0 {
		errs = append(errs, "world chain is empty")
	}

	// Check for duplicate IDs
	idSet := make(map[string]bool, len(worlds))
	for _, w := range worlds {
		if w.ID == "" {
			errs = append(errs, "world with empty ID")
			continue
		}
		if idSet[w.ID] {
			errs = append(errs, fmt.Sprintf("duplicate world ID: %q", w.ID))
		}
		idSet[w.ID] = true
	}

	for i, w := range worlds {
		if w.PrimarySkill == "" {
			errs = append(errs, fmt.Sprintf("world %q has no primary skill", w.ID))
		}
		for _, s := range w.SecondarySkills {
			if s == w.PrimarySkill {
				errs = append(errs, fmt.Sprintf("world %q lists primary skill %q as secondary", w.ID, s))
			}
		}
		if w.RewardCategory == "" {
			errs = append(errs, fmt.Sprintf("world %q has no reward category", w.ID))
		}
		if w.BiasDurationDays <= 0 {
			errs = append(errs, fmt.Sprintf("world %q: BiasDurationDays must be > 0, got %d", w.ID, w.BiasDurationDays))
		}
		if !slices.Contains(AllTiers(), w.Tier) {
			errs = append(errs, fmt.Sprintf("world %q has unknown tier %d", w.ID, w.Tier))
		}
		// Tiers only escalate along the chain.
		if i > 0 && w.Tier < worlds[i-1].Tier {
			errs = append(errs, fmt.Sprintf("world %q tier %s follows harder tier %s", w.ID, w.Tier, worlds[i-1].Tier))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("world chain validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
