package worldgraph

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathworlds/internal/mastery"
	"github.com/abhisek/mathworlds/internal/profile"
)

// chain holds the ordered worlds with precomputed indices.
type chain struct {
	worlds  []World
	byID    map[string]int
	bySkill map[string][]int
}

// g is the package-level chain singleton, set by init() in seed.go.
var g *chain

// buildChain constructs the chain from worlds in play order.
func buildChain(worlds []World) *chain {
	c := &chain{
		worlds:  worlds,
		byID:    make(map[string]int, len(worlds)),
		bySkill: make(map[string][]int),
	}
	for i, w := range worlds {
		c.byID[w.ID] = i
		c.bySkill[w.PrimarySkill] = append(c.bySkill[w.PrimarySkill], i)
	}
	return c
}

// Get returns a world by ID, or error if not found.
func Get(id string) (World, error) {
	i, ok := g.byID[id]
	if !ok {
		return World{}, fmt.Errorf("world not found: %q", id)
	}
	return g.worlds[i], nil
}

// All returns every world in play order.
func All() []World {
	return slices.Clone(g.worlds)
}

// ForSkill returns the worlds whose primary skill is skillID, in play order.
func ForSkill(skillID string) []World {
	idx := g.bySkill[skillID]
	result := make([]World, 0, len(idx))
	for _, i := range idx {
		result = append(result, g.worlds[i])
	}
	return result
}

// IsComplete reports whether the profile clears the world's gate.
func IsComplete(p profile.Profile, w World) bool {
	return mastery.MeetsGate(p, w.PrimarySkill, w.Gate())
}

// NextIncompleteWorld returns the first world in play order whose gate the
// profile does not clear. It returns false once every world is complete.
func NextIncompleteWorld(p profile.Profile) (World, bool) {
	return nextIncomplete(g.worlds, p)
}

func nextIncomplete(worlds []World, p profile.Profile) (World, bool) {
	for _, w := range worlds {
		if !IsComplete(p, w) {
			return w, true
		}
	}
	return World{}, false
}

// Status pairs a world with its state for the profile.
type Status struct {
	World World
	State WorldState
}

// Statuses returns every world with its state. Worlds before the first
// incomplete one are completed, that world is current and the rest are
// locked, even when a later gate happens to be met.
func Statuses(p profile.Profile) []Status {
	result := make([]Status, 0, len(g.worlds))
	current, ok := NextIncompleteWorld(p)
	seenCurrent := false
	for _, w := range g.worlds {
		state := StateCompleted
		switch {
		case !ok:
		case w.ID == current.ID:
			state = StateCurrent
			seenCurrent = true
		case seenCurrent:
			state = StateLocked
		}
		result = append(result, Status{World: w, State: state})
	}
	return result
}

// Validate checks the chain for structural issues.
// It delegates to validateWorlds with the chain's world set.
func Validate() error {
	return validateWorlds(g.worlds)
}
