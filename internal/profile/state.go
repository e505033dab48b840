package profile

import (
	"fmt"

	"github.com/google/uuid"
)

// StateVersion is the current shape of the persisted root record.
const StateVersion = 3

// RootState is the persisted unit: every local profile plus the wishlist.
type RootState struct {
	Version          int       `json:"version"`
	CurrentProfileID string    `json:"current_profile_id"`
	Profiles         []Profile `json:"profiles"`
	Wishlist         []string  `json:"wishlist"`
}

// palette is cycled through for default profile colours.
var palette = []string{"purple", "teal", "orange", "green", "rose"}

// NewProfile returns a fresh profile with a generated id.
func NewProfile(name string, index int) Profile {
	if name == "" {
		name = fmt.Sprintf("Player %d", index+1)
	}
	return New(uuid.NewString(), name, palette[index%len(palette)])
}

// DefaultState returns a state with a single fresh profile.
func DefaultState() RootState {
	return newState(1)
}

// FallbackState is the state used when persisted data cannot be read at all.
func FallbackState() RootState {
	return newState(2)
}

func newState(profiles int) RootState {
	st := RootState{Version: StateVersion, Wishlist: []string{}}
	for i := 0; i < profiles; i++ {
		st.Profiles = append(st.Profiles, NewProfile("", i))
	}
	st.CurrentProfileID = st.Profiles[0].ID
	return st
}

// Clone deep-copies the state.
func (s RootState) Clone() RootState {
	c := s
	c.Profiles = make([]Profile, len(s.Profiles))
	for i, p := range s.Profiles {
		c.Profiles[i] = p.Clone()
	}
	c.Wishlist = append([]string(nil), s.Wishlist...)
	return c
}

// Current returns the active profile. MigrateState guarantees one exists;
// on a hand-built state with no match the first profile is returned.
func (s RootState) Current() (Profile, bool) {
	for _, p := range s.Profiles {
		if p.ID == s.CurrentProfileID {
			return p, true
		}
	}
	if len(s.Profiles) > 0 {
		return s.Profiles[0], true
	}
	return Profile{}, false
}

// Find returns the profile with the given id.
func (s RootState) Find(id string) (Profile, bool) {
	for _, p := range s.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// WithProfile returns a copy of the state with p replacing the profile of
// the same id, or appended if none matches.
func (s RootState) WithProfile(p Profile) RootState {
	next := s.Clone()
	for i := range next.Profiles {
		if next.Profiles[i].ID == p.ID {
			next.Profiles[i] = p.Clone()
			return next
		}
	}
	next.Profiles = append(next.Profiles, p.Clone())
	return next
}

// InWishlist reports whether the cosmetic is on the wishlist.
func (s RootState) InWishlist(cosmeticID string) bool {
	for _, id := range s.Wishlist {
		if id == cosmeticID {
			return true
		}
	}
	return false
}
