package engine

import (
	"context"

	"github.com/abhisek/mathworlds/internal/profile"
)

type profilePayload struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
}

// AddProfile creates a profile and makes it current.
func (e *Engine) AddProfile(ctx context.Context, st profile.RootState, name string) (profile.RootState, profile.Profile) {
	p := profile.NewProfile(name, len(st.Profiles))
	next := st.WithProfile(p)
	next.CurrentProfileID = p.ID
	e.record(ctx, p.ID, KindProfile, profilePayload{Action: "create", Name: p.Name})
	return next, p
}

// SwitchProfile makes the profile with id current. Unknown ids leave the
// state unchanged.
func (e *Engine) SwitchProfile(ctx context.Context, st profile.RootState, id string) (profile.RootState, bool) {
	if _, ok := st.Find(id); !ok {
		return st, false
	}
	if st.CurrentProfileID == id {
		return st, true
	}
	next := st.Clone()
	next.CurrentProfileID = id
	e.record(ctx, id, KindProfile, profilePayload{Action: "switch"})
	return next, true
}
