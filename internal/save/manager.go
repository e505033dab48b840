// Package save persists the game state under a versioned key with an
// upgrade path from legacy keys. Storage failures never reach the caller.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/store"
)

const (
	// CurrentKey is the storage key for the current state shape.
	CurrentKey = "mathworlds.state.v3"

	// DefaultSnapshotKeep is how many state snapshots are retained.
	DefaultSnapshotKeep = 5
)

// LegacyKeys are checked in order when CurrentKey is missing.
var LegacyKeys = []string{"mathworlds.state.v2", "mathworlds.state.v1"}

// Manager loads and saves the RootState.
type Manager struct {
	states    store.StateRepo
	snapshots store.SnapshotRepo // optional
	events    store.EventRepo    // optional, stamps snapshots with a sequence
	keep      int
	logger    *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithSnapshots keeps the last keep saves as snapshots. A current key that
// no longer holds valid JSON is recovered from the newest snapshot.
func WithSnapshots(snaps store.SnapshotRepo, events store.EventRepo, keep int) Option {
	return func(m *Manager) {
		m.snapshots = snaps
		m.events = events
		m.keep = keep
	}
}

// NewManager creates a Manager over states. A nil logger discards output.
func NewManager(states store.StateRepo, logger *log.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{states: states, logger: logger, keep: DefaultSnapshotKeep}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadState returns the persisted state, migrated to the current shape.
// A legacy record is upgraded and written under CurrentKey. Missing data or
// storage errors yield a default state.
func (m *Manager) LoadState(ctx context.Context) profile.RootState {
	data, err := m.states.Get(ctx, CurrentKey)
	switch {
	case err == nil:
		if !json.Valid(data) {
			if st, ok := m.restoreSnapshot(ctx); ok {
				return st
			}
		}
		return profile.ParseState(data)
	case !errors.Is(err, store.ErrNotFound):
		m.logger.Warn("load state failed, using defaults", "key", CurrentKey, "err", err)
		return profile.DefaultState()
	}

	for _, key := range LegacyKeys {
		data, err := m.states.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			m.logger.Warn("load legacy state failed", "key", key, "err", err)
			continue
		}
		st := profile.ParseState(data)
		m.logger.Info("upgraded legacy state", "from", key, "to", CurrentKey, "profiles", len(st.Profiles))
		m.SaveState(ctx, st)
		return st
	}

	return profile.DefaultState()
}

// SaveState writes the state under CurrentKey. Failures are logged.
func (m *Manager) SaveState(ctx context.Context, st profile.RootState) {
	data, err := json.Marshal(st)
	if err != nil {
		m.logger.Warn("encode state failed", "err", err)
		return
	}
	if err := m.states.Put(ctx, CurrentKey, data); err != nil {
		m.logger.Warn("save state failed", "key", CurrentKey, "err", err)
		return
	}
	m.snapshot(ctx, data)
}

func (m *Manager) snapshot(ctx context.Context, data []byte) {
	if m.snapshots == nil {
		return
	}
	var seq int64
	if m.events != nil {
		if s, err := m.events.LastSequence(ctx); err == nil {
			seq = s
		}
	}
	if err := m.snapshots.Save(ctx, &store.Snapshot{Sequence: seq, Data: data}); err != nil {
		m.logger.Warn("save snapshot failed", "err", err)
		return
	}
	if err := m.snapshots.Prune(ctx, m.keep); err != nil {
		m.logger.Warn("prune snapshots failed", "err", err)
	}
}

func (m *Manager) restoreSnapshot(ctx context.Context) (profile.RootState, bool) {
	if m.snapshots == nil {
		return profile.RootState{}, false
	}
	snap, err := m.snapshots.Latest(ctx)
	if err != nil || snap == nil || !json.Valid(snap.Data) {
		return profile.RootState{}, false
	}
	m.logger.Warn("state record corrupt, restored snapshot", "sequence", snap.Sequence)
	return profile.ParseState(snap.Data), true
}

// Reset deletes the current and legacy state records and every snapshot.
// The next LoadState returns a default state.
func (m *Manager) Reset(ctx context.Context) error {
	for _, key := range append([]string{CurrentKey}, LegacyKeys...) {
		if err := m.states.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	if m.snapshots != nil {
		if err := m.snapshots.Prune(ctx, 0); err != nil {
			return fmt.Errorf("drop snapshots: %w", err)
		}
	}
	return nil
}
