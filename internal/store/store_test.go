package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if assert.NoError(t, err, "PRAGMA %s", tt.pragma) {
			assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
		}
	}
}

func TestOpenFileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mathworlds.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"kv_state", "progress_events", "state_snapshots", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestStateRepo_GetPut(t *testing.T) {
	repo := openTestStore(t).StateRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put(ctx, "a", []byte(`{"v":1}`)))
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(got))

	// Put replaces.
	require.NoError(t, repo.Put(ctx, "a", []byte(`{"v":2}`)))
	got, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

func TestStateRepo_KeysAndDelete(t *testing.T) {
	repo := openTestStore(t).StateRepo()
	ctx := context.Background()

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, k := range []string{"b", "c", "a"} {
		require.NoError(t, repo.Put(ctx, k, []byte("x")))
	}
	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))
	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, keys)

	_, err = repo.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	last, err := sc.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last)

	// Should be monotonically increasing starting from 1.
	for i := range 5 {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	last, err = sc.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), last)
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	appends := []Event{
		{ProfileID: "p1", Kind: "answer", Timestamp: base, Payload: json.RawMessage(`{"skill_id":"add"}`)},
		{ProfileID: "p2", Kind: "answer", Timestamp: base.Add(time.Second)},
		{ProfileID: "p1", Kind: "purchase", Timestamp: base.Add(2 * time.Second)},
		{ProfileID: "p1", Kind: "answer", Timestamp: base.Add(3 * time.Second)},
	}
	for i, ev := range appends {
		seq, err := repo.AppendEvent(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	all, err := repo.QueryEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, ev := range all {
		assert.Equal(t, int64(i+1), ev.Sequence)
	}
	assert.JSONEq(t, `{"skill_id":"add"}`, string(all[0].Payload))
	assert.JSONEq(t, `{}`, string(all[1].Payload))
	assert.Equal(t, base.UnixMilli(), all[0].Timestamp.UnixMilli())

	tests := []struct {
		name string
		opts QueryOpts
		want []int64
	}{
		{"by profile", QueryOpts{ProfileID: "p1"}, []int64{1, 3, 4}},
		{"by kind", QueryOpts{Kind: "answer"}, []int64{1, 2, 4}},
		{"after", QueryOpts{After: 2}, []int64{3, 4}},
		{"before", QueryOpts{Before: 3}, []int64{1, 2}},
		{"time window", QueryOpts{From: base.Add(time.Second), To: base.Add(2 * time.Second)}, []int64{2, 3}},
		{"newest limited", QueryOpts{Newest: true, Limit: 2}, []int64{4, 3}},
		{"combined", QueryOpts{ProfileID: "p1", Kind: "answer", After: 1}, []int64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.QueryEvents(ctx, tt.opts)
			require.NoError(t, err)
			var got []int64
			for _, ev := range events {
				got = append(got, ev.Sequence)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	last, err := repo.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), last)
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	repo := openTestStore(t).SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap, "expected nil snapshot when none exist")

	now := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: 41, Timestamp: now, Data: []byte(`{"version":2}`)}))
	require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: 42, Timestamp: now, Data: []byte(`{"version":3}`)}))

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(42), snap.Sequence)
	assert.Equal(t, now.UnixMilli(), snap.Timestamp.UnixMilli())
	assert.JSONEq(t, `{"version":3}`, string(snap.Data))
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: int64(i), Data: []byte("{}")}))
	}
	require.NoError(t, repo.Prune(ctx, 2))

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM state_snapshots").Scan(&count))
	assert.Equal(t, 2, count)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), latest.Sequence)
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: 1, Data: []byte("{}")}))
	require.NoError(t, repo.Prune(ctx, 5))

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM state_snapshots").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDefaultDBPath_Env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "x.db")
	t.Setenv("MATHWORLDS_DB", path)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.DirExists(t, filepath.Dir(path))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHWORLDS_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathworlds", "mathworlds.db"), got)
}
