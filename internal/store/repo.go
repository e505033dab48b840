package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// StateRepo stores opaque values under string keys.
type StateRepo interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	ProfileID string    // only events for this profile
	Kind      string    // only events of this kind
	Newest    bool      // newest first instead of oldest first
}

// Event is one entry in the progression ledger.
type Event struct {
	Sequence  int64
	Timestamp time.Time
	ProfileID string
	Kind      string
	Payload   json.RawMessage
}

// EventRepo provides append and query access to progression events.
type EventRepo interface {
	// AppendEvent records an event and returns its sequence number.
	// Sequence and a zero Timestamp are filled in by the repo.
	AppendEvent(ctx context.Context, ev Event) (int64, error)

	// QueryEvents returns events matching opts ordered by sequence.
	QueryEvents(ctx context.Context, opts QueryOpts) ([]Event, error)

	// LastSequence returns the highest sequence assigned, or 0.
	LastSequence(ctx context.Context) (int64, error)
}

// Snapshot is a point-in-time copy of the serialized game state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
