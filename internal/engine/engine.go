// Package engine is the entry point hosts call with gameplay and shop
// events. Every operation takes the current RootState and returns the next
// one; the engine keeps no game state of its own.
package engine

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/shop"
	"github.com/abhisek/mathworlds/internal/store"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Event kinds written to the progression ledger.
const (
	KindAnswer         = "answer"
	KindMastery        = "mastery"
	KindWorldCompleted = "world_completed"
	KindPurchase       = "purchase"
	KindEquip          = "equip"
	KindRefresh        = "refresh"
	KindWishlist       = "wishlist"
	KindProfile        = "profile"
)

// Engine applies player events to a RootState.
type Engine struct {
	items     []shop.Item
	events    store.EventRepo // optional
	logger    *log.Logger
	clock     Clock
	loc       *time.Location
	answerXP  float64
	answerGoo int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLocation sets the location used for daily date keys.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithEvents records every successful mutation in repo.
func WithEvents(repo store.EventRepo) Option {
	return func(e *Engine) { e.events = repo }
}

// WithLogger sets the logger for swallowed storage errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithAnswerRewards sets the XP and goo granted per correct answer.
func WithAnswerRewards(xp float64, goo int64) Option {
	return func(e *Engine) {
		e.answerXP = xp
		e.answerGoo = goo
	}
}

// New creates an Engine selling items.
func New(items []shop.Item, opts ...Option) *Engine {
	e := &Engine{
		items:  items,
		logger: log.New(io.Discard),
		clock:  SystemClock{},
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Items returns the catalog the engine sells from.
func (e *Engine) Items() []shop.Item {
	return e.items
}

// Now returns the engine's current time in its location.
func (e *Engine) Now() time.Time {
	return e.clock.Now().In(e.loc)
}

// Today returns the current date key.
func (e *Engine) Today() string {
	return shop.DateKey(e.Now())
}

// record appends an event to the ledger. Failures are logged and dropped.
func (e *Engine) record(ctx context.Context, profileID, kind string, payload any) {
	if e.events == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		e.logger.Warn("encode event failed", "kind", kind, "err", err)
		return
	}
	ev := store.Event{
		Timestamp: e.clock.Now(),
		ProfileID: profileID,
		Kind:      kind,
		Payload:   data,
	}
	if _, err := e.events.AppendEvent(ctx, ev); err != nil {
		e.logger.Warn("record event failed", "kind", kind, "err", err)
	}
}

// History returns the newest events for the current profile.
func (e *Engine) History(ctx context.Context, st profile.RootState, limit int) ([]store.Event, error) {
	p, ok := st.Current()
	if e.events == nil || !ok {
		return nil, nil
	}
	return e.events.QueryEvents(ctx, store.QueryOpts{
		ProfileID: p.ID,
		Newest:    true,
		Limit:     limit,
	})
}
