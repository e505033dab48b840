package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/catalog"
	"github.com/abhisek/mathworlds/internal/engine"
	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/save"
	"github.com/abhisek/mathworlds/internal/store"
)

// session bundles what a command needs to read and change the game state.
type session struct {
	store   *store.Store
	saves   *save.Manager
	engine  *engine.Engine
	catalog catalog.Catalog
	logger  *log.Logger
	state   profile.RootState
}

// openSession loads config, opens the store, builds the engine and loads
// the current state.
func openSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		st.Close()
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		st.Close()
		return nil, err
	}

	events := st.EventRepo()
	s := &session{
		store:   st,
		catalog: cat,
		logger:  logger,
		saves: save.NewManager(st.StateRepo(), logger,
			save.WithSnapshots(st.SnapshotRepo(), events, cfg.SnapshotKeep)),
		engine: engine.New(cat.Items,
			engine.WithEvents(events),
			engine.WithLogger(logger),
			engine.WithLocation(loc),
			engine.WithAnswerRewards(cfg.AnswerXP, cfg.AnswerGoo),
		),
	}
	s.state = s.saves.LoadState(ctx)
	return s, nil
}

// commit persists next as the session state.
func (s *session) commit(ctx context.Context, next profile.RootState) {
	s.state = next
	s.saves.SaveState(ctx, next)
}

func (s *session) current() profile.Profile {
	p, _ := s.state.Current()
	return p
}

func (s *session) Close() error {
	return s.store.Close()
}

// withSession runs fn with an open session and closes it afterwards.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
		cmd.SetContext(ctx)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}
