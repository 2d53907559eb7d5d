// Package app provides the core business service that implements the
// dependencies required by the HTTP API: the match store plus the pure
// analytics engine (rows, pitch, trend, sparkline).
package app

import (
	"context"
	"sync"
	"time"

	"github.com/eyamansouri/matchboard/internal/adapters/repository"
	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/pitch"
	"github.com/eyamansouri/matchboard/internal/domain/spark"
	"github.com/eyamansouri/matchboard/internal/domain/trend"
	"github.com/eyamansouri/matchboard/internal/domain/view"
	"github.com/eyamansouri/matchboard/pkg/logger"
	"github.com/eyamansouri/matchboard/pkg/metrics"
)

// defaultMinuteMax is the cutoff used when none is configured.
const defaultMinuteMax = 90

// Service wires the match store and the analytics engine together.
// Every read recomputes its derived view from the current snapshot; the
// engine carries no cross-call state.
type Service struct {
	mu sync.RWMutex

	store     repository.Store
	seed      *model.Match
	minuteMax int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom match store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeedMatch loads an initial match snapshot on Start.
func WithSeedMatch(m model.Match) Option {
	return func(s *Service) {
		seed := m
		s.seed = &seed
	}
}

// WithDefaultMinuteMax sets the cutoff used when a request carries none.
func WithDefaultMinuteMax(minute int) Option {
	return func(s *Service) {
		if minute >= 0 {
			s.minuteMax = minute
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minuteMax: defaultMinuteMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.seed != nil {
		s.store.SetMatch(ctx, *s.seed)
		s.logger.Info(ctx, "seed match loaded",
			logger.Int("players", len(s.seed.Players)),
			logger.Int("events", len(s.seed.Events)),
		)
	}

	s.started = true
	s.logger.Info(ctx, "matchboard service started",
		logger.Int("defaultMinuteMax", s.minuteMax),
	)
	return nil
}

// Stop shuts the service down. The store is in-memory, so there is
// nothing to flush; the method exists for symmetry with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matchboard service stopped")
}

// DefaultMinuteMax returns the cutoff applied when a request has none.
func (s *Service) DefaultMinuteMax() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minuteMax
}

// MatchSnapshot returns the current match value.
func (s *Service) MatchSnapshot(ctx context.Context) (model.Match, bool) {
	return s.store.Snapshot(ctx)
}

// AddEvent appends a new event to the match log and returns the stored
// event with its server-assigned id.
func (s *Service) AddEvent(ctx context.Context, e model.Event) (model.Event, error) {
	saved, err := s.store.AppendEvent(ctx, e)
	if err != nil {
		return model.Event{}, err
	}
	s.logger.Debug(ctx, "event appended",
		logger.Int64("eventID", saved.ID),
		logger.Int64("playerID", saved.PlayerID),
		logger.String("type", string(saved.Type)),
		logger.Int("minute", saved.Minute),
	)
	return saved, nil
}

// Player returns the roster player with the given id.
func (s *Service) Player(ctx context.Context, id int64) (model.Player, error) {
	return s.store.Player(ctx, id)
}

// Rows computes the filtered, sorted row set for the given parameters.
// A missing match yields an empty set.
func (s *Service) Rows(ctx context.Context, minuteMax int, team view.TeamFilter, search string, key view.OrderKey) []view.Row {
	start := time.Now()
	defer func() {
		metrics.RecordRecomputeDuration("rows", float64(time.Since(start).Microseconds())/1000)
	}()

	m, ok := s.store.Snapshot(ctx)
	if !ok {
		return []view.Row{}
	}
	rows := view.Rows(&m, minuteMax)
	rows = view.Filter(rows, &m, team, search)
	return view.Sort(rows, key)
}

// PlayerCard returns one player's row at the given cutoff.
func (s *Service) PlayerCard(ctx context.Context, id int64, minuteMax int) (view.Row, error) {
	p, err := s.store.Player(ctx, id)
	if err != nil {
		return view.Row{}, err
	}
	m, _ := s.store.Snapshot(ctx)
	for _, r := range view.Rows(&m, minuteMax) {
		if r.ID == p.ID {
			return r, nil
		}
	}
	// unreachable while Rows covers the full roster
	return view.Row{}, repository.ErrPlayerNotFound
}

// Pitch computes the spatial model for the given cutoff and filters.
func (s *Service) Pitch(ctx context.Context, minuteMax int, team view.TeamFilter, search string) pitch.Model {
	start := time.Now()
	defer func() {
		metrics.RecordRecomputeDuration("pitch", float64(time.Since(start).Microseconds())/1000)
	}()

	m, ok := s.store.Snapshot(ctx)
	if !ok {
		return pitch.Compute(nil, minuteMax, team, search)
	}
	return pitch.Compute(&m, minuteMax, team, search)
}

// Series returns the player's rating trajectory up to minuteMax.
func (s *Service) Series(ctx context.Context, playerID int64, minuteMax int) ([]float64, error) {
	if _, err := s.store.Player(ctx, playerID); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		metrics.RecordRecomputeDuration("series", float64(time.Since(start).Microseconds())/1000)
	}()

	m, _ := s.store.Snapshot(ctx)
	return trend.Series(&m, playerID, minuteMax), nil
}

// Sparkline renders the player's rating trajectory as an inline SVG.
func (s *Service) Sparkline(ctx context.Context, playerID int64, minuteMax int) (string, error) {
	series, err := s.Series(ctx, playerID, minuteMax)
	if err != nil {
		return "", err
	}
	return spark.Build(series, minuteMax), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":          s.started,
		"defaultMinuteMax": s.minuteMax,
	}
	if s.started {
		stats["rosterSize"] = s.store.RosterSize(ctx)
		stats["eventCount"] = s.store.EventCount(ctx)
		if m, ok := s.store.Snapshot(ctx); ok {
			stats["matchID"] = m.ID
			stats["homeTeam"] = m.HomeTeam
			stats["awayTeam"] = m.AwayTeam
		}
	}
	return stats
}
