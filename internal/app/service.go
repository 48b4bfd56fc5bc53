// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	repository "github.com/carpilot/carpilot/internal/adapters/repository"
	"github.com/carpilot/carpilot/internal/domain/explain"
	"github.com/carpilot/carpilot/internal/domain/model"
	"github.com/carpilot/carpilot/internal/domain/query"
	"github.com/carpilot/carpilot/internal/domain/scoring"
	"github.com/carpilot/carpilot/internal/domain/types"
	"github.com/carpilot/carpilot/internal/domain/weights"
	"github.com/carpilot/carpilot/pkg/logger"
	"github.com/carpilot/carpilot/pkg/metrics"
)

// Default request limits, overridable via options.
const (
	defaultTopK = 100
	defaultMaxK = 500
)

// Service implements the recommendation pipeline behind the HTTP API.
// The dataset store is read-only between reloads, so Recommend is safe for
// concurrent use.
type Service struct {
	mu sync.RWMutex

	store       repository.Store
	datasetPath string
	defaultTopK int
	maxTopK     int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a dataset store, replacing the default CSV store.
// Tests use this to run against small synthetic tables.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDatasetPath sets the CSV dataset path for the default store.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithDefaultTopK sets the result count used when a request omits top_k.
func WithDefaultTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.defaultTopK = k
		}
	}
}

// WithMaxTopK caps the result count a request may ask for.
func WithMaxTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.maxTopK = k
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultTopK: defaultTopK,
		maxTopK:     defaultMaxK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset. A schema mismatch fails here, not per request.
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
		start := time.Now()
		store, err := repository.NewCSVStore(ctx, repository.WithPath(s.datasetPath))
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		s.store = store
		metrics.RecordDatasetReload(float64(time.Since(start).Milliseconds()))
	}
	metrics.UpdateDatasetRows(s.store.Count(ctx))

	s.started = true
	s.logger.Info(ctx, "carpilot service started",
		logger.Int("datasetRows", s.store.Count(ctx)),
		logger.Int("defaultTopK", s.defaultTopK),
		logger.Int("maxTopK", s.maxTopK),
	)
	return nil
}

// Stop releases service resources. The CSV store holds none beyond memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "carpilot service stopped")
}

// Recommend runs the full pipeline for one query: parse, resolve weights,
// filter/score/rank, slice top-K, and explain the best match. It is
// deterministic and idempotent for a fixed dataset snapshot.
func (s *Service) Recommend(ctx context.Context, queryText string, topK int) (types.Recommendation, error) {
	start := time.Now()

	if strings.TrimSpace(queryText) == "" {
		return types.Recommendation{}, ErrMissingQuery
	}
	if topK < 1 {
		topK = s.defaultTopK
	}
	if topK > s.maxTopK {
		topK = s.maxTopK
	}

	rec := query.Parse(queryText)
	for _, intent := range rec.Intents {
		metrics.RecordIntentDetected(intent)
	}

	wv := weights.Resolve(rec.Intents)
	ranked := scoring.Rank(s.store.Cars(ctx), wv, scoring.FromIntentRecord(rec))
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	out := types.Recommendation{Results: make([]types.ResultItem, 0, len(ranked))}
	for _, car := range ranked {
		out.Results = append(out.Results, resultItem(car, rec))
	}
	if len(ranked) > 0 {
		suggestion := explain.Suggest(ranked[0], queryText, rec)
		out.Suggestion = &suggestion
	}

	metrics.RecordRecommendServed(float64(time.Since(start).Milliseconds()), len(out.Results))
	s.logger.Debug(ctx, "served recommendation",
		logger.String("query", queryText),
		logger.Any("intents", rec.Intents),
		logger.Int("results", len(out.Results)),
	)
	return out, nil
}

// resultItem converts a scored row into the API shape, including the
// semicolon-joined audit trail of intents, score, price, seats and any
// echoed constraints.
func resultItem(car model.ScoredCar, rec model.IntentRecord) types.ResultItem {
	reasonParts := []string{
		"Intent: " + strings.Join(rec.Intents, ", "),
		fmt.Sprintf("Score: %.3f", car.FinalScore),
		"Price (min): " + explain.FormatPrice(car.PriceMinLakh),
		fmt.Sprintf("Seats: %d", car.Seats),
	}
	if rec.Budget != nil {
		reasonParts = append(reasonParts, "Budget ≤ "+explain.FormatPrice(*rec.Budget))
	}
	if rec.MinSeats != nil {
		reasonParts = append(reasonParts, fmt.Sprintf("Seats ≥ %d", *rec.MinSeats))
	}

	return types.ResultItem{
		Name:          car.Name,
		Brand:         car.Brand,
		FinalScore:    car.FinalScore,
		PriceMinLakh:  car.PriceMinLakh,
		Seats:         car.Seats,
		PowerBHP:      car.PowerBHP,
		MileageKMPL:   car.MileageKMPL,
		SafetyRating:  car.SafetyRating,
		FuelType:      car.FuelType,
		BodyType:      car.BodyType,
		ResaleValue5Y: car.ResaleValue5Y,
		Year:          car.Year,
		Reason:        strings.Join(reasonParts, "; "),
	}
}

// ReloadDataset swaps in a fresh dataset table atomically.
func (s *Service) ReloadDataset(ctx context.Context) error {
	start := time.Now()
	if err := s.store.Reload(ctx); err != nil {
		metrics.RecordError("repository", "reload")
		return fmt.Errorf("reload dataset: %w", err)
	}
	metrics.RecordDatasetReload(float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetRows(s.store.Count(ctx))
	s.logger.Info(ctx, "dataset reloaded", logger.Int("rows", s.store.Count(ctx)))
	return nil
}

// DatasetCount returns the number of rows in the current dataset snapshot.
func (s *Service) DatasetCount(ctx context.Context) int {
	return s.store.Count(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"defaultTopK": s.defaultTopK,
		"maxTopK":     s.maxTopK,
	}
	if s.started {
		stats["datasetRows"] = s.store.Count(context.Background())
	}
	return stats
}
