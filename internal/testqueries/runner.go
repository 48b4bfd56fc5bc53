package testqueries

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carpilot/carpilot/pkg/logger"
)

// Stats aggregates the outcome of one run.
type Stats struct {
	RunID     string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Queries   int
	Passed    int
	Failed    int
	Problems  []string

	mu sync.Mutex
}

func (s *Stats) record(name string, problems []error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(problems) == 0 {
		s.Passed++
		return
	}
	s.Failed++
	for _, p := range problems {
		s.Problems = append(s.Problems, name+": "+p.Error())
	}
}

// Run executes the complete query test against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
		Queries:   len(CannedQueries),
	}

	logger.Get().Info(ctx, "starting carpilot query test",
		logger.String("runID", stats.RunID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("queries", len(CannedQueries)),
		logger.Int("workers", config.Workers),
		logger.Int("topK", config.TopK))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	sem := make(chan struct{}, config.Workers)
	var wg sync.WaitGroup
	for _, q := range CannedQueries {
		wg.Add(1)
		go func(q TestQuery) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			runQuery(ctx, config, q, stats)
		}(q)
	}
	wg.Wait()

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d queries failed verification", stats.Failed, stats.Queries)
	}
	return nil
}

// runQuery submits one query twice: the first response is verified against
// the ranking invariants, the second against the first for idempotence.
func runQuery(ctx context.Context, config *Config, q TestQuery, stats *Stats) {
	first, err := postRecommend(ctx, config, q.Query)
	if err != nil {
		stats.record(q.Name, []error{err})
		return
	}
	second, err := postRecommend(ctx, config, q.Query)
	if err != nil {
		stats.record(q.Name, []error{err})
		return
	}

	problems := verifyResponse(q, first)
	problems = append(problems, verifyIdempotence(first, second)...)
	stats.record(q.Name, problems)

	if config.Verbose {
		logger.Get().Info(ctx, "query checked",
			logger.String("name", q.Name),
			logger.Int("results", len(first.Results)),
			logger.Int("problems", len(problems)))
	}
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "query test finished",
		logger.String("runID", stats.RunID),
		logger.Int("queries", stats.Queries),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()))
	for _, p := range stats.Problems {
		logger.Get().Error(ctx, "verification problem", logger.String("detail", p))
	}
}
