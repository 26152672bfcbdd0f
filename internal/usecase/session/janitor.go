package session

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// Janitor prunes sessions that have been idle longer than the TTL
type Janitor struct {
	cron *cron.Cron
	repo domain.SessionRepository
	ttl  time.Duration
	now  func() time.Time
	log  zerolog.Logger
}

// NewJanitor creates a janitor for repo. It does nothing until Start.
func NewJanitor(repo domain.SessionRepository, ttl time.Duration, log zerolog.Logger) *Janitor {
	return &Janitor{
		cron: cron.New(),
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
		log:  log.With().Str("component", "session_janitor").Logger(),
	}
}

// Schedule registers the sweep with a cron schedule, e.g. "@every 5m"
func (j *Janitor) Schedule(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if _, err := j.Sweep(context.Background()); err != nil {
			j.log.Error().Err(err).Msg("Session sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.log.Info().
		Str("schedule", schedule).
		Dur("ttl", j.ttl).
		Msg("Session sweep registered")
	return nil
}

// Start starts the cron scheduler
func (j *Janitor) Start() {
	j.cron.Start()
	j.log.Info().Msg("Session janitor started")
}

// Stop stops the scheduler and waits for a running sweep to finish
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.log.Info().Msg("Session janitor stopped")
}

// Sweep removes every session idle since now - TTL and returns how many were removed
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	removed, err := j.repo.DeleteIdleSince(ctx, j.now().Add(-j.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		j.log.Debug().Int("removed", removed).Msg("Pruned idle sessions")
	}
	return removed, nil
}
