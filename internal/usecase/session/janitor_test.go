package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/ethicalfolio-backend/internal/adapter/repository/memory"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

func TestJanitor_Sweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	fresh := domain.NewSession(testNow.Add(-10 * time.Minute))
	stale := domain.NewSession(testNow.Add(-2 * time.Hour))
	require.NoError(t, repo.Save(ctx, fresh))
	require.NoError(t, repo.Save(ctx, stale))

	janitor := NewJanitor(repo, 30*time.Minute, zerolog.Nop())
	janitor.now = func() time.Time { return testNow }

	removed, err := janitor.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestJanitor_SweepUsesCutoff(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSessionRepository)
	janitor := NewJanitor(repo, 30*time.Minute, zerolog.Nop())
	janitor.now = func() time.Time { return testNow }

	repo.On("DeleteIdleSince", ctx, testNow.Add(-30*time.Minute)).Return(0, errors.New("timeout"))

	_, err := janitor.Sweep(ctx)

	assert.EqualError(t, err, "timeout")
	repo.AssertExpectations(t)
}

func TestJanitor_Schedule(t *testing.T) {
	janitor := NewJanitor(memory.NewSessionRepository(), time.Minute, zerolog.Nop())

	assert.NoError(t, janitor.Schedule("@every 5m"))
	assert.Error(t, janitor.Schedule("every now and then"))

	janitor.Start()
	janitor.Stop()
}
