package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/ethicalfolio-backend/internal/adapter/repository/memory"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	catalog := memory.NewCatalogRepository()
	service := NewService(memory.NewSessionRepository(), catalog, catalog)
	service.Now = func() time.Time { return testNow }
	return service
}

func TestStart_IdleDefaults(t *testing.T) {
	service := newTestService()

	session, err := service.Start(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, domain.ProfileBalanced, session.Profile)
	assert.True(t, session.Sectors.IsIdle())
	assert.True(t, session.Risks.IsIdle())
	assert.True(t, session.Segments.IsIdle())
	assert.Equal(t, testNow, session.UpdatedAt)

	got, err := service.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestGet_UnknownSession(t *testing.T) {
	service := newTestService()

	_, err := service.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplySectorEvent_HoverAndClick(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	steps := []struct {
		event  domain.SelectionEvent
		active string
	}{
		{domain.SelectionEvent{Type: domain.SelectionEventHoverEnter, ID: "renewable"}, "renewable"},
		{domain.SelectionEvent{Type: domain.SelectionEventHoverEnter, ID: "healthcare"}, "healthcare"},
		// Stale leave for the sector that lost emphasis
		{domain.SelectionEvent{Type: domain.SelectionEventHoverLeave, ID: "renewable"}, "healthcare"},
		{domain.SelectionEvent{Type: domain.SelectionEventClick, ID: "healthcare"}, ""},
		{domain.SelectionEvent{Type: domain.SelectionEventClick, ID: "education"}, "education"},
		{domain.SelectionEvent{Type: domain.SelectionEventReset}, ""},
	}

	for _, step := range steps {
		updated, err := service.ApplySectorEvent(ctx, session.ID, step.event)
		require.NoError(t, err, "event %s %s", step.event.Type, step.event.ID)
		assert.Equal(t, step.active, updated.Sectors.ActiveID, "after %s %s", step.event.Type, step.event.ID)
	}

	stored, err := service.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.Sectors.IsIdle())
}

func TestApplySectorEvent_Rejections(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	tests := []struct {
		name    string
		event   domain.SelectionEvent
		wantErr error
	}{
		{"unknown sector", domain.SelectionEvent{Type: domain.SelectionEventClick, ID: "tobacco"}, domain.ErrNotFound},
		{"missing id", domain.SelectionEvent{Type: domain.SelectionEventHoverEnter}, domain.ErrInvalidSelectionEvent},
		{"unknown type", domain.SelectionEvent{Type: "DRAG", ID: "renewable"}, domain.ErrInvalidSelectionEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ApplySectorEvent(ctx, session.ID, tt.event)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Leave events for unknown ids are harmless
	updated, err := service.ApplySectorEvent(ctx, session.ID, domain.SelectionEvent{Type: domain.SelectionEventHoverLeave, ID: "tobacco"})
	require.NoError(t, err)
	assert.True(t, updated.Sectors.IsIdle())
}

func TestApplySectorEvent_ProfileWithoutOwnBreakdown(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	_, err = service.SelectProfile(ctx, session.ID, domain.ProfileGrowth)
	require.NoError(t, err)

	updated, err := service.ApplySectorEvent(ctx, session.ID, domain.SelectionEvent{Type: domain.SelectionEventSelect, ID: "agriculture"})
	require.NoError(t, err)
	assert.Equal(t, "agriculture", updated.Sectors.ActiveID)
}

func TestApplyRiskEvent(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	updated, err := service.ApplyRiskEvent(ctx, session.ID, domain.SelectionEvent{Type: domain.SelectionEventHoverEnter, ID: "greenwashing-risk"})
	require.NoError(t, err)
	assert.Equal(t, "greenwashing-risk", updated.Risks.ActiveID)
	assert.True(t, updated.Sectors.IsIdle(), "sections keep independent selections")

	updated, err = service.ApplyRiskEvent(ctx, session.ID, domain.SelectionEvent{Type: domain.SelectionEventHoverLeave, ID: "greenwashing-risk"})
	require.NoError(t, err)
	assert.True(t, updated.Risks.IsIdle())

	_, err = service.ApplyRiskEvent(ctx, session.ID, domain.SelectionEvent{Type: domain.SelectionEventHoverEnter, ID: "weather-risk"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSelectSegment(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	updated, err := service.SelectSegment(ctx, session.ID, "family-offices")
	require.NoError(t, err)
	assert.Equal(t, "family-offices", updated.Segments.ActiveID)

	// Selecting the open segment again keeps it open
	updated, err = service.SelectSegment(ctx, session.ID, "family-offices")
	require.NoError(t, err)
	assert.Equal(t, "family-offices", updated.Segments.ActiveID)

	updated, err = service.SelectSegment(ctx, session.ID, "")
	require.NoError(t, err)
	assert.True(t, updated.Segments.IsIdle())

	_, err = service.SelectSegment(ctx, session.ID, "retirees")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSelectProfile(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	session, err := service.Start(ctx)
	require.NoError(t, err)

	later := testNow.Add(time.Minute)
	service.Now = func() time.Time { return later }

	updated, err := service.SelectProfile(ctx, session.ID, domain.ProfileCautious)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileCautious, updated.Profile)
	assert.Equal(t, later, updated.UpdatedAt)

	_, err = service.SelectProfile(ctx, session.ID, "reckless")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := service.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileCautious, stored.Profile, "failed updates leave the session untouched")
}

func TestUpdate_SaveError(t *testing.T) {
	ctx := context.Background()
	sessionRepo := new(MockSessionRepository)
	catalog := memory.NewCatalogRepository()
	service := NewService(sessionRepo, catalog, catalog)

	session := domain.NewSession(testNow)
	sessionRepo.On("Get", ctx, session.ID).Return(session, nil)
	sessionRepo.On("Update", ctx, mock.AnythingOfType("*domain.Session")).Return(errors.New("disk full"))

	_, err := service.SelectProfile(ctx, session.ID, domain.ProfileGrowth)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session: disk full")
	sessionRepo.AssertExpectations(t)
}

// sweepingSessionRepository expires every session right after it is read,
// the way a janitor sweep landing mid-update would
type sweepingSessionRepository struct {
	domain.SessionRepository
}

func (r *sweepingSessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := r.SessionRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.SessionRepository.DeleteIdleSince(ctx, session.UpdatedAt.Add(time.Hour)); err != nil {
		return nil, err
	}
	return session, nil
}

func TestUpdate_SessionExpiredMidUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionRepository()
	catalog := memory.NewCatalogRepository()
	service := NewService(&sweepingSessionRepository{SessionRepository: store}, catalog, catalog)
	service.Now = func() time.Time { return testNow }

	session, err := service.Start(ctx)
	require.NoError(t, err)

	_, err = service.SelectProfile(ctx, session.ID, domain.ProfileGrowth)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "expired sessions stay deleted")
}
