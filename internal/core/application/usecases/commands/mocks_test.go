package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeSessions is a map-backed SessionRepository.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*session.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[kernel.UUID]*session.Session)}
}

func (f *fakeSessions) Add(_ context.Context, s *session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID()] = s
	return nil
}

func (f *fakeSessions) View(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	return f.with(id, fn)
}

func (f *fakeSessions) Update(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	return f.with(id, fn)
}

func (f *fakeSessions) with(id kernel.UUID, fn func(*session.Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return errs.NewObjectNotFoundError("session", id)
	}
	return fn(s)
}

func (f *fakeSessions) Remove(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return errs.NewObjectNotFoundError("session", id)
	}
	if err := fn(s); err != nil {
		return err
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) IdleSince(_ context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []kernel.UUID
	for id, s := range f.sessions {
		if s.IsIdleSince(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeSessions) get(id kernel.UUID) (*session.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	return s, ok
}

type MockIntentProposer struct{ mock.Mock }

func (m *MockIntentProposer) Propose(ctx context.Context, req ports.ProposalRequest) (intent.Batch, error) {
	args := m.Called(ctx, req)
	batch, _ := args.Get(0).(intent.Batch)
	return batch, args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOrderArchive struct{ mock.Mock }

func (m *MockOrderArchive) Archive(ctx context.Context, rec session.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockOrderArchive) Get(ctx context.Context, id kernel.UUID) (session.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(session.Record), args.Error(1)
}

type MockArchiveUoW struct{ mock.Mock }

func (m *MockArchiveUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchiveUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchiveUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchiveUoW) OrderArchive() ports.OrderArchive {
	args := m.Called()
	return args.Get(0).(ports.OrderArchive)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}

type testClock struct {
	mu sync.Mutex
	at time.Time
}

func newTestClock() *testClock {
	return &testClock{at: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	var items []menu.Item
	for _, spec := range []struct{ name, price, category string }{
		{"Big Mac", "5.00", "burger"},
		{"Large Fry", "3.00", "side"},
		{"Coke", "2.00", "drink"},
	} {
		item, err := menu.NewItem(spec.name, kernel.MustMoney(spec.price), spec.category)
		require.NoError(t, err)
		items = append(items, item)
	}
	catalog, err := menu.NewCatalog(items...)
	require.NoError(t, err)
	return catalog
}

func newEngine(t *testing.T, publisher ports.OrderEventPublisher) commands.OrderEngine {
	t.Helper()
	machine, err := services.NewOrderStateMachine(newCatalog(t))
	require.NoError(t, err)
	return commands.NewOrderEngine(machine, publisher, nil)
}

// startSession stores a new session and returns its ID.
func startSession(t *testing.T, repo *fakeSessions, clock *testClock) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	s, err := session.NewSession(id, clock.Now)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), s))
	return id
}

// applyIntents runs batch through an ApplyIntents handler without events.
func applyIntents(t *testing.T, repo *fakeSessions, id kernel.UUID, intents ...intent.Intent) commands.TurnResult {
	t.Helper()
	cmd, err := commands.NewApplyIntentsCommand(id, intent.NewBatch(intents...))
	require.NoError(t, err)
	h := commands.NewApplyIntentsCommandHandler(repo, newEngine(t, nil), nil)
	result, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return result
}
