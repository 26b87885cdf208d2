package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/example/piste/internal/adapters/memory"
	"github.com/example/piste/internal/adapters/persistence"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	mu      sync.Mutex
	entries []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return m.record("create " + entityType + " " + entityID)
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID string) error {
	return m.record("update " + entityType + " " + entityID)
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string, cascaded int) error {
	return m.record("delete " + entityType + " " + entityID)
}

func (m *mockLogWriter) record(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, s)
	return m.err
}

// failingKV wraps the memory store and rejects writes while failSet is true,
// or to the keys listed in failKeys.
type failingKV struct {
	*memory.KeyValueStore
	failSet  bool
	failKeys map[string]bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet || f.failKeys[key] {
		return errors.New("quota exceeded")
	}
	return f.KeyValueStore.Set(ctx, key, value)
}

var _ secondary.LogWriter = (*mockLogWriter)(nil)

// ============================================================================
// Test Fixture
// ============================================================================

// testEnv wires every service to one in-memory record store.
type testEnv struct {
	kv        *failingKV
	repos     secondary.Repositories
	logWriter *mockLogWriter

	fencers     *FencerServiceImpl
	tournaments *TournamentServiceImpl
	entries     *EntryServiceImpl
	pools       *PoolServiceImpl
	bouts       *BoutServiceImpl
	deBouts     *DEBoutServiceImpl
	analytics   *AnalyticsServiceImpl
	storage     *StorageServiceImpl
}

var testNow = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOn(t, &failingKV{KeyValueStore: memory.NewKeyValueStore(0)})
}

// newTestEnvOn wires the services to a record store loaded from kv,
// as a fresh process would.
func newTestEnvOn(t *testing.T, kv *failingKV) *testEnv {
	t.Helper()

	store := persistence.NewRecordStore(kv, persistence.Options{Now: func() time.Time { return testNow }})
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load record store: %v", err)
	}
	repos := store.Repositories()
	logger := slog.New(slog.DiscardHandler)
	logWriter := &mockLogWriter{}
	executor := NewEffectExecutor(repos, logger)

	return &testEnv{
		kv:          kv,
		repos:       repos,
		logWriter:   logWriter,
		fencers:     NewFencerService(repos, logWriter, executor, logger),
		tournaments: NewTournamentService(repos, logWriter, executor, logger),
		entries:     NewEntryService(repos, logWriter, executor, logger),
		pools:       NewPoolService(repos, logWriter, executor, logger),
		bouts:       NewBoutService(repos, logWriter, executor, logger),
		deBouts:     NewDEBoutService(repos, logWriter, executor, logger),
		analytics:   NewAnalyticsService(repos, func() time.Time { return testNow }, logger),
		storage:     NewStorageService("memory", persistence.DefaultKeyPrefix, kv, repos, logger),
	}
}

// aliceGraph holds the ids created by seedAlice.
type aliceGraph struct {
	fencer, tournament, entry, pool string
	bouts                           []string
	deBout                          string
}

// seedAlice creates Alice at the Regional Open with pool 1 (5-3 win, 4-5 loss)
// and one DE bout.
func (e *testEnv) seedAlice(t *testing.T) aliceGraph {
	t.Helper()
	ctx := context.Background()
	var g aliceGraph

	f := mustWrite(e.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Alice", PrimaryWeapon: "foil"}))(t)
	g.fencer = f.ID

	tr := mustWrite(e.tournaments.AddTournament(ctx, primary.AddTournamentRequest{Name: "Regional Open", StartDate: "2023-03-01"}))(t)
	g.tournament = tr.ID

	en := mustWrite(e.entries.AddEntry(ctx, primary.AddEntryRequest{FencerID: g.fencer, TournamentID: g.tournament, Weapon: "F"}))(t)
	g.entry = en.ID

	p := mustWrite(e.pools.AddPool(ctx, primary.AddPoolRequest{EntryID: g.entry, PoolNumber: 1, NumberOfFencers: 7}))(t)
	g.pool = p.ID

	for _, score := range [][2]int{{5, 3}, {4, 5}} {
		b := mustWrite(e.bouts.AddBout(ctx, primary.AddBoutRequest{
			PoolID: g.pool, OpponentName: "Opponent", ScoreFor: score[0], ScoreAgainst: score[1],
		}))(t)
		g.bouts = append(g.bouts, b.ID)
	}

	d := mustWrite(e.deBouts.AddDEBout(ctx, primary.AddDEBoutRequest{
		EntryID: g.entry, Round: 16, OpponentName: "Cleo", ScoreFor: 15, ScoreAgainst: 11,
	}))(t)
	g.deBout = d.ID

	return g
}

// mustWrite unwraps a write result, failing the test on error or warnings.
// Usage: mustWrite(svc.AddX(ctx, req))(t)
func mustWrite[T any](res *primary.WriteResult[T], err error) func(t *testing.T) *T {
	return func(t *testing.T) *T {
		t.Helper()
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if len(res.Warnings) > 0 {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
		return res.Record
	}
}

func assertValidation(t *testing.T, err error, contains string) {
	t.Helper()
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), contains) {
		t.Errorf("error %q should contain %q", err.Error(), contains)
	}
}
