package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// probeKeySuffix names the scratch key written by CheckStorage.
const probeKeySuffix = "__storage_test__"

// StorageServiceImpl implements the StorageService interface.
type StorageServiceImpl struct {
	backend   string
	keyPrefix string
	kv        secondary.KeyValueStore
	repos     secondary.Repositories
	logger    *slog.Logger
}

// NewStorageService creates a new StorageService.
// backend is the configured backend name, reported by CheckStorage.
func NewStorageService(backend, keyPrefix string, kv secondary.KeyValueStore, repos secondary.Repositories, logger *slog.Logger) *StorageServiceImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StorageServiceImpl{
		backend:   backend,
		keyPrefix: keyPrefix,
		kv:        kv,
		repos:     repos,
		logger:    logger,
	}
}

// CheckStorage probes the backend with a write, read and remove of a test key.
// A failed probe is reported in the result, not as an error.
func (s *StorageServiceImpl) CheckStorage(ctx context.Context) (*primary.StorageReport, error) {
	report := &primary.StorageReport{Backend: s.backend}

	if err := s.probe(ctx); err != nil {
		s.logger.WarnContext(ctx, "storage probe failed", "backend", s.backend, "error", err)
		report.Error = err.Error()
	} else {
		report.Writable = true
	}

	keys, err := s.kv.Keys(ctx, s.keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage keys: %w", err)
	}
	report.Keys = keys

	snap, err := s.repos.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	report.Counts = map[string]int{
		models.EntityFencer:     len(snap.Fencers),
		models.EntityTournament: len(snap.Tournaments),
		models.EntityEntry:      len(snap.Entries),
		models.EntityPool:       len(snap.Pools),
		models.EntityBout:       len(snap.Bouts),
		models.EntityDEBout:     len(snap.DEBouts),
	}
	return report, nil
}

func (s *StorageServiceImpl) probe(ctx context.Context) error {
	key := s.keyPrefix + probeKeySuffix
	if err := s.kv.Set(ctx, key, "test"); err != nil {
		return err
	}
	value, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || value != "test" {
		return fmt.Errorf("read back %q (found=%v), want %q", value, found, "test")
	}
	return s.kv.Remove(ctx, key)
}

// DumpStorage renders every collection as "json" or "yaml".
func (s *StorageServiceImpl) DumpStorage(ctx context.Context, format string) ([]byte, error) {
	snap, err := s.repos.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap = withEmptyCollections(snap)

	switch strings.ToLower(format) {
	case "", "json":
		return json.MarshalIndent(snap, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(snap)
	default:
		return nil, fmt.Errorf("%w: unknown dump format %q (want json or yaml)", models.ErrValidation, format)
	}
}

// ClearStorage removes every collection from memory and the backend.
// Every collection is cleared even if an earlier one fails.
func (s *StorageServiceImpl) ClearStorage(ctx context.Context) error {
	clears := []func(context.Context) error{
		s.repos.Bouts.Clear,
		s.repos.DEBouts.Clear,
		s.repos.Pools.Clear,
		s.repos.Entries.Clear,
		s.repos.Tournaments.Clear,
		s.repos.Fencers.Clear,
	}

	var firstErr error
	for _, clearFn := range clears {
		if err := clearFn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to clear storage: %w", firstErr)
	}

	s.logger.InfoContext(ctx, "storage cleared", "backend", s.backend)
	return nil
}

func withEmptyCollections(snap models.Snapshot) models.Snapshot {
	if snap.Fencers == nil {
		snap.Fencers = []models.Fencer{}
	}
	if snap.Tournaments == nil {
		snap.Tournaments = []models.Tournament{}
	}
	if snap.Entries == nil {
		snap.Entries = []models.Entry{}
	}
	if snap.Pools == nil {
		snap.Pools = []models.Pool{}
	}
	if snap.Bouts == nil {
		snap.Bouts = []models.Bout{}
	}
	if snap.DEBouts == nil {
		snap.DEBouts = []models.DEBout{}
	}
	return snap
}

// Ensure StorageServiceImpl implements the interface
var _ primary.StorageService = (*StorageServiceImpl)(nil)
