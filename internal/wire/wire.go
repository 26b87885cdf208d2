// Package wire provides dependency injection for the piste application.
// Build assembles the backend, record store and services for one process.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	cliadapter "github.com/example/piste/internal/adapters/cli"
	"github.com/example/piste/internal/adapters/filesystem"
	"github.com/example/piste/internal/adapters/logging"
	"github.com/example/piste/internal/adapters/memory"
	"github.com/example/piste/internal/adapters/persistence"
	"github.com/example/piste/internal/adapters/sqlite"
	"github.com/example/piste/internal/app"
	"github.com/example/piste/internal/config"
	"github.com/example/piste/internal/db"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// Container holds the services of one process.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Fencers     primary.FencerService
	Tournaments primary.TournamentService
	Entries     primary.EntryService
	Pools       primary.PoolService
	Bouts       primary.BoutService
	DEBouts     primary.DEBoutService
	Analytics   primary.AnalyticsService
	Storage     primary.StorageService
	Activity    primary.ActivityService

	conn *sql.DB
}

// Options tunes Build. Zero values use the process defaults.
type Options struct {
	LogOutput io.Writer        // diagnostics destination, defaults to io.Discard
	Now       func() time.Time // clock for timestamps and analytics
}

// Build opens the configured backend, loads the record store and creates all services.
func Build(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger, err := logging.NewLogger(opts.LogOutput, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger}

	kv, activityRepo, err := c.openBackend(cfg, opts.Now)
	if err != nil {
		return nil, err
	}

	store := persistence.NewRecordStore(kv, persistence.Options{KeyPrefix: cfg.KeyPrefix, Now: opts.Now})
	if err := store.Load(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	repos := store.Repositories()

	logWriter := logging.NewWriter(logger, activityRepo)
	executor := app.NewEffectExecutor(repos, logger)

	c.Fencers = app.NewFencerService(repos, logWriter, executor, logger)
	c.Tournaments = app.NewTournamentService(repos, logWriter, executor, logger)
	c.Entries = app.NewEntryService(repos, logWriter, executor, logger)
	c.Pools = app.NewPoolService(repos, logWriter, executor, logger)
	c.Bouts = app.NewBoutService(repos, logWriter, executor, logger)
	c.DEBouts = app.NewDEBoutService(repos, logWriter, executor, logger)
	c.Analytics = app.NewAnalyticsService(repos, opts.Now, logger)
	c.Storage = app.NewStorageService(cfg.Backend, store.Prefix(), kv, repos, logger)
	c.Activity = app.NewActivityService(activityRepo)

	logger.DebugContext(ctx, "container ready", "backend", cfg.Backend, "keys", len(store.Keys()))
	return c, nil
}

// openBackend selects the key-value store and activity log for the configured backend.
// Only the sqlite backend keeps the activity log across runs.
func (c *Container) openBackend(cfg *config.Config, now func() time.Time) (secondary.KeyValueStore, secondary.ActivityLogRepository, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		conn, err := db.Open(db.GetDBPath(cfg.DataDir))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		c.conn = conn
		return sqlite.NewKeyValueStore(conn), sqlite.NewActivityLogRepository(conn), nil
	case config.BackendFile:
		kv, err := filesystem.NewKeyValueStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, memory.NewActivityLog(now), nil
	case config.BackendMemory:
		return memory.NewKeyValueStore(cfg.QuotaBytes), memory.NewActivityLog(now), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (c *Container) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// FencerAdapter returns a new FencerAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (c *Container) FencerAdapter(out io.Writer) *cliadapter.FencerAdapter {
	return cliadapter.NewFencerAdapter(c.Fencers, out)
}

// TournamentAdapter returns a new TournamentAdapter writing to out.
func (c *Container) TournamentAdapter(out io.Writer) *cliadapter.TournamentAdapter {
	return cliadapter.NewTournamentAdapter(c.Tournaments, out)
}

// EntryAdapter returns a new EntryAdapter writing to out.
func (c *Container) EntryAdapter(out io.Writer) *cliadapter.EntryAdapter {
	return cliadapter.NewEntryAdapter(c.Entries, c.Pools, out)
}

// BoutAdapter returns a new BoutAdapter writing to out.
func (c *Container) BoutAdapter(out io.Writer) *cliadapter.BoutAdapter {
	return cliadapter.NewBoutAdapter(c.Bouts, c.DEBouts, out)
}

// AnalyticsAdapter returns a new AnalyticsAdapter writing to out.
func (c *Container) AnalyticsAdapter(out io.Writer) *cliadapter.AnalyticsAdapter {
	return cliadapter.NewAnalyticsAdapter(c.Analytics, out)
}

// StorageAdapter returns a new StorageAdapter writing to out.
func (c *Container) StorageAdapter(out io.Writer) *cliadapter.StorageAdapter {
	return cliadapter.NewStorageAdapter(c.Storage, c.Activity, out)
}
