// Package app wires configuration, adapters and services into one graph
// shared by the server and corctl.
package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"corengine/internal/adapters/memory"
	pg "corengine/internal/adapters/postgres"
	redisadapter "corengine/internal/adapters/redis"
	"corengine/internal/config"
	"corengine/internal/ports"
	auditorsvc "corengine/internal/services/auditors"
	auditsvc "corengine/internal/services/audits"
	certsvc "corengine/internal/services/certificates"
	cyclesvc "corengine/internal/services/cycle"
	defsvc "corengine/internal/services/deficiencies"
)

type App struct {
	Audits       *auditsvc.Service
	Certificates *certsvc.Service
	Auditors     *auditorsvc.Service
	Deficiencies *defsvc.Service
	Cycle        *cyclesvc.Service

	// DB is nil when running on the memory store.
	DB *pg.DB

	closers []func()
}

// Build opens the configured store and, when REDIS_ADDR is set, the redis
// sequence allocator and locker.
func Build(ctx context.Context, cfg config.Config, log *logrus.Logger) (*App, error) {
	return BuildWithClock(ctx, cfg, log, clockwork.NewRealClock())
}

func BuildWithClock(ctx context.Context, cfg config.Config, log *logrus.Logger, clock clockwork.Clock) (*App, error) {
	a := &App{}

	var (
		store ports.Store
		seq   ports.SequenceAllocator
		locks ports.Locker
	)
	switch cfg.Store {
	case "memory":
		mem := memory.New()
		store, seq = mem, mem
		log.Warn("using in-memory store; data is lost on exit")
	default:
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.DB = db
		a.closers = append(a.closers, db.Close)
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx, "up", log); err != nil {
				a.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		store, seq = db, db
	}

	if cfg.RedisAddr != "" {
		rdb, err := redisadapter.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		seeder, ok := store.(redisadapter.SequenceSeeder)
		if !ok {
			a.Close()
			return nil, fmt.Errorf("store %T cannot seed audit sequences", store)
		}
		seq = redisadapter.NewSequenceAllocator(rdb, seeder)
		locks = redisadapter.NewLocker(rdb, cfg.LockTTL)
		log.WithField("redis_addr", cfg.RedisAddr).Info("redis sequences and locks enabled")
	} else {
		locks = memory.NewLocker()
	}

	a.Audits = auditsvc.New(store, seq, store, locks, clock, log)
	a.Certificates = certsvc.New(store, clock, log)
	a.Auditors = auditorsvc.New(store, clock, log)
	a.Deficiencies = defsvc.New(store, store, clock, log)
	a.Cycle = cyclesvc.New(store, store, clock, log,
		cyclesvc.RemediationContributor{Deficiencies: store, Clock: clock})
	return a, nil
}

// Close releases adapters in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
