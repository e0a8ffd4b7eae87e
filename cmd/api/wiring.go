package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/handlers"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/routes"
)

// ======================================================
// INFRA (SINGLETONS)
// ======================================================

// buildDeps monta repositórios, lock, auditoria e métricas conforme a
// config. O cleanup devolvido fecha o que foi aberto, na ordem inversa.
func buildDeps(cfg *config.Config, logger zerolog.Logger) (routes.Deps, func(), error) {
	d := routes.Deps{
		Config:  cfg,
		Log:     logger,
		Metrics: metrics.New(),
		Health:  map[string]handlers.Pinger{},
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		d.Users = store.Users
		d.Services = store.Services
		d.Availability = store.Availability
		d.Appointments = store.Appointments
		d.AuditStore = audit.NewMemoryStore()

		logger.Warn().Msg("using in-memory storage; data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return routes.Deps{}, cleanup, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return routes.Deps{}, cleanup, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		closers = append(closers, func() { _ = sqlDB.Close() })

		useGorm(&d, db)
		d.Health["database"] = sqlDB.PingContext
	}

	locker, err := newLocker(cfg, &d, &closers)
	if err != nil {
		cleanup()
		return routes.Deps{}, func() {}, err
	}
	d.Locker = lock.WithWaitObserver(locker, d.Metrics.ObserveLockWait)

	d.Audit = audit.NewDispatcher(d.AuditStore)
	closers = append(closers, d.Audit.Close)

	return d, cleanup, nil
}

func useGorm(d *routes.Deps, db *gorm.DB) {
	d.Users = infraRepo.NewUserGormRepository(db)
	d.Services = infraRepo.NewCatalogGormRepository(db)
	d.Availability = infraRepo.NewAvailabilityGormRepository(db)
	d.Appointments = infraRepo.NewAppointmentGormRepository(db)
	d.AuditStore = audit.New(db)
}

// newLocker usa Redis quando REDIS_ADDR está definido, senão o lock em
// processo (uma única instância da API).
func newLocker(cfg *config.Config, d *routes.Deps, closers *[]func()) (lock.Locker, error) {
	if cfg.RedisAddr == "" {
		return lock.NewKeyed(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	*closers = append(*closers, func() { _ = client.Close() })
	d.Health["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}

	return lock.NewRedis(client, cfg.LockTTL), nil
}
