package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-donation-wallet/internal/facades"
	"github.com/sbilibin2017/gw-donation-wallet/internal/health"
	"github.com/sbilibin2017/gw-donation-wallet/internal/locks"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-donation-wallet/internal/repositories/memory"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
	"github.com/sbilibin2017/gw-donation-wallet/migrations"
)

// dependencies are the infrastructure adapters selected by configuration.
type dependencies struct {
	users       services.UserStore
	wallets     services.WalletStore
	projects    services.ProjectStore
	donations   services.DonationStore
	topUps      services.TopUpStore
	links       services.LinkedAccountStore
	tx          services.Transactor
	locker      services.UserLocker
	idempotency services.IdempotencyStore
	events      services.KafkaWriter

	checks  map[string]health.CheckFunc
	closers []func() error
}

func newDependencies(ctx context.Context, cfg appConfig) (_ *dependencies, err error) {
	deps := &dependencies{checks: make(map[string]health.CheckFunc)}
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	switch cfg.StorageDriver {
	case driverPostgres:
		if err := deps.openPostgres(ctx, cfg.Postgres); err != nil {
			return nil, err
		}
	default:
		deps.openMemory()
	}

	var rdb *redis.Client
	if cfg.needsRedis() {
		if rdb, err = deps.openRedis(ctx, cfg.Redis); err != nil {
			return nil, err
		}
	}

	if cfg.LockDriver == driverRedis {
		deps.locker, err = locks.NewRedisLocker(rdb, locks.RedisLockerOptions{
			Expiry:     cfg.LockExpiry,
			Tries:      cfg.LockTries,
			RetryDelay: locks.DefaultRedisLockerOptions().RetryDelay,
		})
		if err != nil {
			return nil, err
		}
	} else {
		deps.locker = locks.NewKeyedMutex()
	}

	if cfg.IdempotencyDriver == driverRedis {
		deps.idempotency = repositories.NewIdempotencyRepository(rdb, cfg.IdempotencyTTL)
	} else {
		deps.idempotency = memory.NewIdempotencyStore(cfg.IdempotencyTTL)
	}

	if len(cfg.KafkaBrokers) > 0 {
		pubCfg := facades.DefaultEventPublisherConfig()
		pubCfg.PoolSize = cfg.EventsPoolSize
		publisher, err := facades.NewEventPublisher(facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), pubCfg)
		if err != nil {
			return nil, fmt.Errorf("kafka publisher: %w", err)
		}
		deps.events = publisher
		deps.closers = append(deps.closers, publisher.Close)
		logger.Log.Infow("publishing transaction events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	return deps, nil
}

func (d *dependencies) openPostgres(ctx context.Context, cfg postgresConfig) error {
	if cfg.Migrate {
		if err := repositories.RunMigrations(cfg.DSN(), migrations.FS); err != nil {
			return err
		}
		logger.Log.Info("database migrations applied")
	}

	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Host, "port", cfg.Port, "db", cfg.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	d.closers = append(d.closers, db.Close)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	txGetter := repositories.TxFromContext
	d.users = repositories.NewUserRepository(db, txGetter)
	d.wallets = repositories.NewWalletRepository(db, txGetter)
	d.projects = repositories.NewProjectRepository(db, txGetter)
	d.donations = repositories.NewDonationRepository(db, txGetter)
	d.topUps = repositories.NewTopUpRepository(db, txGetter)
	d.links = repositories.NewLinkedAccountRepository(db, txGetter)
	d.tx = repositories.NewTxManager(db)
	d.checks[driverPostgres] = db.PingContext
	return nil
}

func (d *dependencies) openMemory() {
	logger.Log.Warn("using in-memory storage, data is lost on restart")
	store := memory.NewStore()
	d.users = memory.NewUserRepository(store)
	d.wallets = memory.NewWalletRepository(store)
	d.projects = memory.NewProjectRepository(store)
	d.donations = memory.NewDonationRepository(store)
	d.topUps = memory.NewTopUpRepository(store)
	d.links = memory.NewLinkedAccountRepository(store)
	d.tx = store
}

func (d *dependencies) openRedis(ctx context.Context, cfg redisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
	d.closers = append(d.closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	d.checks[driverRedis] = func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
	return rdb, nil
}

// Close releases every adapter in reverse order of creation.
func (d *dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	if err := errors.Join(errs...); err != nil {
		logger.Log.Errorw("failed to release resources", "error", err)
		return err
	}
	return nil
}
