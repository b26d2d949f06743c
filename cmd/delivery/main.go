package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	deliveryapi "github.com/Techhackontime999/LinkUp-sub000/internal/api/handlers/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/handlers/notification"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/router"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/server"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/ws"
	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/grouping"
	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/persistence"
	"github.com/Techhackontime999/LinkUp-sub000/internal/presence"
	"github.com/Techhackontime999/LinkUp-sub000/internal/rabbitmq/handlers/flush"
	"github.com/Techhackontime999/LinkUp-sub000/internal/rabbitmq/queue"
	errlogrepo "github.com/Techhackontime999/LinkUp-sub000/internal/repository/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/repository/memory"
	messagerepo "github.com/Techhackontime999/LinkUp-sub000/internal/repository/message"
	notifrepo "github.com/Techhackontime999/LinkUp-sub000/internal/repository/notification"
	presencerepo "github.com/Techhackontime999/LinkUp-sub000/internal/repository/presence"
	queuerepo "github.com/Techhackontime999/LinkUp-sub000/internal/repository/queue"
	"github.com/Techhackontime999/LinkUp-sub000/internal/repository/schema"
	"github.com/Techhackontime999/LinkUp-sub000/internal/serialize"
	"github.com/Techhackontime999/LinkUp-sub000/internal/validate"
	"github.com/Techhackontime999/LinkUp-sub000/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	metrics.Register()

	repos, db := openStore(ctx, cfg)
	store := persistence.New(repos, persistence.Options{
		Workers:   cfg.Persistence.Workers,
		QueueSize: cfg.Persistence.QueueSize,
	})

	rec := errlog.NewRecorder(store)
	guard := serialize.NewGuard(rec)
	h := hub.New(cfg.Gateway.WriteTimeout)

	backoff, err := delivery.NewBackoff(cfg.Delivery.Backoff, cfg.Delivery.Strategy(), cfg.Delivery.MaxDelay)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid delivery backoff")
	}

	manager := delivery.NewManager(store, h, rec, delivery.Options{
		MaxRetries:  cfg.Delivery.MaxRetries,
		Backoff:     backoff,
		SweepBatch:  cfg.Delivery.SweepBatch,
		Concurrency: cfg.Workers.Count,
	})

	var cache presence.Cache
	if cfg.Redis.Enabled {
		dbNum, err := strconv.Atoi(cfg.Redis.Database)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
		}

		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
		if err = rdb.Ping(ctx).Err(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		cache = rdb
	}

	tracker := presence.NewTracker(store, cache, h, guard, rec, cfg.Retry)

	rules, err := grouping.RulesFrom(cfg.Grouping)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid grouping rules")
	}
	engine := grouping.NewEngine(store, h, guard, rules, nil)

	val := validator.New()
	gateway := ws.New(ws.Deps{
		Messages:      store,
		Delivery:      manager,
		Presence:      tracker,
		Notifications: engine,
		Hub:           h,
		Guard:         guard,
		Recorder:      rec,
		Validator:     validate.New(val),
	}, cfg.Gateway)

	r, err := router.New(cfg.Gateway, router.Handlers{
		Gateway:       gateway,
		Notifications: notification.NewHandler(engine, store, val),
		Deliveries:    deliveryapi.NewHandler(store),
	})
	if err != nil {
		rec.Record(ctx, errlog.Entry{
			Category: model.CategoryRoutingError,
			Severity: model.SeverityCritical,
			Message:  "invalid routing table",
			Err:      err,
		})
		zlog.Logger.Fatal().Err(err).Msg("failed to build router")
	}

	var wg sync.WaitGroup
	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	var closeBroker func()
	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		q, err := queue.NewDeliveryQueue(ch, cfg.RabbitMQ, cfg.Retry)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
		}

		manager.SetFlusher(q)
		manager.SetFailureSink(q)

		flusher := worker.NewFlusher(q, flush.NewHandler(manager))
		wg.Add(1)
		go func() {
			defer wg.Done()
			flusher.Run(workerCtx, cfg.Retry, cfg.Workers.Count)
		}()

		closeBroker = func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}
			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}
	} else {
		scheduler := delivery.NewLocalScheduler(manager, cfg.Delivery.SweepBatch)
		manager.SetFlusher(scheduler)

		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.Run(workerCtx, cfg.Workers.Count)
		}()
	}

	sweeper := worker.NewSweeper(manager, engine)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Run(workerCtx, cfg.Delivery.SweepInterval)
	}()

	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("listening")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	cancelWorkers()
	wg.Wait()

	if closeBroker != nil {
		closeBroker()
	}

	store.Close()

	if db != nil {
		if err := db.Master.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close master DB")
		}
		for i, s := range db.Slaves {
			if err := s.Close(); err != nil {
				zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
			}
		}
	}
}

// openStore returns the repositories selected by the storage driver. The
// database handle is nil for the in-memory store.
func openStore(ctx context.Context, cfg *config.Config) (persistence.Repositories, *dbpg.DB) {
	if cfg.Storage.Driver == "memory" {
		zlog.Logger.Warn().Msg("using in-memory store, state is lost on restart")
		return memory.New().Repositories(), nil
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := schema.Migrate(ctx, db); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	return persistence.Repositories{
		Messages:      messagerepo.NewRepository(db),
		Queue:         queuerepo.NewRepository(db),
		Notifications: notifrepo.NewRepository(db),
		Presence:      presencerepo.NewRepository(db),
		Errors:        errlogrepo.NewRepository(db),
	}, db
}
