package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/config"
	"github.com/GlebRadaev/groupvault/internal/handlers"
	"github.com/GlebRadaev/groupvault/internal/pg"
	"github.com/GlebRadaev/groupvault/internal/repo"
	"github.com/GlebRadaev/groupvault/internal/scheduler"
	"github.com/GlebRadaev/groupvault/internal/service"
	"github.com/GlebRadaev/groupvault/internal/service/ledgerservice"
	"github.com/GlebRadaev/groupvault/internal/service/requestservice"
	"github.com/GlebRadaev/groupvault/internal/tally"
	"github.com/GlebRadaev/groupvault/pkg/auth"
	"github.com/GlebRadaev/groupvault/pkg/clients"
	"github.com/GlebRadaev/groupvault/pkg/logger"
	"github.com/GlebRadaev/groupvault/pkg/notify"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	pool    *pgxpool.Pool
	workers *scheduler.WorkerPool
	gateway *scheduler.Gateway
	cron    *scheduler.Cron

	notifier      notify.Notifier
	closeNotifier func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.notifier, a.closeNotifier = buildNotifier(cfg)
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, a.notifier, serviceConfig(cfg))
	a.workers = scheduler.NewWorkerPool(cfg.WorkerPoolSize)
	a.gateway = scheduler.NewGateway(a.srv.RequestService, a.srv.ContributionService, a.workers)
	a.cron = scheduler.NewCron(cfg.SchedulerSpec, a.gateway)
	a.api = handlers.New(a.srv, a.gateway, auth.NewJWTService(cfg.JWTSecret), cfg.SchedulerToken)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func serviceConfig(cfg *config.Config) service.Config {
	return service.Config{
		Requests: requestservice.Config{
			Policies: tally.Policies{
				Withdrawal: tally.NewPolicy(cfg.WithdrawalApprovalPct, cfg.WithdrawalParticipationPct),
				Refund:     tally.NewPolicy(cfg.RefundApprovalPct, cfg.RefundParticipationPct),
			},
			WithdrawalWindow:   cfg.WithdrawalWindow,
			RefundWindow:       cfg.RefundWindow,
			RefundReasonMinLen: cfg.RefundReasonMinLen,
		},
		Ledger: ledgerservice.Options{
			WithdrawalFee: cfg.WithdrawalFee,
			Strict:        cfg.IsDevelopment(),
		},
		ContributionMaxFailures: cfg.ContributionMaxFailures,
	}
}

// buildNotifier publishes to RabbitMQ and/or a webhook when configured and
// always logs. An unreachable broker degrades to the remaining notifiers.
func buildNotifier(cfg *config.Config) (notify.Notifier, func()) {
	notifiers := notify.Multi{notify.LogNotifier{}}
	closeFn := func() {}

	if cfg.RabbitURL != "" {
		amqpNotifier, err := notify.DialAMQP(cfg.RabbitURL, cfg.NotifyExchange)
		if err != nil {
			zap.L().Error("rabbitmq unavailable, notifications will not be published", zap.Error(err))
		} else {
			notifiers = append(notifiers, amqpNotifier)
			closeFn = amqpNotifier.Close
		}
	}
	if cfg.NotifyWebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.NotifyWebhookURL, clients.NewHTTPClient()))
	}
	return notifiers, closeFn
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	if err := a.cron.Start(ctx); err != nil {
		return err
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		<-a.cron.Stop().Done()
		a.workers.Close()
		zap.L().Info("scheduler stopped")
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.closeNotifier != nil {
		a.closeNotifier()
	}
	if a.pool != nil {
		a.pool.Close()
	}

	return appErr
}
