// Package scheduler resolves expired requests and runs due scheduled
// contributions, either on a cron schedule or on demand.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/service/contributionservice"
	"github.com/GlebRadaev/groupvault/pkg/metrics"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=scheduler

type Resolver interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ResolveOne(ctx context.Context, requestID uuid.UUID, now time.Time) (*domain.WithdrawalRequest, error)
}

type Contributor interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	RunScheduled(ctx context.Context, id uuid.UUID, now time.Time) (contributionservice.Outcome, error)
}

type RunOptions struct {
	DeadlinesOnly bool `json:"deadlines_only"`
}

type Report struct {
	Resolved             int `json:"resolved"`
	ResolveErrors        int `json:"resolve_errors"`
	Contributions        int `json:"contributions"`
	ContributionFailures int `json:"contribution_failures"`
	ContributionErrors   int `json:"contribution_errors"`
	Deactivated          int `json:"deactivated_contributions"`
}

const (
	jobDeadlines     = "deadlines"
	jobContributions = "contributions"
)

type Gateway struct {
	resolver    Resolver
	contributor Contributor
	workerPool  WorkerPoolI
	limit       int
	now         func() time.Time

	// ids currently queued or running, shared by overlapping runs
	inFlight sync.Map
}

func NewGateway(resolver Resolver, contributor Contributor, workerPool WorkerPoolI) *Gateway {
	return &Gateway{
		resolver:    resolver,
		contributor: contributor,
		workerPool:  workerPool,
		limit:       1000,
		now:         time.Now,
	}
}

// Run processes everything due at the time of the call. Items already being
// processed by an overlapping run are skipped, so repeated calls are safe.
func (g *Gateway) Run(ctx context.Context, opts RunOptions) (Report, error) {
	now := g.now()
	var resolved, resolveErrs atomic.Int64
	var contributed, short, deactivated, cErrs atomic.Int64

	var eg errgroup.Group
	eg.Go(func() error {
		timer := prometheus.NewTimer(metrics.SchedulerRunDuration.WithLabelValues(jobDeadlines))
		defer timer.ObserveDuration()

		ids, err := g.resolver.ListDue(ctx, now, g.limit)
		if err != nil {
			zap.L().Error("Failed to fetch expired requests", zap.Error(err))
			return err
		}
		return g.dispatch(ctx, jobDeadlines, ids, func(id uuid.UUID) error {
			req, err := g.resolver.ResolveOne(ctx, id, now)
			switch {
			case err != nil:
				resolveErrs.Add(1)
				metrics.SchedulerItems.WithLabelValues(jobDeadlines, "error").Inc()
			case req != nil:
				resolved.Add(1)
				metrics.SchedulerItems.WithLabelValues(jobDeadlines, string(req.Status)).Inc()
			}
			return err
		})
	})

	if !opts.DeadlinesOnly {
		eg.Go(func() error {
			timer := prometheus.NewTimer(metrics.SchedulerRunDuration.WithLabelValues(jobContributions))
			defer timer.ObserveDuration()

			ids, err := g.contributor.ListDue(ctx, now, g.limit)
			if err != nil {
				zap.L().Error("Failed to fetch due contributions", zap.Error(err))
				return err
			}
			return g.dispatch(ctx, jobContributions, ids, func(id uuid.UUID) error {
				outcome, err := g.contributor.RunScheduled(ctx, id, now)
				if err != nil {
					cErrs.Add(1)
					metrics.SchedulerItems.WithLabelValues(jobContributions, "error").Inc()
					return err
				}
				switch outcome {
				case contributionservice.OutcomeContributed:
					contributed.Add(1)
				case contributionservice.OutcomeShort:
					short.Add(1)
				case contributionservice.OutcomeDeactivated:
					short.Add(1)
					deactivated.Add(1)
				}
				metrics.SchedulerItems.WithLabelValues(jobContributions, string(outcome)).Inc()
				return nil
			})
		})
	}

	err := eg.Wait()
	report := Report{
		Resolved:             int(resolved.Load()),
		ResolveErrors:        int(resolveErrs.Load()),
		Contributions:        int(contributed.Load()),
		ContributionFailures: int(short.Load()),
		ContributionErrors:   int(cErrs.Load()),
		Deactivated:          int(deactivated.Load()),
	}
	zap.L().Info("Scheduler run finished",
		zap.Bool("deadlines_only", opts.DeadlinesOnly),
		zap.Int("resolved", report.Resolved),
		zap.Int("contributions", report.Contributions),
		zap.Int("errors", report.ResolveErrors+report.ContributionErrors),
	)
	return report, err
}

// dispatch queues one task per id on the worker pool and waits for all of
// them. Per-item errors are counted by handle and logged by the pool.
func (g *Gateway) dispatch(ctx context.Context, job string, ids []uuid.UUID, handle func(uuid.UUID) error) error {
	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		key := job + ":" + id.String()
		if _, loaded := g.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		err := g.workerPool.AddTask(ctx, func() error {
			defer wg.Done()
			defer g.inFlight.Delete(key)
			return handle(id)
		})
		if err != nil {
			wg.Done()
			g.inFlight.Delete(key)
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}
