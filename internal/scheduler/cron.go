package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Runner interface {
	Run(ctx context.Context, opts RunOptions) (Report, error)
}

// Cron triggers a full Run on a cron spec such as "@every 5m".
type Cron struct {
	cron   *cron.Cron
	runner Runner
	spec   string
}

func NewCron(spec string, runner Runner) *Cron {
	logger := cron.PrintfLogger(zap.NewStdLog(zap.L().Named("cron")))
	return &Cron{
		cron:   cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		runner: runner,
		spec:   spec,
	}
}

// Start registers the job and starts ticking. Runs use ctx, so cancelling it
// aborts work that is still queued.
func (c *Cron) Start(ctx context.Context) error {
	_, err := c.cron.AddFunc(c.spec, func() {
		if _, err := c.runner.Run(ctx, RunOptions{}); err != nil {
			zap.L().Error("Scheduled run failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Error("Failed to schedule job", zap.Error(err), zap.String("spec", c.spec))
		return err
	}
	c.cron.Start()
	zap.L().Info("Scheduler started", zap.String("spec", c.spec))
	return nil
}

// Stop stops the schedule; the returned context is done once a running job finishes.
func (c *Cron) Stop() context.Context {
	return c.cron.Stop()
}
