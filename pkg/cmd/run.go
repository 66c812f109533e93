package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/random-coffee-bot/pkg/log"
	"github.com/klwxsrx/random-coffee-bot/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(ctx context.Context, job worker.ContextJob, logger log.Logger) worker.ErrorJob {
		return func() error {
			err := job(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	groupCtx, group := worker.NewGroup(ctx)
	for _, j := range jobs {
		group.Do(loggingAdapter(groupCtx, j, logger))
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
