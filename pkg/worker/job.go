package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

// TimeOfDay is a wall-clock time in the HH:MM form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q, HH:MM expected: %w", value, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func PeriodicalContextJob(job ContextJob, every time.Duration, logger log.Logger) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodical job completed with error")
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// DailyContextJob fires the job once a day at the given local time of the
// location. A job error is logged and does not stop the schedule.
func DailyContextJob(job ContextJob, at TimeOfDay, loc *time.Location, logger log.Logger) ContextJob {
	return func(ctx context.Context) error {
		for {
			timer := time.NewTimer(time.Until(nextOccurrence(time.Now(), at, loc)))

			select {
			case <-timer.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "daily job completed with error")
				}
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
}

func nextOccurrence(now time.Time, at TimeOfDay, loc *time.Location) time.Time {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour, at.Minute, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
