package worker

import (
	"context"
	"sync"
)

type (
	ErrorJob   func() error
	ContextJob func(context.Context) error
)

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	wg        *sync.WaitGroup

	onceCloser *sync.Once
}

// NewGroup runs jobs concurrently and cancels the returned context
// when any of them completes with an error.
func NewGroup(ctx context.Context) (context.Context, Group) {
	var ctxCancel context.CancelFunc
	ctx, ctxCancel = context.WithCancel(ctx)
	return ctx, &group{
		ctxCancel:  ctxCancel,
		errChan:    make(chan error, 1),
		errResult:  nil,
		wg:         &sync.WaitGroup{},
		onceCloser: &sync.Once{},
	}
}

func (g *group) Do(job ErrorJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	}

	g.wg.Add(1)
	go func() {
		handleErr(job())
		g.wg.Done()
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
