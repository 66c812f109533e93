package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Event interface {
	ID() uuid.UUID
	Type() string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, events ...Event) error
}

type Handler func(ctx context.Context, event Event) error

func NewTypedHandler[T Event](handler func(ctx context.Context, event T) error) Handler {
	return func(ctx context.Context, evt Event) error {
		concreteEvent, ok := evt.(T)
		if !ok {
			return fmt.Errorf("invalid event with id %v and type %v passed", evt.ID(), evt.Type())
		}
		return handler(ctx, concreteEvent)
	}
}
