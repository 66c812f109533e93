package file

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/event"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type rosterRepo struct {
	mutex      sync.Mutex
	joined     *document[map[uuid.UUID]int64]
	declined   *document[map[uuid.UUID]int64]
	dispatcher event.Dispatcher
}

func NewRosterRepo(dir string, dispatcher event.Dispatcher, logger log.Logger) (domain.RosterRepo, error) {
	err := ensureDataDir(dir)
	if err != nil {
		return nil, err
	}

	return &rosterRepo{
		joined:     openDocument(dir, "CycleUsers", map[uuid.UUID]int64{}, logger),
		declined:   openDocument(dir, "NotCycleUsers", map[uuid.UUID]int64{}, logger),
		dispatcher: dispatcher,
	}, nil
}

func (r *rosterRepo) Get(_ context.Context) (*domain.Roster, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	roster := domain.NewRoster()
	for member, chat := range r.joined.Data {
		roster.Joined[member] = domain.ChatID(chat)
	}
	for member, chat := range r.declined.Data {
		roster.Declined[member] = domain.ChatID(chat)
	}
	return roster, nil
}

func (r *rosterRepo) Store(ctx context.Context, roster *domain.Roster) error {
	err := r.dispatcher.Dispatch(ctx, roster.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch roster events: %w", err)
	}
	roster.Changes = nil

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.joined.Data = make(map[uuid.UUID]int64, len(roster.Joined))
	for member, chat := range roster.Joined {
		r.joined.Data[member] = int64(chat)
	}
	r.declined.Data = make(map[uuid.UUID]int64, len(roster.Declined))
	for member, chat := range roster.Declined {
		r.declined.Data[member] = int64(chat)
	}

	r.joined.flush(ctx)
	r.declined.flush(ctx)
	return nil
}
