package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/pkg/event"
)

// Roster holds the cycle membership. A member is present in at most one of
// Joined/Declined; moving between them is the only way to switch sides.
// Declined entries are kept so the member can re-join a later cycle.
type Roster struct {
	Joined   map[uuid.UUID]ChatID
	Declined map[uuid.UUID]ChatID
	Changes  []event.Event
}

func NewRoster() *Roster {
	return &Roster{
		Joined:   map[uuid.UUID]ChatID{},
		Declined: map[uuid.UUID]ChatID{},
		Changes:  nil,
	}
}

func (r *Roster) Join(member uuid.UUID, chat ChatID) {
	if _, ok := r.Joined[member]; !ok {
		r.Joined[member] = chat
	}
	delete(r.Declined, member)

	r.Changes = append(r.Changes, EventCycleRosterChanged{
		EventID:     uuid.New(),
		MemberID:    member,
		JoinedCount: len(r.Joined),
	})
}

func (r *Roster) Decline(member uuid.UUID, chat ChatID) {
	if _, ok := r.Declined[member]; !ok {
		r.Declined[member] = chat
	}
	delete(r.Joined, member)

	r.Changes = append(r.Changes, EventCycleRosterChanged{
		EventID:     uuid.New(),
		MemberID:    member,
		JoinedCount: len(r.Joined),
	})
}

func (r *Roster) JoinedCount() int {
	return len(r.Joined)
}

// ConsumePaired removes paired members and carries leftovers over into the
// joined set for the next cycle. Intentionally raises no roster events.
func (r *Roster) ConsumePaired(paired []uuid.UUID, leftovers []uuid.UUID) {
	leftoverChats := make(map[uuid.UUID]ChatID, len(leftovers))
	for _, member := range leftovers {
		leftoverChats[member] = r.Joined[member]
	}

	for _, member := range paired {
		delete(r.Joined, member)
	}
	for member, chat := range leftoverChats {
		r.Joined[member] = chat
	}
}

type RosterRepo interface {
	Get(ctx context.Context) (*Roster, error)
	Store(ctx context.Context, roster *Roster) error
}
