package domain

import (
	"github.com/google/uuid"
)

const (
	aggregateNameCycleRoster = "cycle_roster"

	EventTypeCycleRosterChanged = aggregateNameCycleRoster + ".changed"
)

type EventCycleRosterChanged struct {
	EventID     uuid.UUID `json:"eventID"`
	MemberID    uuid.UUID `json:"memberID"`
	JoinedCount int       `json:"joinedCount"`
}

func (e EventCycleRosterChanged) ID() uuid.UUID {
	return e.EventID
}

func (e EventCycleRosterChanged) Type() string {
	return EventTypeCycleRosterChanged
}
