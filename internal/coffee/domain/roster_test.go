package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
)

func TestRoster_JoinDecline_MembershipIsExclusive(t *testing.T) {
	member := uuid.New()
	chat := domain.ChatID(42)

	roster := domain.NewRoster()
	roster.Join(member, chat)

	assert.Contains(t, roster.Joined, member)
	assert.NotContains(t, roster.Declined, member)
	assert.Equal(t, 1, roster.JoinedCount())

	roster.Decline(member, chat)

	assert.NotContains(t, roster.Joined, member)
	assert.Contains(t, roster.Declined, member)
	assert.Equal(t, 0, roster.JoinedCount())

	roster.Join(member, chat)

	assert.Contains(t, roster.Joined, member)
	assert.NotContains(t, roster.Declined, member)
}

func TestRoster_Join_RepeatedJoinKeepsSingleEntry(t *testing.T) {
	member := uuid.New()

	roster := domain.NewRoster()
	roster.Join(member, domain.ChatID(1))
	roster.Join(member, domain.ChatID(1))

	assert.Equal(t, 1, roster.JoinedCount())
}

func TestRoster_JoinDecline_RaisesRosterChangedEvents(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	roster := domain.NewRoster()
	roster.Join(first, domain.ChatID(1))
	roster.Join(second, domain.ChatID(2))
	roster.Decline(second, domain.ChatID(2))

	require.Len(t, roster.Changes, 3)
	for _, change := range roster.Changes {
		assert.IsType(t, domain.EventCycleRosterChanged{}, change)
	}

	lastEvent := roster.Changes[2].(domain.EventCycleRosterChanged)
	assert.Equal(t, second, lastEvent.MemberID)
	assert.Equal(t, 1, lastEvent.JoinedCount)
}

func TestRoster_ConsumePaired_KeepsLeftoversForNextCycle(t *testing.T) {
	paired1 := uuid.New()
	paired2 := uuid.New()
	leftover := uuid.New()

	roster := domain.NewRoster()
	roster.Join(paired1, domain.ChatID(1))
	roster.Join(paired2, domain.ChatID(2))
	roster.Join(leftover, domain.ChatID(3))
	roster.Changes = nil

	roster.ConsumePaired([]uuid.UUID{paired1, paired2}, []uuid.UUID{leftover})

	assert.NotContains(t, roster.Joined, paired1)
	assert.NotContains(t, roster.Joined, paired2)
	assert.Equal(t, domain.ChatID(3), roster.Joined[leftover])
	assert.Empty(t, roster.Changes)
}
