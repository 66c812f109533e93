package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
)

func noShuffle(int, func(i, j int)) {}

func TestBuildPairing_Properties(t *testing.T) {
	tests := []struct {
		name          string
		memberCount   int
		wantPairs     int
		wantLeftovers int
	}{
		{
			name:          "empty_roster",
			memberCount:   0,
			wantPairs:     0,
			wantLeftovers: 0,
		},
		{
			name:          "single_member_stays_unpaired",
			memberCount:   1,
			wantPairs:     0,
			wantLeftovers: 1,
		},
		{
			name:          "even_count_pairs_everyone",
			memberCount:   6,
			wantPairs:     3,
			wantLeftovers: 0,
		},
		{
			name:          "odd_count_leaves_one",
			memberCount:   7,
			wantPairs:     3,
			wantLeftovers: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			joined := make(map[uuid.UUID]domain.ChatID, tc.memberCount)
			for i := 0; i < tc.memberCount; i++ {
				joined[uuid.New()] = domain.ChatID(i)
			}

			pairing := domain.BuildPairing(joined, func(uuid.UUID) bool { return true }, rand.Shuffle)

			assert.Len(t, pairing.Pairs, tc.wantPairs)
			assert.Len(t, pairing.Leftovers, tc.wantLeftovers)
			assert.Empty(t, pairing.MissingProfiles)

			seen := make(map[uuid.UUID]struct{})
			for _, pair := range pairing.Pairs {
				assert.NotEqual(t, pair.First, pair.Second)
				assert.NotContains(t, seen, pair.First)
				assert.NotContains(t, seen, pair.Second)
				seen[pair.First] = struct{}{}
				seen[pair.Second] = struct{}{}
			}
			for _, member := range pairing.Leftovers {
				assert.NotContains(t, seen, member)
				assert.Contains(t, joined, member)
			}
		})
	}
}

func TestBuildPairing_MembersWithoutProfileAreExcluded(t *testing.T) {
	withProfile1 := uuid.New()
	withProfile2 := uuid.New()
	withoutProfile := uuid.New()
	joined := map[uuid.UUID]domain.ChatID{
		withProfile1:   1,
		withProfile2:   2,
		withoutProfile: 3,
	}

	pairing := domain.BuildPairing(joined, func(member uuid.UUID) bool {
		return member != withoutProfile
	}, noShuffle)

	require.Len(t, pairing.Pairs, 1)
	assert.Empty(t, pairing.Leftovers)
	assert.Equal(t, []uuid.UUID{withoutProfile}, pairing.MissingProfiles)
	assert.ElementsMatch(t,
		[]uuid.UUID{withProfile1, withProfile2},
		[]uuid.UUID{pairing.Pairs[0].First, pairing.Pairs[0].Second},
	)
}

func TestPairing_PairedMembers_ListsBothSides(t *testing.T) {
	first1, second1 := uuid.New(), uuid.New()
	first2, second2 := uuid.New(), uuid.New()
	pairing := domain.Pairing{
		Pairs: []domain.Pair{
			{First: first1, Second: second1},
			{First: first2, Second: second2},
		},
	}

	assert.ElementsMatch(t,
		[]uuid.UUID{first1, second1, first2, second2},
		pairing.PairedMembers(),
	)
}
