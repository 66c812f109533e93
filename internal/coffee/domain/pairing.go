package domain

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

type Pair struct {
	First  uuid.UUID
	Second uuid.UUID
}

// Pairing is the result of one matching run. MissingProfiles holds joined
// members without profile data; they are excluded from pairing entirely.
type Pairing struct {
	Pairs           []Pair
	Leftovers       []uuid.UUID
	MissingProfiles []uuid.UUID
}

// Shuffle permutes n elements via swap, math/rand.Shuffle compatible.
type Shuffle func(n int, swap func(i, j int))

// BuildPairing partitions the joined members into random disjoint pairs.
// Members are ordered deterministically before shuffling so the shuffle
// alone decides the permutation.
func BuildPairing(joined map[uuid.UUID]ChatID, hasProfile func(uuid.UUID) bool, shuffle Shuffle) Pairing {
	members := make([]uuid.UUID, 0, len(joined))
	var missing []uuid.UUID
	for member := range joined {
		if hasProfile(member) {
			members = append(members, member)
		} else {
			missing = append(missing, member)
		}
	}
	slices.SortFunc(members, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	slices.SortFunc(missing, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})

	pairs := make([]Pair, 0, len(members)/2)
	used := make(map[uuid.UUID]struct{}, len(members))
	for len(members) >= 2 {
		first := members[len(members)-1]
		second := members[len(members)-2]
		members = members[:len(members)-2]

		// once placed into a pair a member is never reused
		if _, ok := used[first]; ok {
			continue
		}
		if _, ok := used[second]; ok {
			continue
		}

		pairs = append(pairs, Pair{First: first, Second: second})
		used[first] = struct{}{}
		used[second] = struct{}{}
	}

	var leftovers []uuid.UUID
	for _, member := range members {
		if _, ok := used[member]; !ok {
			leftovers = append(leftovers, member)
		}
	}

	return Pairing{
		Pairs:           pairs,
		Leftovers:       leftovers,
		MissingProfiles: missing,
	}
}

// PairedMembers lists every member consumed by a formed pair.
func (p Pairing) PairedMembers() []uuid.UUID {
	result := make([]uuid.UUID, 0, len(p.Pairs)*2)
	for _, pair := range p.Pairs {
		result = append(result, pair.First, pair.Second)
	}
	return result
}
